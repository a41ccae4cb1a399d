// ===============================
// internal/models/response.go - API Response Envelope
// ===============================

package models

// ApiResponse is the envelope every endpoint returns. Empty collections are
// a successful response, not an error.
type ApiResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
}

func NewApiResponse(statusCode int, data interface{}, message string) ApiResponse {
	return ApiResponse{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
	}
}
