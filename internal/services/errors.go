// ===============================
// internal/services/errors.go - Service Error Taxonomy
// ===============================

package services

import (
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors surfaced to handlers. Services never retry internally;
// handlers map these onto HTTP statuses.
var (
	// ErrInvalidID - a reference failed well-formedness checks before any
	// store access, or a request field failed validation.
	ErrInvalidID = errors.New("invalid_id")

	// ErrNotFound - the target entity is absent, or not visible to the
	// requester (unpublished video reads fold into this so existence is
	// never leaked).
	ErrNotFound = errors.New("not_found")

	// ErrAccessDenied - the requester is authenticated but does not own the
	// entity being mutated.
	ErrAccessDenied = errors.New("access_denied")

	// ErrConflict - a toggle lost a race against a concurrent toggle on the
	// same edge; the caller may retry.
	ErrConflict = errors.New("conflict")

	// ErrSelfSubscription - a user attempted to subscribe to their own channel.
	ErrSelfSubscription = errors.New("cannot_subscribe_to_self")

	// ErrValidation - a request body failed content validation.
	ErrValidation = errors.New("validation_failed")
)

// isUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505), which a lost toggle race surfaces as.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}
