package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageParamsNormalized(t *testing.T) {
	tests := []struct {
		name      string
		in        PageParams
		wantPage  int
		wantLimit int
	}{
		{"defaults", PageParams{}, 1, DefaultPageSize},
		{"passthrough", PageParams{Page: 3, Limit: 15}, 3, 15},
		{"zero page clamps to first", PageParams{Page: 0, Limit: 5}, 1, 5},
		{"negative page clamps to first", PageParams{Page: -1, Limit: 5}, 1, 5},
		{"zero limit falls back to default", PageParams{Page: 2, Limit: 0}, 2, DefaultPageSize},
		{"negative limit clamps to one", PageParams{Page: 2, Limit: -5}, 2, 1},
		{"oversized limit clamps to max", PageParams{Page: 2, Limit: 25}, 2, MaxPageSize},
		{"limit at max passes", PageParams{Page: 2, Limit: MaxPageSize}, 2, MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalized()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestPageParamsOffset(t *testing.T) {
	assert.Equal(t, 0, PageParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, PageParams{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, PageParams{Page: 3, Limit: 20}.Offset())

	// Out-of-range params normalize before the offset is computed
	assert.Equal(t, 0, PageParams{Page: -2, Limit: 10}.Offset())
	assert.Equal(t, MaxPageSize, PageParams{Page: 2, Limit: 100}.Offset())
}
