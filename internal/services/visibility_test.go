package services

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestValidContentID(t *testing.T) {
	var guard VisibilityGuard

	assert.True(t, guard.ValidContentID(uuid.New().String()))
	assert.False(t, guard.ValidContentID(""))
	assert.False(t, guard.ValidContentID("not-a-uuid"))
	assert.False(t, guard.ValidContentID("12345"))
	assert.False(t, guard.ValidContentID("'; DROP TABLE videos;--"))
}

func TestValidUserID(t *testing.T) {
	var guard VisibilityGuard

	assert.True(t, guard.ValidUserID("firebase-uid-abc123"))
	assert.True(t, guard.ValidUserID("x"))
	assert.False(t, guard.ValidUserID(""))
	assert.False(t, guard.ValidUserID("has space"))
	assert.False(t, guard.ValidUserID("has/slash"))
	assert.False(t, guard.ValidUserID("has\nnewline"))
	assert.False(t, guard.ValidUserID(strings.Repeat("a", maxUserIDLength+1)))
	assert.True(t, guard.ValidUserID(strings.Repeat("a", maxUserIDLength)))
}

func TestCanViewVideo(t *testing.T) {
	var guard VisibilityGuard

	// Published videos are visible to anyone, including anonymous requesters
	assert.True(t, guard.CanViewVideo("viewer", "owner", true))
	assert.True(t, guard.CanViewVideo("", "owner", true))

	// Unpublished videos are visible only to the owner
	assert.True(t, guard.CanViewVideo("owner", "owner", false))
	assert.False(t, guard.CanViewVideo("viewer", "owner", false))
	assert.False(t, guard.CanViewVideo("", "owner", false))

	// An anonymous requester never matches an owner, even an empty one
	assert.False(t, guard.CanViewVideo("", "", false))
}

func TestCanMutate(t *testing.T) {
	var guard VisibilityGuard

	assert.True(t, guard.CanMutate("owner", "owner"))
	assert.False(t, guard.CanMutate("other", "owner"))
	assert.False(t, guard.CanMutate("", "owner"))
	assert.False(t, guard.CanMutate("", ""))
}
