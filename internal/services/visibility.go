// ===============================
// internal/services/visibility.go - Visibility Guard
// ===============================

package services

import (
	"strings"

	"github.com/google/uuid"
)

const maxUserIDLength = 128

// VisibilityGuard is the access-control predicate layer shared by every
// toggle and view operation. Pure decision logic; it never touches the store.
type VisibilityGuard struct{}

// ValidContentID reports whether id is a well-formed video/comment/tweet
// reference. Malformed references must be rejected before any store access.
func (VisibilityGuard) ValidContentID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ValidUserID reports whether id is a plausible auth-provider UID. User IDs
// are opaque strings minted by the auth collaborator, so the check is bounds
// and character sanity rather than a format parse.
func (VisibilityGuard) ValidUserID(id string) bool {
	if id == "" || len(id) > maxUserIDLength {
		return false
	}
	return !strings.ContainsAny(id, " \t\n\r/")
}

// CanViewVideo applies the publication rule: anyone may view a published
// video; an unpublished one is visible only to its owner.
func (VisibilityGuard) CanViewVideo(requesterID, ownerID string, isPublished bool) bool {
	if isPublished {
		return true
	}
	return requesterID != "" && requesterID == ownerID
}

// CanMutate - only the owner may mutate a video, tweet or comment.
func (VisibilityGuard) CanMutate(requesterID, ownerID string) bool {
	return requesterID != "" && requesterID == ownerID
}
