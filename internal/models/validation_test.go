package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVideoValidateForCreation(t *testing.T) {
	video := &Video{Title: "My video", VideoFile: "https://cdn.example.com/v.mp4", Duration: 120}
	assert.Empty(t, video.ValidateForCreation())

	missing := &Video{}
	errs := missing.ValidateForCreation()
	assert.Contains(t, errs, "title is required")
	assert.Contains(t, errs, "video file reference is required")

	longTitle := &Video{Title: strings.Repeat("x", 256), VideoFile: "f.mp4"}
	assert.Contains(t, longTitle.ValidateForCreation(), "title must be 255 characters or less")

	negative := &Video{Title: "t", VideoFile: "f.mp4", Duration: -1}
	assert.Contains(t, negative.ValidateForCreation(), "duration cannot be negative")

	// A whitespace-only title is empty after trimming
	blank := &Video{Title: "   ", VideoFile: "f.mp4"}
	assert.Contains(t, blank.ValidateForCreation(), "title is required")
}

func TestValidateTweetContent(t *testing.T) {
	assert.Empty(t, ValidateTweetContent("hello world"))
	assert.Empty(t, ValidateTweetContent(strings.Repeat("a", MaxTweetLength)))

	assert.Contains(t, ValidateTweetContent(""), "content is required")
	assert.Contains(t, ValidateTweetContent("   "), "content is required")
	assert.Contains(t, ValidateTweetContent(strings.Repeat("a", MaxTweetLength+1)),
		"content must be 280 characters or less")
}

func TestCommentValidateForCreation(t *testing.T) {
	ok := &Comment{Content: "nice video"}
	assert.Empty(t, ok.ValidateForCreation())

	empty := &Comment{Content: "  "}
	assert.Contains(t, empty.ValidateForCreation(), "content is required")

	long := &Comment{Content: strings.Repeat("a", 501)}
	assert.Contains(t, long.ValidateForCreation(), "content must be 500 characters or less")
}

func TestPlaylistValidateForCreation(t *testing.T) {
	ok := &Playlist{Name: "Watch later"}
	assert.Empty(t, ok.ValidateForCreation())

	empty := &Playlist{Name: " "}
	assert.Contains(t, empty.ValidateForCreation(), "name is required")
}

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "chaiaurcode", NormalizeUsername("ChaiAurCode"))
	assert.Equal(t, "user1", NormalizeUsername("  user1  "))
	assert.Equal(t, "", NormalizeUsername("   "))
}
