package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectKeyFromURL(t *testing.T) {
	assert.Equal(t, "videos/1700000000_abcd1234.mp4",
		ObjectKeyFromURL("https://bucket.account.r2.cloudflarestorage.com/videos/1700000000_abcd1234.mp4"))

	assert.Equal(t, "thumbnails/pic.png",
		ObjectKeyFromURL("http://cdn.example.com/thumbnails/pic.png"))

	// Bare keys pass through untouched
	assert.Equal(t, "videos/raw_key.mp4", ObjectKeyFromURL("videos/raw_key.mp4"))
	assert.Equal(t, "", ObjectKeyFromURL(""))
}
