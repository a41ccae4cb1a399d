package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLikeTargetKindValid(t *testing.T) {
	assert.True(t, LikeTargetVideo.Valid())
	assert.True(t, LikeTargetComment.Valid())
	assert.True(t, LikeTargetTweet.Valid())

	assert.False(t, LikeTargetKind("").Valid())
	assert.False(t, LikeTargetKind("playlist").Valid())
	assert.False(t, LikeTargetKind("VIDEO").Valid())
}
