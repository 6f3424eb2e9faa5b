package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePlatform(t *testing.T) {
	p, known := ParsePlatform(" YouTube ")
	assert.Equal(t, PlatformYouTube, p)
	assert.True(t, known)

	p, known = ParsePlatform("instagram")
	assert.Equal(t, PlatformInstagram, p)
	assert.True(t, known)

	p, known = ParsePlatform("tiktok")
	assert.Equal(t, Platform("tiktok"), p)
	assert.False(t, known)
}
