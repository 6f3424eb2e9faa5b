package model

import (
	"errors"
	"strings"
)

// Platform identifies an external publishing target.
type Platform string

const (
	PlatformYouTube   Platform = "youtube"
	PlatformInstagram Platform = "instagram"
)

// ParsePlatform normalizes a raw platform identifier. The boolean reports
// whether the value names a known platform; unknown values are still returned
// so callers can record them verbatim in the publish log.
func ParsePlatform(s string) (Platform, bool) {
	p := Platform(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case PlatformYouTube, PlatformInstagram:
		return p, true
	}
	return p, false
}

func (p Platform) String() string { return string(p) }

// Credential broker error taxonomy. Platform-level failures carry one of
// these so the orchestrator can record them without aborting other platforms.
var (
	ErrNotConnected        = errors.New("platform is not connected")
	ErrReauthRequired      = errors.New("token expired and no refresh token available; reconnect required")
	ErrUnsupportedPlatform = errors.New("unsupported platform")
)
