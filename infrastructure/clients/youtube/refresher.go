package youtube

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2"

	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/domain/repository"
)

// Refresher runs Google's refresh-token grant for YouTube connections.
type Refresher struct {
	config *oauth2.Config
}

func NewRefresher(config *oauth2.Config) repository.ITokenRefresher {
	return &Refresher{config: config}
}

func (r *Refresher) Refresh(ctx context.Context, refreshToken string) (*model.RefreshedToken, error) {
	// Expiry in the past forces the token source to hit the token endpoint.
	stale := &oauth2.Token{
		RefreshToken: refreshToken,
		Expiry:       time.Now().Add(-time.Minute),
	}
	fresh, err := r.config.TokenSource(ctx, stale).Token()
	if err != nil {
		return nil, fmt.Errorf("failed to refresh token: %w", err)
	}

	out := &model.RefreshedToken{AccessToken: fresh.AccessToken}
	if fresh.RefreshToken != "" && fresh.RefreshToken != refreshToken {
		out.RefreshToken = fresh.RefreshToken
	}
	if !fresh.Expiry.IsZero() {
		expiry := fresh.Expiry
		out.ExpiresAt = &expiry
	}
	return out, nil
}
