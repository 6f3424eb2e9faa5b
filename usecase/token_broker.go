package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/domain/repository"
	"github.com/jekoram/reelshorter/infrastructure/crypto"
	"github.com/jekoram/reelshorter/infrastructure/logger"
)

// TokenBroker hands out live platform credentials. It decrypts stored
// tokens, refreshes expired ones through the platform's refresh protocol,
// and re-persists the refreshed ciphertext before returning, so callers
// never see an expired access token.
type TokenBroker struct {
	connRepo   repository.IConnection
	codec      *crypto.Codec
	refreshers map[model.Platform]repository.ITokenRefresher
	now        func() time.Time
}

func NewTokenBroker(
	connRepo repository.IConnection,
	codec *crypto.Codec,
	refreshers map[model.Platform]repository.ITokenRefresher,
) *TokenBroker {
	return &TokenBroker{
		connRepo:   connRepo,
		codec:      codec,
		refreshers: refreshers,
		now:        time.Now,
	}
}

// WithClock overrides the broker's clock (fluent, for tests).
func (b *TokenBroker) WithClock(now func() time.Time) *TokenBroker {
	b.now = now
	return b
}

func (b *TokenBroker) GetLiveCredential(ctx context.Context, userID string, platform model.Platform) (*model.PlatformCredential, error) {
	conn, err := b.connRepo.GetByUserAndPlatform(ctx, userID, platform)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s connection: %w", platform, err)
	}
	if conn == nil || !conn.IsActive {
		return nil, fmt.Errorf("%s: %w", platform, model.ErrNotConnected)
	}

	accessToken, err := b.codec.Decrypt(conn.EncryptedAccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt %s access token: %w", platform, err)
	}
	refreshToken := ""
	if conn.EncryptedRefreshToken != nil {
		refreshToken, err = b.codec.Decrypt(*conn.EncryptedRefreshToken)
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt %s refresh token: %w", platform, err)
		}
	}

	expired := conn.TokenExpiresAt != nil && b.now().After(*conn.TokenExpiresAt)
	if !expired {
		return &model.PlatformCredential{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
			ExpiresAt:    conn.TokenExpiresAt,
		}, nil
	}

	if refreshToken == "" {
		return nil, fmt.Errorf("%s: %w", platform, model.ErrReauthRequired)
	}
	refresher, ok := b.refreshers[platform]
	if !ok {
		return nil, fmt.Errorf("no token refresher registered for %s: %w", platform, model.ErrReauthRequired)
	}

	refreshed, err := refresher.Refresh(ctx, refreshToken)
	if err != nil {
		// The stored row stays untouched on a failed refresh.
		return nil, fmt.Errorf("%s token refresh failed: %w", platform, err)
	}

	upd := model.TokenUpdate{TokenExpiresAt: refreshed.ExpiresAt}
	upd.EncryptedAccessToken, err = b.codec.Encrypt(refreshed.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt refreshed access token: %w", err)
	}
	if refreshed.RefreshToken != "" {
		enc, err := b.codec.Encrypt(refreshed.RefreshToken)
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt rotated refresh token: %w", err)
		}
		upd.EncryptedRefreshToken = &enc
		refreshToken = refreshed.RefreshToken
	}
	if err := b.connRepo.UpdateTokens(ctx, conn.ID, upd); err != nil {
		return nil, fmt.Errorf("failed to persist refreshed %s token: %w", platform, err)
	}

	logger.GetLogger().WithFields(map[string]interface{}{
		"user_id":  userID,
		"platform": platform.String(),
	}).Info("Access token refreshed")

	return &model.PlatformCredential{
		AccessToken:  refreshed.AccessToken,
		RefreshToken: refreshToken,
		ExpiresAt:    refreshed.ExpiresAt,
	}, nil
}
