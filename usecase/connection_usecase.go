package usecase

import (
	"context"
	"fmt"

	"github.com/jekoram/reelshorter/domain/dto"
	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/domain/repository"
	"github.com/jekoram/reelshorter/infrastructure/crypto"
	"github.com/jekoram/reelshorter/infrastructure/logger"
)

type IConnectionUsecase interface {
	SaveGrant(ctx context.Context, userID string, grant *model.OAuthGrant) error
	List(ctx context.Context, userID string) ([]dto.ConnectionInfo, error)
	Disconnect(ctx context.Context, userID string, platform model.Platform) error
}

type connectionUsecase struct {
	connRepo  repository.IConnection
	connCache repository.IConnectionCache
	codec     *crypto.Codec
}

func NewConnectionUsecase(connRepo repository.IConnection, connCache repository.IConnectionCache, codec *crypto.Codec) IConnectionUsecase {
	return &connectionUsecase{connRepo: connRepo, connCache: connCache, codec: codec}
}

// SaveGrant encrypts the grant's token material and upserts the connection.
// Reconnecting a platform overwrites the previous tokens in place.
func (u *connectionUsecase) SaveGrant(ctx context.Context, userID string, grant *model.OAuthGrant) error {
	encAccess, err := u.codec.Encrypt(grant.AccessToken)
	if err != nil {
		return fmt.Errorf("failed to encrypt access token: %w", err)
	}

	conn := &model.Connection{
		UserID:               userID,
		Platform:             grant.Platform,
		EncryptedAccessToken: encAccess,
		TokenExpiresAt:       grant.ExpiresAt,
		IsActive:             true,
	}
	if grant.RefreshToken != "" {
		encRefresh, err := u.codec.Encrypt(grant.RefreshToken)
		if err != nil {
			return fmt.Errorf("failed to encrypt refresh token: %w", err)
		}
		conn.EncryptedRefreshToken = &encRefresh
	}
	if grant.PlatformUserID != "" {
		conn.PlatformUserID = &grant.PlatformUserID
	}
	if grant.PlatformUsername != "" {
		conn.PlatformUsername = &grant.PlatformUsername
	}

	if err := u.connRepo.Upsert(ctx, conn); err != nil {
		return fmt.Errorf("failed to save connection: %w", err)
	}

	u.connCache.Invalidate(ctx, userID)
	logger.GetLogger().WithFields(map[string]interface{}{
		"user_id":  userID,
		"platform": grant.Platform.String(),
	}).Info("Platform connected")
	return nil
}

// List returns the non-sensitive view of the user's connections,
// cache-aside over Redis.
func (u *connectionUsecase) List(ctx context.Context, userID string) ([]dto.ConnectionInfo, error) {
	conns, hit := u.connCache.GetList(ctx, userID)
	if !hit {
		var err error
		conns, err = u.connRepo.ListByUser(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("failed to list connections: %w", err)
		}
		u.connCache.SetList(ctx, userID, conns)
	}

	infos := make([]dto.ConnectionInfo, 0, len(conns))
	for _, c := range conns {
		info := dto.ConnectionInfo{
			ID:        c.ID,
			Platform:  c.Platform,
			IsActive:  c.IsActive,
			CreatedAt: c.CreatedAt,
		}
		if c.PlatformUsername != nil {
			info.PlatformUsername = *c.PlatformUsername
		}
		infos = append(infos, info)
	}
	return infos, nil
}

// Disconnect removes the connection row. The encrypted tokens go with it.
func (u *connectionUsecase) Disconnect(ctx context.Context, userID string, platform model.Platform) error {
	if err := u.connRepo.Delete(ctx, userID, platform); err != nil {
		return err
	}
	u.connCache.Invalidate(ctx, userID)
	logger.GetLogger().WithFields(map[string]interface{}{
		"user_id":  userID,
		"platform": platform.String(),
	}).Info("Platform disconnected")
	return nil
}
