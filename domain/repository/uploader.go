package repository

import (
	"context"

	"github.com/jekoram/reelshorter/domain/dto"
	"github.com/jekoram/reelshorter/domain/model"
)

// IUploader uploads one file to one platform on behalf of a user.
// Implementations obtain a live credential from the broker before calling
// the platform API. Any error (broker or API) is one opaque per-platform
// failure to the orchestrator.
type IUploader interface {
	Upload(ctx context.Context, userID string, in *dto.UploadInput) (*dto.UploadResult, error)
}

// ICredentialBroker guarantees a non-expired, decrypted credential for
// (user, platform), refreshing and re-persisting tokens when needed.
type ICredentialBroker interface {
	GetLiveCredential(ctx context.Context, userID string, platform model.Platform) (*model.PlatformCredential, error)
}

// ITokenRefresher runs one platform's token-refresh protocol.
type ITokenRefresher interface {
	Refresh(ctx context.Context, refreshToken string) (*model.RefreshedToken, error)
}
