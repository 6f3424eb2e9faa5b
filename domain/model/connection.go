package model

import "time"

// Connection is one user's OAuth grant for one platform. At most one row
// exists per (user_id, platform); that pair is the natural key.
// Token columns hold ciphertext only. The credential codec runs at the
// broker / OAuth-callback boundary, never inside persistence.
type Connection struct {
	ID                    int64      `json:"id"`
	UserID                string     `json:"user_id"`
	Platform              Platform   `json:"platform"`
	EncryptedAccessToken  string     `json:"-"`
	EncryptedRefreshToken *string    `json:"-"`
	TokenExpiresAt        *time.Time `json:"token_expires_at,omitempty"`
	PlatformUserID        *string    `json:"platform_user_id,omitempty"`
	PlatformUsername      *string    `json:"platform_username,omitempty"`
	IsActive              bool       `json:"is_active"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

// OAuthGrant is the plaintext outcome of a completed OAuth authorization,
// handed from the callback handler to the connection usecase for encryption
// and storage.
type OAuthGrant struct {
	Platform         Platform
	AccessToken      string
	RefreshToken     string
	ExpiresAt        *time.Time
	PlatformUserID   string
	PlatformUsername string
}

// PlatformCredential is a decrypted, guaranteed-live credential handed to an
// upload adapter by the token broker.
type PlatformCredential struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
}

// RefreshedToken is the outcome of one token-refresh protocol round trip.
type RefreshedToken struct {
	AccessToken  string
	RefreshToken string // empty when the provider did not rotate it
	ExpiresAt    *time.Time
}

// TokenUpdate carries re-encrypted token material for a refresh write.
// EncryptedRefreshToken stays nil when the stored refresh token is unchanged.
type TokenUpdate struct {
	EncryptedAccessToken  string
	EncryptedRefreshToken *string
	TokenExpiresAt        *time.Time
}
