package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/usecase"
)

type fakeConnectionCache struct {
	entries     map[string][]*model.Connection
	invalidated []string
}

func newFakeConnectionCache() *fakeConnectionCache {
	return &fakeConnectionCache{entries: map[string][]*model.Connection{}}
}

func (c *fakeConnectionCache) GetList(ctx context.Context, userID string) ([]*model.Connection, bool) {
	conns, ok := c.entries[userID]
	return conns, ok
}

func (c *fakeConnectionCache) SetList(ctx context.Context, userID string, conns []*model.Connection) {
	c.entries[userID] = conns
}

func (c *fakeConnectionCache) Invalidate(ctx context.Context, userID string) {
	delete(c.entries, userID)
	c.invalidated = append(c.invalidated, userID)
}

func TestSaveGrant_EncryptsTokensAndInvalidatesCache(t *testing.T) {
	codec := newTestCodec(t)
	cacheLayer := newFakeConnectionCache()
	cacheLayer.entries["user-1"] = []*model.Connection{}

	expiry := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	connRepo := new(MockConnectionRepo)
	connRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(conn *model.Connection) bool {
		access, err := codec.Decrypt(conn.EncryptedAccessToken)
		if err != nil || access != "plain-access" {
			return false
		}
		if conn.EncryptedRefreshToken == nil {
			return false
		}
		refresh, err := codec.Decrypt(*conn.EncryptedRefreshToken)
		return err == nil && refresh == "plain-refresh" &&
			conn.Platform == model.PlatformYouTube &&
			conn.IsActive &&
			conn.PlatformUsername != nil && *conn.PlatformUsername == "My Channel"
	})).Return(nil)

	u := usecase.NewConnectionUsecase(connRepo, cacheLayer, codec)

	err := u.SaveGrant(context.Background(), "user-1", &model.OAuthGrant{
		Platform:         model.PlatformYouTube,
		AccessToken:      "plain-access",
		RefreshToken:     "plain-refresh",
		ExpiresAt:        &expiry,
		PlatformUserID:   "UC123",
		PlatformUsername: "My Channel",
	})

	assert.NoError(t, err)
	assert.Contains(t, cacheLayer.invalidated, "user-1")
	connRepo.AssertExpectations(t)
}

func TestSaveGrant_NoRefreshTokenLeavesFieldNil(t *testing.T) {
	codec := newTestCodec(t)
	connRepo := new(MockConnectionRepo)
	connRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(conn *model.Connection) bool {
		return conn.EncryptedRefreshToken == nil
	})).Return(nil)

	u := usecase.NewConnectionUsecase(connRepo, newFakeConnectionCache(), codec)

	err := u.SaveGrant(context.Background(), "user-1", &model.OAuthGrant{
		Platform:    model.PlatformYouTube,
		AccessToken: "plain-access",
	})

	assert.NoError(t, err)
	connRepo.AssertExpectations(t)
}

func TestList_CacheMissFallsThroughAndPopulates(t *testing.T) {
	codec := newTestCodec(t)
	cacheLayer := newFakeConnectionCache()
	username := "My Channel"

	connRepo := new(MockConnectionRepo)
	connRepo.On("ListByUser", mock.Anything, "user-1").Return([]*model.Connection{
		{ID: 7, Platform: model.PlatformYouTube, PlatformUsername: &username, IsActive: true},
	}, nil).Once()

	u := usecase.NewConnectionUsecase(connRepo, cacheLayer, codec)

	infos, err := u.List(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, infos, 1)
	assert.Equal(t, "My Channel", infos[0].PlatformUsername)

	// second call served from cache
	infos, err = u.List(context.Background(), "user-1")
	assert.NoError(t, err)
	assert.Len(t, infos, 1)
	connRepo.AssertNumberOfCalls(t, "ListByUser", 1)
}

func TestDisconnect_InvalidatesCache(t *testing.T) {
	codec := newTestCodec(t)
	cacheLayer := newFakeConnectionCache()

	connRepo := new(MockConnectionRepo)
	connRepo.On("Delete", mock.Anything, "user-1", model.PlatformYouTube).Return(nil)

	u := usecase.NewConnectionUsecase(connRepo, cacheLayer, codec)

	err := u.Disconnect(context.Background(), "user-1", model.PlatformYouTube)

	assert.NoError(t, err)
	assert.Contains(t, cacheLayer.invalidated, "user-1")
}
