package persistence

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/jekoram/reelshorter/domain/model"
)

var connectionRows = []string{
	"id", "user_id", "platform", "encrypted_access_token", "encrypted_refresh_token",
	"token_expires_at", "platform_user_id", "platform_username", "is_active", "created_at", "updated_at",
}

func TestConnectionRepository_GetByUserAndPlatform(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConnectionRepository(db)

	now := time.Date(2026, 2, 1, 8, 0, 0, 0, time.UTC)
	expiry := now.Add(time.Hour)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+connectionColumns+` FROM connections WHERE user_id=$1 AND platform=$2`)).
		WithArgs("user-1", "youtube").
		WillReturnRows(sqlmock.NewRows(connectionRows).
			AddRow(int64(7), "user-1", "youtube", "enc-access", "enc-refresh", expiry, "UC123", "My Channel", true, now, now))

	conn, err := repo.GetByUserAndPlatform(context.Background(), "user-1", model.PlatformYouTube)

	require.NoError(t, err)
	require.NotNil(t, conn)
	require.Equal(t, int64(7), conn.ID)
	require.Equal(t, model.PlatformYouTube, conn.Platform)
	require.Equal(t, "enc-access", conn.EncryptedAccessToken)
	require.NotNil(t, conn.EncryptedRefreshToken)
	require.Equal(t, "enc-refresh", *conn.EncryptedRefreshToken)
	require.NotNil(t, conn.TokenExpiresAt)
	require.Equal(t, "My Channel", *conn.PlatformUsername)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionRepository_GetByUserAndPlatform_NoRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConnectionRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT `+connectionColumns+` FROM connections WHERE user_id=$1 AND platform=$2`)).
		WithArgs("user-1", "instagram").
		WillReturnError(sql.ErrNoRows)

	conn, err := repo.GetByUserAndPlatform(context.Background(), "user-1", model.PlatformInstagram)

	require.NoError(t, err)
	require.Nil(t, conn)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionRepository_Upsert(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConnectionRepository(db)

	refresh := "enc-refresh"
	mock.ExpectExec("INSERT INTO connections .+ ON CONFLICT \\(user_id, platform\\) DO UPDATE SET").
		WithArgs("user-1", "youtube", "enc-access", "enc-refresh", nil, nil, nil, true,
			sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.Upsert(context.Background(), &model.Connection{
		UserID:                "user-1",
		Platform:              model.PlatformYouTube,
		EncryptedAccessToken:  "enc-access",
		EncryptedRefreshToken: &refresh,
		IsActive:              true,
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionRepository_UpdateTokens_PreservesRefreshTokenWhenNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConnectionRepository(db)

	mock.ExpectExec("UPDATE connections SET").
		WithArgs("enc-access-2", nil, nil, sqlmock.AnyArg(), int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateTokens(context.Background(), 7, model.TokenUpdate{
		EncryptedAccessToken: "enc-access-2",
	})

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestConnectionRepository_Delete_MissingRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewConnectionRepository(db)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM connections WHERE user_id=$1 AND platform=$2`)).
		WithArgs("user-1", "youtube").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Delete(context.Background(), "user-1", model.PlatformYouTube)

	require.ErrorIs(t, err, sql.ErrNoRows)
	require.NoError(t, mock.ExpectationsWereMet())
}
