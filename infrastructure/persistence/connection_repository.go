package persistence

import (
	"context"
	"database/sql"
	"time"

	"github.com/jekoram/reelshorter/domain/model"
	"github.com/jekoram/reelshorter/domain/repository"
)

const connectionColumns = `id, user_id, platform, encrypted_access_token, encrypted_refresh_token, token_expires_at, platform_user_id, platform_username, is_active, created_at, updated_at`

// ConnectionRepository implements IConnection over PostgreSQL.
type ConnectionRepository struct{ db *sql.DB }

func NewConnectionRepository(db *sql.DB) repository.IConnection {
	return &ConnectionRepository{db: db}
}

func (r *ConnectionRepository) GetByUserAndPlatform(ctx context.Context, userID string, platform model.Platform) (*model.Connection, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE user_id=$1 AND platform=$2`,
		userID, string(platform))
	conn, err := scanConnection(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return conn, err
}

func (r *ConnectionRepository) ListByUser(ctx context.Context, userID string) ([]*model.Connection, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+connectionColumns+` FROM connections WHERE user_id=$1 ORDER BY created_at ASC`,
		userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var list []*model.Connection
	for rows.Next() {
		conn, err := scanConnection(rows)
		if err != nil {
			return nil, err
		}
		list = append(list, conn)
	}
	return list, rows.Err()
}

// Upsert creates or replaces the connection for (user, platform). Used by
// the OAuth callback flow after a successful grant exchange.
func (r *ConnectionRepository) Upsert(ctx context.Context, conn *model.Connection) error {
	now := time.Now().UTC()
	if conn.CreatedAt.IsZero() {
		conn.CreatedAt = now
	}
	conn.UpdatedAt = now
	q := `INSERT INTO connections (user_id, platform, encrypted_access_token, encrypted_refresh_token, token_expires_at, platform_user_id, platform_username, is_active, created_at, updated_at)
		  VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		  ON CONFLICT (user_id, platform) DO UPDATE SET
			encrypted_access_token=EXCLUDED.encrypted_access_token,
			encrypted_refresh_token=COALESCE(EXCLUDED.encrypted_refresh_token, connections.encrypted_refresh_token),
			token_expires_at=EXCLUDED.token_expires_at,
			platform_user_id=EXCLUDED.platform_user_id,
			platform_username=EXCLUDED.platform_username,
			is_active=EXCLUDED.is_active,
			updated_at=EXCLUDED.updated_at`
	_, err := r.db.ExecContext(ctx, q,
		conn.UserID, string(conn.Platform), conn.EncryptedAccessToken, conn.EncryptedRefreshToken,
		conn.TokenExpiresAt, conn.PlatformUserID, conn.PlatformUsername, conn.IsActive,
		conn.CreatedAt, conn.UpdatedAt)
	return err
}

// UpdateTokens persists re-encrypted token material after a refresh.
// Last writer wins; concurrent refreshes of the same row are an accepted race.
func (r *ConnectionRepository) UpdateTokens(ctx context.Context, connectionID int64, upd model.TokenUpdate) error {
	q := `UPDATE connections SET
			encrypted_access_token=$1,
			encrypted_refresh_token=COALESCE($2, encrypted_refresh_token),
			token_expires_at=$3,
			updated_at=$4
		  WHERE id=$5`
	_, err := r.db.ExecContext(ctx, q,
		upd.EncryptedAccessToken, upd.EncryptedRefreshToken, upd.TokenExpiresAt,
		time.Now().UTC(), connectionID)
	return err
}

func (r *ConnectionRepository) Delete(ctx context.Context, userID string, platform model.Platform) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM connections WHERE user_id=$1 AND platform=$2`, userID, string(platform))
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

type rowScanner interface{ Scan(dest ...interface{}) error }

func scanConnection(row rowScanner) (*model.Connection, error) {
	conn := &model.Connection{}
	var platform string
	var refreshToken, platformUserID, platformUsername sql.NullString
	var expiresAt sql.NullTime
	if err := row.Scan(&conn.ID, &conn.UserID, &platform, &conn.EncryptedAccessToken,
		&refreshToken, &expiresAt, &platformUserID, &platformUsername,
		&conn.IsActive, &conn.CreatedAt, &conn.UpdatedAt); err != nil {
		return nil, err
	}
	conn.Platform = model.Platform(platform)
	if refreshToken.Valid {
		v := refreshToken.String
		conn.EncryptedRefreshToken = &v
	}
	if expiresAt.Valid {
		t := expiresAt.Time
		conn.TokenExpiresAt = &t
	}
	if platformUserID.Valid {
		v := platformUserID.String
		conn.PlatformUserID = &v
	}
	if platformUsername.Valid {
		v := platformUsername.String
		conn.PlatformUsername = &v
	}
	return conn, nil
}
