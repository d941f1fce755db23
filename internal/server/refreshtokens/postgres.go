package refreshtokens

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ekuzmina/notekeeper/internal/common"
	"github.com/ekuzmina/notekeeper/internal/server/storage"
	"github.com/jackc/pgx/v5"
)

// PostgresRepo implements Repository using PostgreSQL.
type PostgresRepo struct{ db *storage.DB }

// NewPostgresRepo constructs a refresh token repository.
func NewPostgresRepo(db *storage.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) Create(ctx context.Context, userID string, token string, validity time.Duration) error {
	const q = `
INSERT INTO refresh_tokens (user_id, token, expires_at)
VALUES ($1, $2, $3)`
	_, err := r.db.Pool.Exec(ctx, q, userID, token, time.Now().Add(validity))
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	return nil
}

func (r *PostgresRepo) Get(ctx context.Context, token string) (*RefreshToken, error) {
	const q = `
SELECT user_id, token, expires_at
FROM refresh_tokens WHERE token=$1`
	row := r.db.Pool.QueryRow(ctx, q, token)
	var t RefreshToken
	if err := row.Scan(&t.UserID, &t.Token, &t.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *PostgresRepo) Delete(ctx context.Context, token string) error {
	const q = `DELETE FROM refresh_tokens WHERE token=$1`
	_, err := r.db.Pool.Exec(ctx, q, token)
	if err != nil {
		return fmt.Errorf("error performing sql request: %v", err)
	}
	return nil
}
