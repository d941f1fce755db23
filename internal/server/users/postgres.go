package users

import (
	"context"
	"errors"

	"github.com/ekuzmina/notekeeper/internal/common"
	"github.com/ekuzmina/notekeeper/internal/server/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// PostgresRepo implements Repository using PostgreSQL.
type PostgresRepo struct{ db *storage.DB }

// NewPostgresRepo constructs a user repository.
func NewPostgresRepo(db *storage.DB) *PostgresRepo { return &PostgresRepo{db: db} }

// Create inserts a new user row. A username collision maps to
// common.ErrorAlreadyExists.
func (r *PostgresRepo) Create(ctx context.Context, u *User) (*User, error) {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	const q = `
INSERT INTO users (id, username, salt, password_hash)
VALUES ($1, $2, $3, $4)
RETURNING created_at`
	row := r.db.Pool.QueryRow(ctx, q, u.ID, u.Username, u.Salt, u.PasswordHash)
	if err := row.Scan(&u.CreatedAt); err != nil {
		if storage.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, err
	}
	return u, nil
}

// GetByUsername selects a user by username.
func (r *PostgresRepo) GetByUsername(ctx context.Context, username string) (*User, error) {
	const q = `
SELECT id, username, salt, password_hash, created_at
FROM users WHERE username=$1`
	row := r.db.Pool.QueryRow(ctx, q, username)
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Salt, &u.PasswordHash, &u.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, err
	}
	return &u, nil
}
