package notes

import (
	"context"

	"github.com/ekuzmina/notekeeper/internal/model"
	"github.com/ekuzmina/notekeeper/internal/server/storage"
)

// PostgresRepo implements Repository using PostgreSQL.
type PostgresRepo struct{ db *storage.DB }

// NewPostgresRepo constructs a notes repository.
func NewPostgresRepo(db *storage.DB) *PostgresRepo { return &PostgresRepo{db: db} }

func (r *PostgresRepo) ListActive(ctx context.Context, ownerID string) ([]*model.Note, error) {
	const q = `
SELECT id, owner_id, title, body, created_at, updated_at, deleted
FROM notes WHERE owner_id=$1 AND NOT deleted
ORDER BY updated_at DESC`
	rows, err := r.db.Pool.Query(ctx, q, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*model.Note
	for rows.Next() {
		n := &model.Note{Synced: true}
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt, &n.Deleted); err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, rows.Err()
}

func (r *PostgresRepo) Upsert(ctx context.Context, n *model.Note) error {
	// the conflict branch is owner-guarded so one user cannot overwrite
	// another user's note by reusing its id
	const q = `
INSERT INTO notes (id, owner_id, title, body, created_at, updated_at, deleted)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
  title = excluded.title,
  body = excluded.body,
  updated_at = excluded.updated_at,
  deleted = excluded.deleted
WHERE notes.owner_id = excluded.owner_id`
	_, err := r.db.Pool.Exec(ctx, q,
		n.ID, n.OwnerID, n.Title, n.Body, n.CreatedAt, n.UpdatedAt, n.Deleted)
	return err
}

func (r *PostgresRepo) MarkDeleted(ctx context.Context, id string, ownerID string) error {
	const q = `
UPDATE notes SET deleted=true WHERE id=$1 AND owner_id=$2`
	_, err := r.db.Pool.Exec(ctx, q, id, ownerID)
	return err
}
