// Package store provides the client-side persistence layer for notes: a
// Repository interface and its SQLite implementation over dbx.DBTX.
//
// Rows carry two flags next to the note content: synced (the local copy is
// known to match the remote one) and deleted (tombstone awaiting
// propagation). Tombstoned rows stay in the table; listings exclude them.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/ekuzmina/notekeeper/internal/common"
	"github.com/ekuzmina/notekeeper/internal/dbx"
	"github.com/ekuzmina/notekeeper/internal/model"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or
// *sql.Tx). All failures are wrapped with common.ErrStorage so callers can
// classify them without knowing the driver.
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", common.ErrStorage, op, err)
}

// Upsert inserts or fully replaces the row with the note's id.
func (r *SQLiteRepository) Upsert(ctx context.Context, n *model.Note) error {
	query := `INSERT INTO notes (id, owner_id, title, body, created_at, updated_at, synced, deleted)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET owner_id = excluded.owner_id,
				title = excluded.title,
				body = excluded.body,
				created_at = excluded.created_at,
				updated_at = excluded.updated_at,
				synced = excluded.synced,
				deleted = excluded.deleted
	`
	_, err := r.db.ExecContext(ctx, query,
		n.ID, n.OwnerID, n.Title, n.Body, n.CreatedAt, n.UpdatedAt, n.Synced, n.Deleted)
	if err != nil {
		return storageErr("upsert note", err)
	}
	return nil
}

// GetByID returns one row, tombstones included.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*model.Note, error) {
	query := `SELECT id, owner_id, title, body, created_at, updated_at, synced, deleted
			FROM notes WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)

	n := &model.Note{}
	err := row.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt, &n.Synced, &n.Deleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, storageErr("get note", err)
	}
	return n, nil
}

// ListActive returns the owner's non-deleted rows ordered by updated_at
// descending.
func (r *SQLiteRepository) ListActive(ctx context.Context, ownerID string) ([]*model.Note, error) {
	query := `SELECT id, owner_id, title, body, created_at, updated_at, synced, deleted
			FROM notes WHERE owner_id = ? AND deleted = 0
			ORDER BY updated_at DESC`
	return r.list(ctx, query, ownerID)
}

// ListDirty returns the owner's unsynced rows, tombstones included.
func (r *SQLiteRepository) ListDirty(ctx context.Context, ownerID string) ([]*model.Note, error) {
	query := `SELECT id, owner_id, title, body, created_at, updated_at, synced, deleted
			FROM notes WHERE owner_id = ? AND synced = 0`
	return r.list(ctx, query, ownerID)
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]*model.Note, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, storageErr("select notes", err)
	}
	defer rows.Close()

	var result []*model.Note
	for rows.Next() {
		n := &model.Note{}
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt, &n.Synced, &n.Deleted); err != nil {
			return nil, storageErr("scan note", err)
		}
		result = append(result, n)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("iterate notes", err)
	}
	return result, nil
}

// MarkSynced flips synced to true for one row; a missing row is a no-op.
func (r *SQLiteRepository) MarkSynced(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `UPDATE notes SET synced = 1 WHERE id = ?`, id)
	if err != nil {
		return storageErr("mark synced", err)
	}
	return nil
}

// PurgeOwner removes every row for the owner.
func (r *SQLiteRepository) PurgeOwner(ctx context.Context, ownerID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notes WHERE owner_id = ?`, ownerID)
	if err != nil {
		return storageErr("purge owner", err)
	}
	return nil
}

// PurgeTombstones removes synced tombstones older than the given
// updated_at. Unsynced tombstones are kept: their deletion has not reached
// the server yet.
func (r *SQLiteRepository) PurgeTombstones(ctx context.Context, ownerID string, before int64) error {
	query := `DELETE FROM notes WHERE owner_id = ? AND deleted = 1 AND synced = 1 AND updated_at < ?`
	_, err := r.db.ExecContext(ctx, query, ownerID, before)
	if err != nil {
		return storageErr("purge tombstones", err)
	}
	return nil
}
