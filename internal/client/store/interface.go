package store

import (
	"context"

	"github.com/ekuzmina/notekeeper/internal/model"
)

// Repository describes the local note table. Implementations are backed by
// a device-resident SQLite database.
//
// Every row is scoped to one owner; callers pass the owner id explicitly so
// that switching the authenticated identity can never surface another
// identity's rows.
type Repository interface {
	// Upsert inserts or fully replaces the row with the note's id.
	// There is no partial-field update at this layer: callers supply the
	// complete row.
	Upsert(ctx context.Context, note *model.Note) error

	// GetByID returns one row regardless of its deleted flag, or
	// common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*model.Note, error)

	// ListActive returns non-deleted rows for the owner, newest update
	// first. The result is a finite snapshot, re-evaluated on each call.
	ListActive(ctx context.Context, ownerID string) ([]*model.Note, error)

	// ListDirty returns rows with synced = false for the owner, tombstones
	// included.
	ListDirty(ctx context.Context, ownerID string) ([]*model.Note, error)

	// MarkSynced sets synced = true without touching other fields.
	// A missing row is a no-op.
	MarkSynced(ctx context.Context, id string) error

	// PurgeOwner physically removes every row for the owner. Used only on
	// sign-out.
	PurgeOwner(ctx context.Context, ownerID string) error

	// PurgeTombstones physically removes synced tombstones last updated
	// before the given timestamp. Extension hook: nothing calls it in the
	// normal sync flow, so tombstones accumulate, matching the propagation
	// model.
	PurgeTombstones(ctx context.Context, ownerID string, before int64) error
}
