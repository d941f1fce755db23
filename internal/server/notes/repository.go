package notes

import (
	"context"

	"github.com/ekuzmina/notekeeper/internal/model"
)

type Repository interface {
	// ListActive returns the owner's non-deleted notes, newest update first.
	ListActive(ctx context.Context, ownerID string) ([]*model.Note, error)

	// Upsert inserts or replaces the note with its id. The update only
	// applies when the stored row belongs to the same owner.
	Upsert(ctx context.Context, note *model.Note) error

	// MarkDeleted tombstones the owner's note. An absent or already
	// tombstoned row is a success: the deletion has nothing left to do.
	MarkDeleted(ctx context.Context, id string, ownerID string) error
}
