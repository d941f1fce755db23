// Package model defines the Note record shared by the client store, the
// sync engine, and the transport boundary.
package model

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Note is a single record of the local-first store.
//
// Timestamps are unix microseconds, so they sort numerically and survive
// round-trips through SQLite, Postgres, and protobuf unchanged. UpdatedAt
// advances monotonically on every mutation, including tombstoning.
//
// Synced is true only when the local copy is known to match the remote one
// as of UpdatedAt. Deleted marks a tombstone: the row stays in the local
// store so the deletion can propagate, but it never appears in listings.
type Note struct {
	ID        string
	OwnerID   string
	Title     string
	Body      string
	CreatedAt int64
	UpdatedAt int64
	Synced    bool
	Deleted   bool
}

// NewNote allocates a note with a fresh id for the given owner. The note
// starts unsynced; the caller decides whether to attempt a mirror call.
func NewNote(ownerID, title, body string, now time.Time) *Note {
	ts := now.UnixMicro()
	return &Note{
		ID:        NewID(now),
		OwnerID:   ownerID,
		Title:     title,
		Body:      body,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

// NewID builds a client-generated note id: a high-resolution timestamp plus
// a random suffix. Collisions within one device's lifetime are negligible.
func NewID(now time.Time) string {
	return strconv.FormatInt(now.UnixNano(), 36) + "-" + uuid.NewString()[:8]
}

// NextTimestamp returns a unix-microsecond timestamp strictly greater than
// prev. Wall-clock time is used when it is already ahead; otherwise prev is
// bumped by one, which keeps UpdatedAt monotonic even under clock skew or
// two mutations within the same microsecond.
func NextTimestamp(prev int64) int64 {
	now := time.Now().UnixMicro()
	if now <= prev {
		return prev + 1
	}
	return now
}
