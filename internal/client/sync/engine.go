// Package sync owns the dirty/tombstone protocol that keeps the local
// record store consistent with the backend across unreliable connectivity.
//
// Every local mutation lands in the store first and is mirrored to the
// backend opportunistically. A record whose mirror call has not succeeded
// stays marked unsynced and is retried on the next reconciliation pass.
// Reconciliation pulls the remote state (remote wins on pull), then pushes
// everything still dirty, then refreshes the in-memory listing.
package sync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ekuzmina/notekeeper/internal/client/remote"
	"github.com/ekuzmina/notekeeper/internal/client/store"
	"github.com/ekuzmina/notekeeper/internal/common"
	"github.com/ekuzmina/notekeeper/internal/logging"
	"github.com/ekuzmina/notekeeper/internal/model"
)

// Online reports whether the backend is currently considered reachable.
// The connectivity monitor satisfies it.
type Online interface {
	IsOnline() bool
}

// Identity supplies the owner all operations are scoped to. The session
// satisfies it.
type Identity interface {
	OwnerID() string
	IsAuthenticated() bool
}

type Engine struct {
	store   store.Repository
	remote  remote.Client
	ident   Identity
	online  Online
	logger  logging.Logger
	nowFunc func() time.Time

	// mu guards the store's mutating call paths, the cached listing and
	// the watcher list. Never held across a network call.
	mu       sync.Mutex
	notes    []*model.Note
	watchers []chan struct{}

	// reconMu serializes reconciliation passes. A pass triggered while one
	// is in flight is dropped.
	reconMu sync.Mutex

	errMu       sync.Mutex
	lastSyncErr error
}

func NewEngine(s store.Repository, r remote.Client, ident Identity, online Online, logger logging.Logger) *Engine {
	return &Engine{
		store:   s,
		remote:  r,
		ident:   ident,
		online:  online,
		logger:  logger,
		nowFunc: time.Now,
	}
}

// Notes returns the cached listing from the last re-read: active records
// of the current owner, newest update first.
func (e *Engine) Notes() []*model.Note {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]*model.Note, len(e.notes))
	copy(out, e.notes)
	return out
}

// Watch returns a channel that fires whenever the cached listing changes.
// Events are coalesced; a slow receiver sees at least one.
func (e *Engine) Watch() <-chan struct{} {
	ch := make(chan struct{}, 1)
	e.mu.Lock()
	e.watchers = append(e.watchers, ch)
	e.mu.Unlock()
	return ch
}

// LastSyncError reports the most recent transient sync failure, or nil if
// the last pass was clean. It never blocks note-taking.
func (e *Engine) LastSyncError() error {
	e.errMu.Lock()
	defer e.errMu.Unlock()
	return e.lastSyncErr
}

func (e *Engine) setSyncErr(err error) {
	e.errMu.Lock()
	e.lastSyncErr = err
	e.errMu.Unlock()
}

// Create allocates a new note and persists it as dirty, then attempts an
// inline mirror when online. A failed mirror is swallowed: the note is
// returned with Synced=false and will be pushed on a later pass. Only a
// local storage fault is an error.
func (e *Engine) Create(ctx context.Context, title, body string) (*model.Note, error) {
	if !e.ident.IsAuthenticated() {
		return nil, common.ErrNotAuthenticated
	}
	owner := e.ident.OwnerID()

	note := model.NewNote(owner, title, body, e.nowFunc())

	e.mu.Lock()
	if err := e.store.Upsert(ctx, note); err != nil {
		e.mu.Unlock()
		return nil, err
	}
	e.reloadLocked(ctx, owner)
	e.mu.Unlock()

	e.mirror(ctx, note)
	return note, nil
}

// Update replaces title and body of an existing note. A missing or
// tombstoned id is a logged no-op.
func (e *Engine) Update(ctx context.Context, id, title, body string) error {
	if !e.ident.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	owner := e.ident.OwnerID()

	e.mu.Lock()
	note, err := e.store.GetByID(ctx, id)
	if err != nil {
		e.mu.Unlock()
		if errors.Is(err, common.ErrorNotFound) {
			e.logger.Warn(ctx, "update of unknown note ignored", "id", id)
			return nil
		}
		return err
	}
	if note.Deleted {
		e.mu.Unlock()
		e.logger.Warn(ctx, "update of deleted note ignored", "id", id)
		return nil
	}

	note.Title = title
	note.Body = body
	note.UpdatedAt = model.NextTimestamp(note.UpdatedAt)
	note.Synced = false

	if err := e.store.Upsert(ctx, note); err != nil {
		e.mu.Unlock()
		return err
	}
	e.reloadLocked(ctx, owner)
	e.mu.Unlock()

	e.mirror(ctx, note)
	return nil
}

// Remove tombstones a note. The row stays in the store until sign-out so
// the deletion can propagate; a missing id is a logged no-op.
func (e *Engine) Remove(ctx context.Context, id string) error {
	if !e.ident.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	owner := e.ident.OwnerID()

	e.mu.Lock()
	note, err := e.store.GetByID(ctx, id)
	if err != nil {
		e.mu.Unlock()
		if errors.Is(err, common.ErrorNotFound) {
			e.logger.Warn(ctx, "remove of unknown note ignored", "id", id)
			return nil
		}
		return err
	}

	note.Deleted = true
	note.UpdatedAt = model.NextTimestamp(note.UpdatedAt)
	note.Synced = false

	if err := e.store.Upsert(ctx, note); err != nil {
		e.mu.Unlock()
		return err
	}
	e.reloadLocked(ctx, owner)
	e.mu.Unlock()

	e.mirror(ctx, note)
	return nil
}

// mirror pushes a single freshly mutated note when online. Failures are
// swallowed: the record stays dirty and the error is kept for observability.
func (e *Engine) mirror(ctx context.Context, note *model.Note) {
	if e.online != nil && !e.online.IsOnline() {
		return
	}

	var err error
	if note.Deleted {
		err = e.remote.MarkDeleted(ctx, note.ID)
	} else {
		err = e.remote.UpsertOne(ctx, note)
	}
	if err != nil {
		e.logger.Info(ctx, "mirror failed, note left dirty", "id", note.ID, "error", err)
		e.setSyncErr(err)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.store.MarkSynced(ctx, note.ID); err != nil {
		e.logger.Error(ctx, "marking note synced failed", "id", note.ID, "error", err)
		return
	}
	note.Synced = true
	e.reloadLocked(ctx, note.OwnerID)
}

// Reconcile runs one full pass: pull remote state, push everything dirty,
// re-read the listing. A pass triggered while another is in flight is
// dropped. A pull failure aborts the pass and leaves all dirty flags
// untouched; push failures are isolated per record.
func (e *Engine) Reconcile(ctx context.Context) error {
	if !e.ident.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	if !e.reconMu.TryLock() {
		return nil
	}
	defer e.reconMu.Unlock()

	owner := e.ident.OwnerID()

	if err := e.pull(ctx, owner); err != nil {
		e.logger.Info(ctx, "pull failed, reconciliation aborted", "error", err)
		e.setSyncErr(err)
		return fmt.Errorf("%w: %v", common.ErrRemoteUnavailable, err)
	}

	failed := e.push(ctx, owner)

	e.mu.Lock()
	e.reloadLocked(ctx, owner)
	e.mu.Unlock()

	if failed == 0 {
		e.setSyncErr(nil)
	}
	return nil
}

// Refresh is pull-then-read without a push phase. It is always safe
// offline: when the pull fails it degrades to the local listing. A
// successful pull with nothing left dirty clears the transient sync
// error, since there is no pending change left to report.
func (e *Engine) Refresh(ctx context.Context) ([]*model.Note, error) {
	if !e.ident.IsAuthenticated() {
		return nil, common.ErrNotAuthenticated
	}
	owner := e.ident.OwnerID()

	if err := e.pull(ctx, owner); err != nil {
		e.logger.Info(ctx, "pull failed, serving local state", "error", err)
		e.setSyncErr(err)
	} else {
		e.mu.Lock()
		dirty, derr := e.store.ListDirty(ctx, owner)
		e.mu.Unlock()
		if derr == nil && len(dirty) == 0 {
			e.setSyncErr(nil)
		}
	}

	e.mu.Lock()
	e.reloadLocked(ctx, owner)
	e.mu.Unlock()

	return e.Notes(), nil
}

// pull fetches the owner's active records and writes each one over the
// local row, synced and not deleted. Remote wins on pull regardless of
// local timestamps; a concurrent local edit stays dirty and is re-pushed.
func (e *Engine) pull(ctx context.Context, owner string) error {
	fetched, err := e.remote.FetchActive(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, n := range fetched {
		n.Synced = true
		n.Deleted = false
		if err := e.store.Upsert(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

// push mirrors every dirty record, tombstones included, marking each one
// synced on success. Failures are logged and left for the next pass;
// the count of failed records is returned.
func (e *Engine) push(ctx context.Context, owner string) int {
	e.mu.Lock()
	dirty, err := e.store.ListDirty(ctx, owner)
	e.mu.Unlock()
	if err != nil {
		e.logger.Error(ctx, "listing dirty notes failed", "error", err)
		e.setSyncErr(err)
		return 1
	}

	failed := 0
	for _, n := range dirty {
		var err error
		if n.Deleted {
			err = e.remote.MarkDeleted(ctx, n.ID)
		} else {
			err = e.remote.UpsertOne(ctx, n)
		}
		if err != nil {
			failed++
			e.logger.Info(ctx, "push failed, note left dirty", "id", n.ID, "error", err)
			e.setSyncErr(err)
			continue
		}

		e.mu.Lock()
		if err := e.store.MarkSynced(ctx, n.ID); err != nil {
			e.logger.Error(ctx, "marking note synced failed", "id", n.ID, "error", err)
		}
		e.mu.Unlock()
	}
	return failed
}

// HandleLogout purges every locally persisted row of the outgoing owner.
// Unsynced work is lost; callers are expected to reconcile first when the
// backend is reachable.
func (e *Engine) HandleLogout(ctx context.Context) error {
	if !e.ident.IsAuthenticated() {
		return common.ErrNotAuthenticated
	}
	owner := e.ident.OwnerID()

	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.store.PurgeOwner(ctx, owner); err != nil {
		return err
	}
	e.notes = nil
	e.notifyLocked()
	return nil
}

// reloadLocked re-reads the active listing and wakes watchers.
// Callers hold mu.
func (e *Engine) reloadLocked(ctx context.Context, owner string) {
	notes, err := e.store.ListActive(ctx, owner)
	if err != nil {
		e.logger.Error(ctx, "reloading listing failed", "error", err)
		return
	}
	e.notes = notes
	e.notifyLocked()
}

func (e *Engine) notifyLocked() {
	for _, ch := range e.watchers {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
