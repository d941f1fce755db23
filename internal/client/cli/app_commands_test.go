package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/ekuzmina/notekeeper/internal/client/config"
	"github.com/ekuzmina/notekeeper/internal/client/netmon"
	"github.com/ekuzmina/notekeeper/internal/client/session"
	"github.com/ekuzmina/notekeeper/internal/client/store"
	"github.com/ekuzmina/notekeeper/internal/client/sync"
	"github.com/ekuzmina/notekeeper/internal/logging"
	"github.com/ekuzmina/notekeeper/internal/model"
)

// stubRemote satisfies remote.Client without a server.
type stubRemote struct {
	pingErr     error
	loginOwner  string
	loginErr    error
	registerErr error

	serverNotes []*model.Note
	fetchErr    error

	upserts int
	deletes int
}

func (s *stubRemote) Close() error { return nil }
func (s *stubRemote) Register(ctx context.Context, username, password string) error {
	return s.registerErr
}
func (s *stubRemote) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginOwner, s.loginErr
}
func (s *stubRemote) Logout()                        {}
func (s *stubRemote) Ping(ctx context.Context) error { return s.pingErr }
func (s *stubRemote) FetchActive(ctx context.Context) ([]*model.Note, error) {
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	out := make([]*model.Note, 0, len(s.serverNotes))
	for _, n := range s.serverNotes {
		c := *n
		c.Synced = true
		c.Deleted = false
		out = append(out, &c)
	}
	return out, nil
}
func (s *stubRemote) UpsertOne(ctx context.Context, note *model.Note) error {
	s.upserts++
	return nil
}
func (s *stubRemote) MarkDeleted(ctx context.Context, id string) error {
	s.deletes++
	return nil
}

func setupApp(t *testing.T, rc *stubRemote) *App {
	t.Helper()

	ctx := context.Background()
	db, repo, err := store.InitDatabase(ctx, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := logging.NewSlogLogger(slog.New(slog.DiscardHandler))
	sess := session.New()
	monitor := netmon.NewMonitor(rc, time.Minute, logger)
	engine := sync.NewEngine(repo, rc, sess, monitor, logger)

	return &App{
		config:  &config.Config{},
		logger:  logger,
		db:      db,
		remote:  rc,
		session: sess,
		monitor: monitor,
		engine:  engine,
		reader:  bufio.NewReader(strings.NewReader("")),
	}
}

// script replaces the interactive input seams with canned answers.
func script(t *testing.T, answers ...string) {
	t.Helper()

	origText := getSimpleText
	origPass := getPassword
	origPrint := printlnFn
	t.Cleanup(func() {
		getSimpleText = origText
		getPassword = origPass
		printlnFn = origPrint
	})

	i := 0
	getSimpleText = func(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
		if i >= len(answers) {
			t.Fatalf("unexpected prompt: %s", prompt)
		}
		a := answers[i]
		i++
		return a, nil
	}
	getPassword = func(w io.Writer) ([]byte, error) { return []byte("pa55"), nil }
	printlnFn = func(...any) (int, error) { return 0, nil }
}

func TestApp_AddNoteOffline(t *testing.T) {
	rc := &stubRemote{pingErr: errors.New("down")}
	app := setupApp(t, rc)
	app.session.SetOwner("owner-1", "alice")

	script(t, "groceries")
	app.reader = bufio.NewReader(strings.NewReader("milk\neggs\n\n"))

	require.NoError(t, app.AddNote(context.Background()))

	notes := app.engine.Notes()
	require.Len(t, notes, 1)
	require.Equal(t, "groceries", notes[0].Title)
	require.Equal(t, "milk\neggs", notes[0].Body)
	require.False(t, notes[0].Synced)
	require.Zero(t, rc.upserts)
}

func TestApp_DeleteNote(t *testing.T) {
	rc := &stubRemote{pingErr: errors.New("down")}
	app := setupApp(t, rc)
	app.session.SetOwner("owner-1", "alice")

	script(t, "todo")
	app.reader = bufio.NewReader(strings.NewReader("body\n\n"))
	require.NoError(t, app.AddNote(context.Background()))
	id := app.engine.Notes()[0].ID

	script(t, id)
	require.NoError(t, app.Delete(context.Background()))

	require.Empty(t, app.engine.Notes())
}

func TestApp_LoginSetsSessionAndSyncs(t *testing.T) {
	rc := &stubRemote{loginOwner: "owner-9"}
	rc.serverNotes = []*model.Note{
		{ID: "n1", OwnerID: "owner-9", Title: "from server", UpdatedAt: 10},
	}
	app := setupApp(t, rc)

	script(t, "bob")
	require.NoError(t, app.Login(context.Background()))

	require.True(t, app.session.IsAuthenticated())
	require.Equal(t, "owner-9", app.session.OwnerID())
	require.Equal(t, "bob", app.session.Username())

	notes := app.engine.Notes()
	require.Len(t, notes, 1)
	require.Equal(t, "from server", notes[0].Title)
}

func TestApp_LoginFailureLeavesSessionClear(t *testing.T) {
	rc := &stubRemote{loginErr: errors.New("bad credentials")}
	app := setupApp(t, rc)

	script(t, "bob")
	require.Error(t, app.Login(context.Background()))
	require.False(t, app.session.IsAuthenticated())
}

func TestApp_LogoutPurgesLocalNotes(t *testing.T) {
	rc := &stubRemote{pingErr: errors.New("down")}
	app := setupApp(t, rc)
	app.session.SetOwner("owner-1", "alice")

	script(t, "secret note")
	app.reader = bufio.NewReader(strings.NewReader("body\n\n"))
	require.NoError(t, app.AddNote(context.Background()))

	script(t)
	require.NoError(t, app.Logout(context.Background()))

	require.False(t, app.session.IsAuthenticated())
	require.Empty(t, app.engine.Notes())
}

func TestApp_RegisterReportsError(t *testing.T) {
	rc := &stubRemote{registerErr: errors.New("username taken")}
	app := setupApp(t, rc)

	script(t, "bob")
	require.Error(t, app.Register(context.Background()))
}

// The sqlite driver must be registered by this package itself, not by a
// test dependency: NewApp is the only production path that opens the
// local database.
func TestApp_LocalStoreDriverAvailable(t *testing.T) {
	db, _, err := store.InitDatabase(context.Background(), ":memory:")
	require.NoError(t, err)
	require.NoError(t, db.Close())
}

func TestApp_CloseReleasesLocalStore(t *testing.T) {
	rc := &stubRemote{pingErr: errors.New("down")}
	app := setupApp(t, rc)
	app.session.SetOwner("owner-1", "alice")

	require.NoError(t, app.Close())

	_, err := app.engine.Create(context.Background(), "after close", "body")
	require.Error(t, err)
}

func TestApp_StatusShowsUserAndMode(t *testing.T) {
	rc := &stubRemote{pingErr: errors.New("down")}
	app := setupApp(t, rc)

	require.Equal(t, "(offline)", app.getStatus())

	app.session.SetOwner("owner-1", "alice")
	rc.pingErr = nil
	app.monitor.Probe(context.Background())

	require.Equal(t, "(alice online)", app.getStatus())
}
