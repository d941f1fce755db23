package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/ekuzmina/notekeeper/internal/client/config"
	"github.com/ekuzmina/notekeeper/internal/client/netmon"
	"github.com/ekuzmina/notekeeper/internal/client/remote"
	"github.com/ekuzmina/notekeeper/internal/client/session"
	"github.com/ekuzmina/notekeeper/internal/client/store"
	"github.com/ekuzmina/notekeeper/internal/client/sync"
	"github.com/ekuzmina/notekeeper/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config  *config.Config
	logger  logging.Logger
	db      *sql.DB
	remote  remote.Client
	session *session.Session
	monitor *netmon.Monitor
	engine  *sync.Engine
	reader  *bufio.Reader
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	db, repo, err := store.InitDatabase(ctx, c.DatabaseFile)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	rc, err := remote.NewGRPCClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	sess := session.New()
	monitor := netmon.NewMonitor(rc, c.OnlineCheckInterval, logger)
	engine := sync.NewEngine(repo, rc, sess, monitor, logger)

	return &App{
		config:  c,
		logger:  logger,
		db:      db,
		remote:  rc,
		session: sess,
		monitor: monitor,
		engine:  engine,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) mode() Mode {
	if a.monitor.IsOnline() {
		return ModeOnline
	}
	return ModeOffline
}

func (a *App) getStatus() string {
	s := ""
	if a.session.IsAuthenticated() {
		s = a.session.Username() + " "
	}
	return fmt.Sprintf("(%s%s)", s, a.mode())
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// startConnectivityWatcher runs the periodic probe loop and reconciles
// pending local changes whenever connectivity comes back.
func (a *App) startConnectivityWatcher(ctx context.Context) {
	events := a.monitor.Subscribe()

	go a.monitor.Run(ctx)

	go func() {
		for {
			select {
			case online := <-events:
				if online && a.isLoggedIn() {
					if err := a.engine.Reconcile(ctx); err != nil {
						a.logger.Warn(ctx, "background sync failed", "error", err.Error())
					}
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Close releases the gRPC connection and the local database handle.
func (a *App) Close() error {
	err := a.remote.Close()
	if dbErr := a.db.Close(); err == nil {
		err = dbErr
	}
	return err
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a.monitor.Probe(ctx)
	a.startConnectivityWatcher(ctx)

	printlnFn("Welcome to NoteKeeper CLI (type 'help' for commands)")

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
