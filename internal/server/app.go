// Package server initializes and runs the NoteKeeper server application.
// It loads the configuration, applies database migrations, wires the
// Postgres-backed services together and starts the gRPC endpoint with
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.uber.org/zap"

	"github.com/ekuzmina/notekeeper/internal/logging"
	"github.com/ekuzmina/notekeeper/internal/server/config"
	"github.com/ekuzmina/notekeeper/internal/server/migrations"
	"github.com/ekuzmina/notekeeper/internal/server/notes"
	"github.com/ekuzmina/notekeeper/internal/server/refreshtokens"
	"github.com/ekuzmina/notekeeper/internal/server/storage"
	"github.com/ekuzmina/notekeeper/internal/server/users"

	gs "github.com/ekuzmina/notekeeper/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *storage.DB
	userService *users.Service
	noteService *notes.Service
}

func NewApp(ctx context.Context) (*App, error) {

	zl, err := zap.NewProduction()
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}
	logger := logging.NewZapLogger(zl)

	cfg := config.LoadConfig()

	if err := migrations.Up(ctx, cfg.DatabaseDSN); err != nil {
		return nil, fmt.Errorf("db migration error: %w", err)
	}

	db, err := storage.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(users.NewPostgresRepo(db), refreshtokens.NewPostgresRepo(db), cfg)
	ns := notes.NewService(notes.NewPostgresRepo(db))

	return &App{config: cfg, logger: logger, db: db, userService: us, noteService: ns}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.userService, app.noteService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
		return
	}

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	app.db.Close()
}
