// Package server initializes and runs the application: it loads config,
// opens the database, runs migrations, wires the services behind the
// authorization gate, and serves the HTTP API until shut down.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/CARE-UiT/Reflectometer/internal/logging"
	"github.com/CARE-UiT/Reflectometer/internal/server/authz"
	"github.com/CARE-UiT/Reflectometer/internal/server/config"
	"github.com/CARE-UiT/Reflectometer/internal/server/httpapi"
	"github.com/CARE-UiT/Reflectometer/internal/server/repositories/repomanager"
	"github.com/CARE-UiT/Reflectometer/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *httpapi.Server
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	db, err := sql.Open("pgx", cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("db ping error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	gate := authz.NewGate(db, rm)
	blobs := services.NewBlobService(cfg)

	srv := httpapi.NewServer(cfg.EndpointAddrHTTP, logger,
		services.NewUserService(db, rm, cfg),
		services.NewCourseService(db, rm, gate),
		services.NewSessionService(db, rm, gate),
		services.NewParticipantService(db, rm, gate),
		services.NewCurveService(db, rm, gate, blobs, cfg.MaxInlinePayloadBytes),
		services.NewKeyMomentService(db, rm, gate),
	)

	return &App{config: cfg, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
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
		if err := app.server.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "error closing db", "error", err.Error())
	}
}
