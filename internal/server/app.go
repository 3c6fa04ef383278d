// Package server initializes and runs the authentication service: it wires
// the database, repositories, the auth service and the HTTP endpoint, and
// handles graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/calidadsoft/loginbackend/internal/logging"
	"github.com/calidadsoft/loginbackend/internal/server/auth"
	"github.com/calidadsoft/loginbackend/internal/server/config"
	"github.com/calidadsoft/loginbackend/internal/server/httpapi"
	"github.com/calidadsoft/loginbackend/internal/server/seed"
	"github.com/calidadsoft/loginbackend/internal/server/shared/db"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	manager     db.RepositoryManager
	authService *auth.Service
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {

	sl := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(sl)

	manager, err := db.NewPostgresRepositoryManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	hasher := auth.BcryptHasher{}
	issuer := auth.NewJWTIssuer([]byte(cfg.SecretKey), cfg.TokenValidityDuration)
	as := auth.NewService(manager.Users(), issuer, hasher, auth.AcceptAnyToken{}, cfg, logger)

	if cfg.SeedUsers {
		seeder := seed.New(manager.Conn(), hasher, logger)
		if err := seeder.EnsureAdmin(ctx, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
			return nil, fmt.Errorf("seeding error: %w", err)
		}
	}

	return &App{config: cfg, logger: logger, manager: manager, authService: as}, nil
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

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.authService)

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
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.manager.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
}
