// Package server wires the database, services and HTTP transport together
// and runs them until the process is asked to stop.
package server

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/eduhub/eduhub/internal/logging"
	"github.com/eduhub/eduhub/internal/server/auth"
	"github.com/eduhub/eduhub/internal/server/config"
	"github.com/eduhub/eduhub/internal/server/repositories/repomanager"
	"github.com/eduhub/eduhub/internal/server/rest"
	"github.com/eduhub/eduhub/internal/server/services"
)

var newRepositoryManager = repomanager.NewPostgresRepositoryManager

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *rest.Server
}

// NewServices builds the business layer on top of db.
func NewServices(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) rest.Services {
	hasher := auth.NewHasher()

	return rest.Services{
		Auth:               services.NewAuthService(db, m, hasher, cfg),
		Users:              services.NewUserService(db, m, hasher),
		Clients:            services.NewClientService(db, m),
		ClientAccounts:     services.NewClientAccountService(db, m),
		Classes:            services.NewClassService(db, m),
		ClassUsers:         services.NewClassUserService(db, m),
		Environments:       services.NewEnvironmentService(db, m),
		EnvironmentHistory: services.NewEnvironmentHistoryService(db, m),
	}
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewJSONLogger(os.Stdout, logging.ParseLevel(c.LogLevel))
	return newApp(ctx, c, logger)
}

func newApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	m := newRepositoryManager()

	db, err := OpenDB(ctx, c.DatabaseDSN, m)
	if err != nil {
		return nil, err
	}

	srv := rest.NewServer(c.EndpointAddrHTTP, logger, c.SecretKey, NewServices(db, m, c))

	return &App{config: c, logger: logger, db: db, server: srv}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves requests until ctx is cancelled or a termination signal
// arrives, then closes the database.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddrHTTP)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
