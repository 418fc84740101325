package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aussiebroadwan/campus/internal/campus/blob"
	httpapi "github.com/aussiebroadwan/campus/internal/campus/http"
	"github.com/aussiebroadwan/campus/internal/campus/service"
	"github.com/aussiebroadwan/campus/internal/campus/session"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/postgres"
	"github.com/aussiebroadwan/campus/internal/campus/store/drivers/sqlite"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

// BuildVersion is overridden at build time via -ldflags "-X".
var BuildVersion = "v0.1.0"

// Application encapsulates the campus service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	blobs    blob.Store
	sessions session.Store

	// Services
	authService         *service.AuthService
	profileService      *service.ProfileService
	directoryService    *service.DirectoryService
	messagingService    *service.MessagingService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "campus",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initBlobs(context.Background()); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initSessions()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("campus service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.housekeepingService.Stop()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down campus service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	if c, ok := app.sessions.(io.Closer); ok {
		_ = c.Close()
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("campus service stopped")
	return nil
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)
	switch app.cfg.DBDriver {
	case "postgres":
		db, err = postgres.NewStore(app.cfg.DatabaseDSN)
	default:
		dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", app.cfg.DatabaseFile)
		db, err = sqlite.NewStore(dsn)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DBDriver)
	return nil
}

func (app *Application) initBlobs(ctx context.Context) error {
	switch app.cfg.BlobBackend {
	case "s3":
		s3, err := blob.NewS3Store(ctx, blob.S3Config(app.cfg.S3))
		if err != nil {
			return fmt.Errorf("failed to initialize s3 blob store: %w", err)
		}
		app.blobs = s3
	default:
		disk, err := blob.NewDiskStore(app.cfg.UploadDir)
		if err != nil {
			return fmt.Errorf("failed to initialize upload directory: %w", err)
		}
		app.blobs = disk
	}

	app.logger.Info("blob store ready", "backend", app.cfg.BlobBackend)
	return nil
}

func (app *Application) initSessions() {
	if app.cfg.SessionStore == "database" {
		app.sessions = session.NewDatastoreStore(app.db)
		return
	}
	app.sessions = session.NewMemoryStore(time.Minute)
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:       app.db,
		EmailDomain: app.cfg.EmailDomain,
		BcryptCost:  app.cfg.BcryptCost,
	}
	app.profileService = &service.ProfileService{Store: app.db, Blobs: app.blobs}
	app.directoryService = &service.DirectoryService{Store: app.db, UploadPrefix: app.cfg.UploadPrefix}
	app.messagingService = &service.MessagingService{
		Store:       app.db,
		Blobs:       app.blobs,
		Concurrency: app.cfg.BroadcastConcurrency,
	}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	manager := session.NewManager(app.sessions, app.cfg.SessionCookie, app.cfg.SessionTTL, app.cfg.CookieSecure)

	router := httpapi.NewRouter(
		httpapi.Config{
			BuildVersion: BuildVersion,
			Pages: httpapi.Pages{
				Home:    app.cfg.HomePage,
				Profile: app.cfg.ProfilePage,
				Login:   app.cfg.LoginPage,
			},
			UploadPrefix:   app.cfg.UploadPrefix,
			MaxUploadBytes: app.cfg.MaxUploadBytes,
			StaticDir:      app.cfg.StaticDir,
			CORSOrigins:    app.cfg.CORSOrigins,
		},
		app.db,
		manager,
		app.blobs,
		app.logger,
	)

	// Wire services to router
	router.AuthService = app.authService
	router.ProfileService = app.profileService
	router.DirectoryService = app.directoryService
	router.MessagingService = app.messagingService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
