package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/officemate/backend/internal/api/email"
	httpapi "github.com/officemate/backend/internal/api/http"
	"github.com/officemate/backend/internal/api/service"
	"github.com/officemate/backend/internal/api/store"
	"github.com/officemate/backend/internal/api/store/drivers/sqlite"
	"github.com/officemate/backend/pkg/jwtx"
	"github.com/officemate/backend/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application encapsulates the API service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db       store.Store
	keys     *jwtx.KeyCache
	verifier jwtx.Verifier

	// Services
	userService         *service.UserService
	businessService     *service.BusinessService
	appointmentService  *service.AppointmentService
	rsvpService         *service.RSVPService
	workingHoursService *service.WorkingHoursService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "officemate-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initVerifier(); err != nil {
		_ = app.db.Close()
		return nil, err
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("api service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
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
	app.logger.Info("shutting down api service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("api service stopped")
	return nil
}

// initDatabase initializes the database and applies migrations
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

// initVerifier builds the JWKS key cache and the access token verifier for
// the configured issuer. With eager fetch enabled a dead JWKS endpoint stops
// the service from starting at all, rather than failing every request later.
func (app *Application) initVerifier() error {
	issuer := app.cfg.Issuer()

	jwksURL := app.cfg.JWKSURL
	if jwksURL == "" {
		jwksURL = jwtx.JWKSURLForIssuer(issuer)
	}

	app.keys = jwtx.NewKeyCache(jwtx.KeyCacheOptions{JWKSURL: jwksURL})

	if app.cfg.EagerJWKS {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := app.keys.Refresh(ctx); err != nil {
			return fmt.Errorf("failed to warm up JWKS cache from %s: %w", jwksURL, err)
		}
		app.logger.Info("jwks cache warmed up", "url", jwksURL)
	}

	app.verifier = jwtx.NewAccessVerifier(app.keys, issuer, app.cfg.CognitoClientID)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	var sender email.Sender = email.LogSender{}
	if app.cfg.SMTPHost != "" {
		sender = email.NewSMTPSender(
			app.cfg.SMTPHost, app.cfg.SMTPPort,
			app.cfg.SMTPFrom, app.cfg.SMTPUser, app.cfg.SMTPPass,
		)
	} else {
		app.logger.Warn("SMTP_HOST not set, invite emails go to the log only")
	}

	notifier := &service.NotificationService{
		Sender:      sender,
		RSVPBaseURL: app.cfg.RSVPBaseURL,
	}

	app.userService = &service.UserService{Store: app.db}
	app.businessService = &service.BusinessService{Store: app.db}
	app.appointmentService = &service.AppointmentService{
		Store:    app.db,
		Notifier: notifier,
	}
	app.rsvpService = &service.RSVPService{Store: app.db}
	app.workingHoursService = &service.WorkingHoursService{Store: app.db}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.keys,
		app.verifier,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.RequiredScope = app.cfg.RequiredScope
	router.UserService = app.userService
	router.BusinessService = app.businessService
	router.AppointmentService = app.appointmentService
	router.RSVPService = app.rsvpService
	router.WorkingHoursService = app.workingHoursService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
