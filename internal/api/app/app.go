package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/myvehicles/internal/api/http"
	"github.com/aussiebroadwan/myvehicles/internal/api/metrics"
	"github.com/aussiebroadwan/myvehicles/internal/api/service"
	"github.com/aussiebroadwan/myvehicles/internal/api/store"
	"github.com/aussiebroadwan/myvehicles/pkg/cryptox"
	"github.com/aussiebroadwan/myvehicles/pkg/jwtx"
	"github.com/aussiebroadwan/myvehicles/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v1.0.1"
)

// Application wires configuration, the database gateway, services and the
// HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	gateway *store.Gateway

	userService    *service.UserService
	vehicleService *service.VehicleService
	tokenService   *service.TokenService

	server *http.Server
	router *httpapi.Router
}

// New validates cfg and connects to the database. Any failure here is
// fatal: the process cannot serve requests without its configuration and
// database.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "myvehicles-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.initServices(); err != nil {
		_ = app.gateway.Close()
		return nil, err
	}
	app.initHTTP()

	return app, nil
}

// Handler returns the root HTTP handler.
func (app *Application) Handler() http.Handler {
	return app.router
}

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("api starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.gateway.Close()
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

// Shutdown stops accepting requests, waits for in-flight ones up to the
// grace period and closes the database.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	if err := app.gateway.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("api stopped")
	return nil
}

// initDatabase builds the gateway and dials it once so a bad URI or an
// unreachable database aborts startup.
func (app *Application) initDatabase() error {
	dial, err := DialURI(app.cfg)
	if err != nil {
		return err
	}

	app.gateway = store.NewGateway(dial)
	app.gateway.OnDial = func(err error) {
		metrics.RecordDial(err)
		metrics.SetDependencyHealth("database", err == nil)
		if err != nil {
			app.logger.Error("database dial failed", "error", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.DatabaseTimeout)
	defer cancel()
	if _, err := app.gateway.Connect(ctx); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	app.logger.Info("database ready", "driver", driverOf(app.cfg.DatabaseURI))
	return nil
}

func (app *Application) initServices() error {
	hasher, err := cryptox.NewHasher(app.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to create password hasher: %w", err)
	}

	signer, err := jwtx.NewSignerHS256([]byte(app.cfg.SecretKey))
	if err != nil {
		return fmt.Errorf("failed to create token signer: %w", err)
	}

	ttl, err := app.cfg.TokenTTL()
	if err != nil {
		return fmt.Errorf("invalid token lifetime: %w", err)
	}

	app.userService = &service.UserService{Gateway: app.gateway, Hasher: hasher}
	app.vehicleService = &service.VehicleService{Gateway: app.gateway}
	app.tokenService = &service.TokenService{
		Gateway: app.gateway,
		Hasher:  hasher,
		Signer:  signer,
		Issuer:  app.cfg.Issuer,
		TTL:     ttl,
	}
	return nil
}

func (app *Application) initHTTP() {
	verifier := jwtx.NewVerifierHS256([]byte(app.cfg.SecretKey), app.cfg.Issuer, 5*time.Second)

	router := httpapi.NewRouter(verifier, BuildVersion, app.gateway, app.logger, httpapi.Options{
		AllowedOrigins: app.cfg.AllowedOrigins,
		MaxBodyBytes:   app.cfg.MaxBodyBytes,
	})
	router.UserService = app.userService
	router.VehicleService = app.vehicleService
	router.TokenService = app.tokenService
	router.StaticDir = app.cfg.StaticDir
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
