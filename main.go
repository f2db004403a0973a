package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"foodie-site-api/catalog"
	"foodie-site-api/config"
	"foodie-site-api/handlers"
	"foodie-site-api/logging"
	"foodie-site-api/metrics"
	"foodie-site-api/middleware"
	"foodie-site-api/routes"
	"foodie-site-api/storage"
	"foodie-site-api/storage/filestore"
	"foodie-site-api/storage/sqlstore"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logging:", err)
		os.Exit(1)
	}
	gin.SetMode(cfg.GinMode)

	if err := run(cfg, log); err != nil {
		log.WithError(err).Error("Server exited")
		os.Exit(1)
	}
}

// run serves until SIGINT/SIGTERM or a listener failure. Deferred cleanup
// always runs before it returns.
func run(cfg *config.Config, log *logrus.Logger) error {
	cat, err := catalog.Load()
	if err != nil {
		return fmt.Errorf("load menu catalog: %w", err)
	}

	store, err := openStore(cfg, cat, log)
	if err != nil {
		return fmt.Errorf("open %s storage: %w", cfg.StorageDriver, err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.WithError(err).Error("Failed to close storage")
		}
	}()

	if err := store.Seed(context.Background()); err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}
	log.WithField("driver", cfg.StorageDriver).Info("Storage ready")

	m := metrics.New()
	r, err := newRouter(cfg, handlers.New(store, m, log), m, log)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Server running on http://localhost:%s", cfg.Port)
		serveErr <- srv.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-quit:
	}

	log.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newRouter builds the engine with the middleware chain and every route.
// Only TRUSTED_PROXIES may set the client address seen by the rate limiter.
func newRouter(cfg *config.Config, h *handlers.Handler, m *metrics.Metrics, log logrus.FieldLogger) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("TRUSTED_PROXIES: %w", err)
	}
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.Logger(log),
		middleware.Metrics(m),
		middleware.CORS(cfg.CORSOrigins),
	)

	// Register all routes
	routes.SetupRoutes(r, h, m, middleware.NewRateLimiter(cfg.WriteRate, cfg.WriteBurst))
	return r, nil
}

// openStore builds the Store selected by STORAGE_DRIVER.
func openStore(cfg *config.Config, cat *catalog.Catalog, log logrus.FieldLogger) (storage.Store, error) {
	clock := storage.Clock(cfg.Now)
	switch cfg.StorageDriver {
	case config.DriverFile:
		return filestore.New(cfg.DataDir, cat, filestore.WithClock(clock), filestore.WithLogger(log))
	case config.DriverSQLite:
		return sqlstore.OpenSQLite(cfg.DBSource, cat, sqlstore.WithClock(clock), sqlstore.WithLogger(log))
	case config.DriverPostgres:
		return sqlstore.OpenPostgres(cfg.DBSource, cat, sqlstore.WithClock(clock), sqlstore.WithLogger(log))
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
