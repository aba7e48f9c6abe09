package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/famoussince/storefront/api/routes"
	"github.com/famoussince/storefront/internal/cart"
	"github.com/famoussince/storefront/internal/catalog"
	"github.com/famoussince/storefront/internal/hero"
	"github.com/famoussince/storefront/internal/storefront"
	"github.com/famoussince/storefront/internal/subscribers"
	"github.com/famoussince/storefront/pkg/config"
	"github.com/famoussince/storefront/pkg/kvstore"
	"github.com/famoussince/storefront/pkg/logger"
	"github.com/famoussince/storefront/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := kvstore.Open(ctx, cfg, logg)
	if err != nil {
		logg.Error(ctx, "failed to open store", err)
		os.Exit(1)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	svc, err := storefront.NewService(storefront.ServiceParams{
		Carts:       cart.NewRepository(store, logg),
		Subscribers: subscribers.NewRepository(store, logg),
		Logger:      logg,
		Metrics:     metrics.NewStorefront(reg),
		Rotator:     hero.NewRotator(hero.DefaultWords, hero.DefaultInterval),
	})
	if err != nil {
		logg.Error(ctx, "failed to create storefront service", err)
		os.Exit(1)
	}

	// A failed load leaves an empty catalog and a notice; the server still starts.
	loadCtx, cancel := context.WithTimeout(ctx, cfg.Catalog.FetchTimeout)
	_ = svc.LoadCatalog(loadCtx, catalog.SourceFor(cfg.Catalog.Source, cfg.Catalog.FetchTimeout))
	cancel()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx = logg.WithFields(ctx, map[string]any{
		"env":   cfg.App.Env,
		"addr":  addr,
		"store": cfg.Store.NormalizedDriver(),
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, store, reg, svc),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		logg.Info(ctx, "shutting down api server")
	case runErr = <-serveErr:
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	runErr = multierr.Combine(runErr, server.Shutdown(shutdownCtx), store.Close())
	if runErr != nil {
		logg.Error(ctx, "api server stopped unexpectedly", runErr)
		os.Exit(1)
	}
}
