package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/rohits-web03/cellportal/internal/api"
	"github.com/rohits-web03/cellportal/internal/api/handlers"
	"github.com/rohits-web03/cellportal/internal/api/services"
	"github.com/rohits-web03/cellportal/internal/authcode"
	"github.com/rohits-web03/cellportal/internal/bulkdownload"
	"github.com/rohits-web03/cellportal/internal/config"
	"github.com/rohits-web03/cellportal/internal/repositories"
	"github.com/rohits-web03/cellportal/internal/telemetry"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func setupLogging(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(log)
	return log
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := setupLogging(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := repositories.ConnectDatabase(cfg.DB_URL)
	if err != nil {
		return err
	}

	rdb, err := repositories.ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		return err
	}
	defer rdb.Close()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := telemetry.NewMetrics(registry)
	reporter := telemetry.NewReporter(log, metrics)

	users := repositories.NewUserRepository(db)
	studies := repositories.NewStudyRepository(db)
	issuer := authcode.NewIssuer(repositories.NewAuthCodeStore(rdb), log, metrics)

	deps := bulkdownload.Deps{
		Catalog:   studies,
		Access:    studies,
		Quota:     users,
		AuthCodes: issuer,
		Signers:   repositories.NewS3SignerFactory(cfg.Storage),
		Reporter:  reporter,
		Logger:    log,
		Metrics:   metrics,
	}
	tokens, err := services.NewDataRepoTokenSource(ctx, cfg.Federated.CredentialsFile)
	if err != nil {
		log.Warn("Federated downloads disabled", "error", err)
	} else {
		deps.Federated = services.NewDataRepoClient(cfg.Federated.DataRepoURL, tokens)
		deps.Manifests = services.NewAzulClient(cfg.Federated.AzulURL, cfg.Federated.AzulCatalog)
	}

	service := bulkdownload.NewService(deps, bulkdownload.Options{
		DownloadQuota:  cfg.DownloadQuota,
		SignedURLTTL:   cfg.SignedURLTTL,
		AuthCodeTTL:    cfg.AuthCodeTTL,
		MaxConcurrency: cfg.MaxConcurrency,
		Retry: bulkdownload.RetryPolicy{
			MaxAttempts:    cfg.RetryMaxAttempts,
			InitialBackoff: cfg.RetryInitialBackoff,
			MaxBackoff:     cfg.RetryMaxBackoff,
			Multiplier:     2,
		},
		SignRetryable:         repositories.IsTransientStorageError,
		FederatedRetryable:    services.IsTransient,
		BaseURL:               cfg.BaseURL,
		InsecureManifestFetch: cfg.InsecureManifestFetch,
	})

	handler := handlers.NewHandler(service, issuer, repositories.NewDownloadRequestStore(rdb), users, cfg.AuthCodeTTL, log)
	mux := api.SetupRouter(api.RouterDeps{
		Handler:   handler,
		AuthCodes: issuer,
		JWTSecret: cfg.JWTSecret,
		Cors:      cfg.CorsConfig(),
		Gatherer:  registry,
		Logger:    log,
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: mux,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout: 5 * time.Second,
		// Signing a large study can take a while.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	go resetQuotas(ctx, users, cfg.QuotaResetInterval, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting Cell Portal download server", "port", cfg.Port, "env", cfg.Environment)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("could not listen on port %s: %w", cfg.Port, err)
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// resetQuotas zeroes every user's download quota once per interval.
func resetQuotas(ctx context.Context, users *repositories.UserRepository, interval time.Duration, log *slog.Logger) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := users.ResetDownloadQuotas(ctx)
			if err != nil {
				log.Error("Failed to reset download quotas", "error", err)
				continue
			}
			log.Info("Download quotas reset", "users", n)
		}
	}
}
