// Rentfold is a multi-tenant property management backend: owners,
// companies, properties, tenants, leases with documents, expenses, rent
// payments, and the reporting views on top of them.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/rentfold/rentfold/internal/adapter/blob"
	rfhttp "github.com/rentfold/rentfold/internal/adapter/http"
	rfotel "github.com/rentfold/rentfold/internal/adapter/otel"
	"github.com/rentfold/rentfold/internal/adapter/postgres"
	"github.com/rentfold/rentfold/internal/config"
	"github.com/rentfold/rentfold/internal/middleware"
	"github.com/rentfold/rentfold/internal/port/blobstore"
	"github.com/rentfold/rentfold/internal/service"
)

func main() {
	// Owner administration subcommands run outside the server path.
	if len(os.Args) > 1 && os.Args[1] == "admin" {
		if err := runAdmin(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			os.Exit(1)
		}
		return
	}

	migrateVersion := flag.Bool("migrate-version", false, "print the current migration version and exit")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	if err := run(*migrateVersion); err != nil {
		slog.Error("fatal", "error", err)
		os.Exit(1)
	}
}

func run(migrateVersion bool) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	ctx := context.Background()

	if migrateVersion {
		version, err := postgres.MigrationVersion(ctx, cfg.Postgres.DSN)
		if err != nil {
			return fmt.Errorf("migration version: %w", err)
		}
		fmt.Println(version)
		return nil
	}

	slog.Info("config loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Logging.Level,
		"pg_max_conns", cfg.Postgres.MaxConns,
	)

	// --- Infrastructure ---

	pool, err := postgres.NewPool(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}
	defer pool.Close()
	slog.Info("postgres connected")

	if err := postgres.RunMigrations(ctx, cfg.Postgres.DSN); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	slog.Info("migrations applied")

	blobs, err := newBlobStore(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("blob storage: %w", err)
	}

	shutdownTelemetry := rfotel.InitTracer(cfg.Logging.Service)
	defer func() { _ = shutdownTelemetry(ctx) }()

	metrics, err := rfotel.NewMetrics()
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}

	// --- Services ---

	store := postgres.NewStore(pool)
	accessSvc := service.NewAccessService(store)
	authSvc := service.NewAuthService(store, &cfg.Auth, metrics)

	handlers := &rfhttp.Handlers{
		Auth:       authSvc,
		Companies:  service.NewCompanyService(store, accessSvc),
		Properties: service.NewPropertyService(store, accessSvc),
		Tenants:    service.NewTenantService(store, accessSvc),
		Leases:     service.NewLeaseService(store, blobs, accessSvc, metrics),
		Expenses:   service.NewExpenseService(store, accessSvc),
		Payments:   service.NewPaymentService(store, accessSvc, metrics),
		UnpaidRent: service.NewUnpaidRentService(store, metrics),
		Dashboard:  service.NewDashboardService(store),
	}

	// --- HTTP ---

	r := chi.NewRouter()

	r.Use(rfhttp.CORS(cfg.Server.CORSOrigin))
	r.Use(rfhttp.SecurityHeaders)
	r.Use(rfhttp.Logger)
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(rfotel.HTTPMiddleware(cfg.Logging.Service))
	r.Use(middleware.Auth(authSvc))

	r.Get("/health", healthHandler(pool.Ping))

	rfhttp.MountRoutes(r, handlers)

	addr := ":" + cfg.Server.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
		}
	}()

	<-done
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// newBlobStore picks the document storage backend: S3 when a bucket is
// configured, local disk otherwise.
func newBlobStore(ctx context.Context, cfg config.Storage) (blobstore.Store, error) {
	if cfg.Bucket != "" {
		return blob.NewS3(ctx, cfg)
	}
	return blob.NewLocal(cfg.LocalDir)
}

// healthHandler reports liveness plus a database ping.
func healthHandler(ping func(context.Context) error) http.HandlerFunc {
	type healthStatus struct {
		Status   string `json:"status"`
		Postgres string `json:"postgres"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		status := healthStatus{Status: "ok", Postgres: "ok"}
		code := http.StatusOK

		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := ping(ctx); err != nil {
			status.Status = "degraded"
			status.Postgres = "unreachable"
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(status)
	}
}
