package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	httpadapter "aigov/internal/adapters/http"
	"aigov/internal/adapters/memory"
	pg "aigov/internal/adapters/postgres"
	"aigov/internal/adapters/rediscache"
	"aigov/internal/catalog"
	"aigov/internal/config"
	"aigov/internal/ports"
	compliancesvc "aigov/internal/services/compliance"
	contestsvc "aigov/internal/services/contestations"
	datasetsvc "aigov/internal/services/datasets"
	incidentsvc "aigov/internal/services/incidents"
	monitoringsvc "aigov/internal/services/monitoring"
	policysvc "aigov/internal/services/policies"
	registrysvc "aigov/internal/services/registry"
	vendorsvc "aigov/internal/services/vendors"
	"aigov/internal/workers/seedrunner"
)

// repositories is the full persistence surface of the portal; both the
// Postgres adapter and the in-memory store satisfy it.
type repositories interface {
	ports.SystemRepository
	ports.AssessmentRepository
	ports.IncidentRepository
	ports.VendorRepository
	ports.DatasetRepository
	ports.PolicyRepository
	ports.ContestationRepository
	ports.MetricRepository
	ports.TransparencyRepository
	ports.SeedJobRepository
}

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		slog.Warn("config", "warning", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var repo repositories
	switch {
	case cfg.DatabaseURL != "":
		if err := pg.Migrate(ctx, cfg.DatabaseURL); err != nil {
			slog.Error("migrations failed", "error", err)
			os.Exit(1)
		}
		db, err := pg.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			slog.Error("db connect failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		repo = db
	case cfg.Production():
		slog.Error("DATABASE_URL is required in production")
		os.Exit(1)
	default:
		slog.Warn("no DATABASE_URL, using in-memory store")
		repo = memory.New()
	}

	cat := catalog.Builtin()
	if cfg.CatalogFile != "" {
		cat, err = catalog.Load(cfg.CatalogFile)
		if err != nil {
			slog.Error("catalog load failed", "file", cfg.CatalogFile, "error", err)
			os.Exit(1)
		}
	}
	slog.Info("requirement catalog loaded", "requirements", cat.Len())

	var cache monitoringsvc.Cache
	if cfg.RedisURL != "" {
		rc, err := rediscache.New(ctx, cfg.RedisURL, 5*time.Minute)
		if err != nil {
			slog.Error("redis connect failed", "error", err)
			os.Exit(1)
		}
		defer rc.Close()
		cache = rc
	}

	seeder := seedrunner.CatalogSeeder{
		Assessments: repo,
		Jobs:        repo,
		Catalog:     cat,
	}
	if cfg.SeedWorkers > 0 {
		go seedrunner.Run(ctx, repo, seeder, cfg.SeedWorkers, 500*time.Millisecond)
		slog.Info("seed workers started", "count", cfg.SeedWorkers)
	}

	srv := httpadapter.New(httpadapter.Services{
		Registry:      registrysvc.New(repo, repo),
		Compliance:    compliancesvc.New(repo, repo, cat),
		Monitoring:    monitoringsvc.New(repo, repo, cache),
		Policies:      policysvc.New(repo),
		Contestations: contestsvc.New(repo),
		Vendors:       vendorsvc.New(repo),
		Datasets:      datasetsvc.New(repo),
		Incidents:     incidentsvc.New(repo),
	}, repo, seeder, []byte(cfg.JWTSecret), cfg.Production())

	r := chi.NewRouter()
	r.Mount("/", srv.Routes())

	httpSrv := &http.Server{Addr: cfg.ListenAddr, Handler: r}
	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()
	slog.Info("listening", "addr", cfg.ListenAddr, "env", cfg.Env)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		slog.Info("shutting down", "signal", sig.String())
		cancel()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown", "error", err)
		}
	case err := <-errCh:
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
