package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/head2head/cliparse"
	"github.com/danielhkuo/head2head/db"
	"github.com/danielhkuo/head2head/metrics"
	"github.com/danielhkuo/head2head/middleware"
	"github.com/danielhkuo/head2head/roster"
	"github.com/danielhkuo/head2head/router"
	"github.com/danielhkuo/head2head/voting"
)

// sweepInterval is how often idle sessions and rate limiter entries are dropped
const sweepInterval = time.Minute

func main() {
	// A missing .env is normal outside development
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Warn("could not load .env", "error", err)
	}

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Load roster
	entries := roster.Default()
	if cfg.RosterFile != "" {
		entries, err = roster.Load(cfg.RosterFile)
		if err != nil {
			slog.Error("roster load failed", "error", err, "path", cfg.RosterFile)
			os.Exit(1)
		}
	}
	slog.Info("Roster ready", "title", entries.Title, "entries", len(entries.Entries))

	// Connect to the results archive
	dbConn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err, "type", cfg.DatabaseType)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	// Metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	registry := voting.NewRegistry(entries.Entries)
	limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.TrustProxy)

	// Create router
	mux := router.NewRouter(router.Deps{
		DB:       dbConn,
		Config:   cfg,
		Roster:   entries,
		Registry: registry,
		Metrics:  m,
		Gatherer: reg,
		Limiter:  limiter,
	})

	// Create server
	server := http.Server{
		Handler:           middleware.CORS(mux),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	// Start server
	g.Go(func() error {
		slog.Info("Listening", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	// Drop idle sessions
	g.Go(func() error {
		ticker := time.NewTicker(sweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return nil
			case now := <-ticker.C:
				if n := registry.Sweep(now, cfg.SessionTTL); n > 0 {
					m.SessionsExpired(n)
					slog.Info("expired idle sessions", "count", n)
				}
				m.SetActiveSessions(registry.Len())
				limiter.Prune(sweepInterval)
			}
		}
	})

	// Wait for Ctrl-C signal
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		slog.Error("Server closed", "error", err)
		os.Exit(1)
	}
	slog.Info("Server closed")
}
