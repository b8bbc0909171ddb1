package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/chamchi6619/pantry-app-v1-sub000/internal/db"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/logging"
	"github.com/chamchi6619/pantry-app-v1-sub000/internal/service"
)

func main() {
	limit := flag.Int("limit", 0, "max rows to process, 0 for all pending")
	batch := flag.Int("batch", 200, "rows fetched per page")
	workers := flag.Int("workers", 4, "concurrent matchers per page")
	dryRun := flag.Bool("dry-run", false, "resolve and count without writing")
	flag.Parse()

	// Load .env if present; deployments set the environment directly.
	_ = godotenv.Load()

	logging.Setup()

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		slog.Error("DB_URL is required")
		os.Exit(1)
	}

	threshold := 0.8
	if t := os.Getenv("RESOLVE_THRESHOLD"); t != "" {
		v, err := strconv.ParseFloat(t, 64)
		if err != nil {
			slog.Error("invalid RESOLVE_THRESHOLD", "error", err)
			os.Exit(1)
		}
		threshold = v
	}

	sqlDB, err := sql.Open("postgres", dbURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	queries := db.New(sqlDB)
	svc := service.New(queries, sqlDB, service.Config{ResolveThreshold: threshold})

	summary, err := svc.Backfill(ctx, service.BackfillOptions{
		Limit:   *limit,
		Batch:   *batch,
		Workers: *workers,
		DryRun:  *dryRun,
	})
	if err != nil {
		slog.Error("backfill failed", "error", err)
		os.Exit(1)
	}

	pending, err := queries.CountIngredientsByStatus(ctx, service.StatusPending)
	if err != nil {
		slog.Error("failed to count pending rows", "error", err)
		os.Exit(1)
	}

	slog.Info("backfill complete",
		"processed", summary.Processed,
		"matched", summary.Matched,
		"suggested", summary.Suggested,
		"unmatched", summary.Unmatched,
		"junk", summary.Junk,
		"pending_remaining", pending,
		"dry_run", *dryRun,
	)
}
