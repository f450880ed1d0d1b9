// Command seeder fills the dashboard tables with generated demo data for
// existing accounts. It is intended for local and staging environments.
//
// Flags:
//
//	--owners         comma-separated account e-mails (overrides SEEDER_OWNER_EMAILS)
//	--dry-run        generate data without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/authuser"
	"github.com/heartmarshall/clientforge-backend/internal/adapter/postgres/metrics"
	"github.com/heartmarshall/clientforge-backend/internal/app"
	"github.com/heartmarshall/clientforge-backend/internal/app/seeder"
	"github.com/heartmarshall/clientforge-backend/internal/config"
)

// Compile-time interface assertions.
var (
	_ seeder.OwnerLookup   = (*authuser.Repo)(nil)
	_ seeder.DatasetWriter = (*metrics.Repo)(nil)
)

func main() {
	ownersFlag := flag.String("owners", "", "comma-separated account e-mails")
	dryRunFlag := flag.Bool("dry-run", false, "generate data without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	if *ownersFlag != "" {
		// LoadConfig requires owners; the flag satisfies that.
		_ = os.Setenv("SEEDER_OWNER_EMAILS", *ownersFlag)
	}

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database, logger)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, authuser.New(pool), metrics.New(pool), postgres.NewTxManager(pool), *seederCfg)
	if err := pipeline.Run(ctx); err != nil {
		logger.Error("pipeline failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if pipeline.HasErrors() {
		logger.Warn("pipeline completed with errors")
		os.Exit(1)
	}

	logger.Info("pipeline completed successfully")
}
