// Command seeder populates the shared article library from a manifest of
// plain-text files. It is intended to be run offline, not as part of the
// main server.
//
// Flags:
//
//	--manifest       path to the library manifest YAML (overrides config)
//	--dry-run        parse and validate without writing to DB
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error or at least one entry failed.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/lingreader-backend/internal/adapter/postgres"
	articlerepo "github.com/heartmarshall/lingreader-backend/internal/adapter/postgres/article"
	userrepo "github.com/heartmarshall/lingreader-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/lingreader-backend/internal/app"
	"github.com/heartmarshall/lingreader-backend/internal/app/seeder"
	"github.com/heartmarshall/lingreader-backend/internal/config"
	"github.com/heartmarshall/lingreader-backend/internal/fetch"
	articlesvc "github.com/heartmarshall/lingreader-backend/internal/service/article"
	"github.com/heartmarshall/lingreader-backend/internal/textseg"
)

func main() {
	manifestFlag := flag.String("manifest", "", "path to library manifest YAML (overrides config)")
	dryRunFlag := flag.Bool("dry-run", false, "parse and validate without writing to DB")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Parse()

	// Load app config (for DB connection and page size).
	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	// Load seeder config.
	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// CLI flags override config.
	if *manifestFlag != "" {
		seederCfg.ManifestPath = *manifestFlag
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	manifest, err := seeder.ParseManifest(seederCfg.ManifestPath)
	if err != nil {
		logger.Error("load manifest", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Load segmentation models for every language the manifest uses.
	if err := textseg.Warm(manifest.Languages()...); err != nil {
		logger.Error("warm segmenters", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// Connect to DB.
	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	users := userrepo.New(pool)
	articles := articlerepo.New(pool)
	svc := articlesvc.NewService(logger, articles, textseg.Segmenter{}, fetch.New(logger, appCfg.Fetch), appCfg.Text)

	// Run pipeline.
	pipeline := seeder.NewPipeline(logger, users, articles, svc, *seederCfg)
	result, err := pipeline.Run(ctx, manifest)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if result.Failed > 0 {
		logger.Warn("seeding completed with failures", slog.Int("failed", result.Failed))
		os.Exit(1)
	}

	logger.Info("seeding completed successfully",
		slog.Int("seeded", result.Seeded),
		slog.Int("skipped", result.Skipped))
}
