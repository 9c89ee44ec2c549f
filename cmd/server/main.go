// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

// Package main is the entry point for the student decision support server.
//
// The server recommends university programs to prospective international
// students by combining preference-based scoring with outcomes of similar
// historical students.
//
// # Application Architecture
//
// The server initializes components in the following order:
//
//  1. Configuration: layered settings from defaults, YAML file and
//     environment variables (Koanf v2)
//  2. Database: SQLite catalog, historical dataset and request events
//  3. Engine: scoring pipeline plus the similar-student index
//  4. Supervisor tree: index refresh loop and HTTP server under suture
//
// # Configuration
//
// Configuration sources, highest priority wins:
//   - Environment variables with the SDS_ prefix (e.g. SDS_SERVER_PORT)
//   - Config file (config.yaml, path via CONFIG_PATH)
//   - Built-in defaults
//
// # Signal Handling
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, drains in-flight requests within the configured
// shutdown timeout and closes the database.
//
// # Example Usage
//
//	export SDS_DATABASE_PATH=/data/student-decision-support.db
//	export SDS_DATABASE_SEED_DEMO_DATA=true
//	./student-decision-support
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/ashanr/student-decision-support/internal/api"
	"github.com/ashanr/student-decision-support/internal/config"
	"github.com/ashanr/student-decision-support/internal/logging"
	"github.com/ashanr/student-decision-support/internal/recommend"
	"github.com/ashanr/student-decision-support/internal/store"
	"github.com/ashanr/student-decision-support/internal/supervisor"
	"github.com/ashanr/student-decision-support/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logger := logging.Logger()

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("db_path", cfg.Database.Path).
		Bool("refresh_enabled", cfg.Refresh.Enabled).
		Msg("Starting student decision support server")

	db, err := store.Open(cfg.Database.Path, cfg.Database.BusyTimeout, logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()

	if cfg.Database.SeedDemoData {
		if err := db.SeedDemoData(context.Background()); err != nil {
			logging.Fatal().Err(err).Msg("Failed to seed demo data")
		}
		logging.Info().Msg("Demo data seeded")
	}

	engine, err := recommend.NewEngine(cfg.Recommend.ToEngineConfig(), logger)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}
	engine.SetProviders(db, db)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	tree := supervisor.NewSupervisorTree(logger, supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})

	// The refresh service owns the initial index build, so a cold start
	// with an empty dataset degrades to base-score recommendations
	// instead of refusing to boot.
	if cfg.Refresh.Enabled {
		tree.AddEngineService(services.NewIndexRefreshService(engine, services.IndexRefreshConfig{
			BuildOnStartup: true,
			Interval:       cfg.Refresh.Interval,
		}, logger))
	} else if err := engine.BuildIndex(ctx); err != nil {
		logging.Warn().Err(err).Msg("Initial index build failed; serving base-score recommendations only")
	}

	router := api.NewRouter(&cfg.Server, engine, db, logger)
	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	logging.Info().Str("addr", cfg.Server.Addr()).Msg("Supervisor tree starting")

	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Fatal().Err(err).Msg("Supervisor tree terminated")
	}

	logging.Info().Msg("Shutdown complete")
}
