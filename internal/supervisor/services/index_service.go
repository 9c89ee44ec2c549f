// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ashanr/student-decision-support/internal/metrics"
	"github.com/ashanr/student-decision-support/internal/recommend"
)

// IndexBuilder is the slice of the recommendation engine the refresh
// service needs.
type IndexBuilder interface {
	BuildIndex(ctx context.Context) error
	Status() recommend.EngineStatus
}

// IndexRefreshConfig holds configuration for the index refresh service.
type IndexRefreshConfig struct {
	// BuildOnStartup triggers an index build when the service starts.
	BuildOnStartup bool

	// Interval is how often to rebuild the index from the historical
	// dataset. Values below one minute fall back to the default.
	Interval time.Duration

	// BuildTimeout bounds a single rebuild.
	BuildTimeout time.Duration
}

// IndexRefreshService periodically rebuilds the similar-student index so
// newly ingested historical outcomes become visible without a restart.
// Failed rebuilds keep the previous index serving and are retried on the
// next tick.
type IndexRefreshService struct {
	engine IndexBuilder
	config IndexRefreshConfig
	logger zerolog.Logger
	name   string
}

// NewIndexRefreshService creates an index refresh service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewIndexRefreshService(engine IndexBuilder, cfg IndexRefreshConfig, logger zerolog.Logger) *IndexRefreshService {
	if cfg.Interval < time.Minute {
		cfg.Interval = 6 * time.Hour
	}
	if cfg.BuildTimeout <= 0 {
		cfg.BuildTimeout = 5 * time.Minute
	}
	return &IndexRefreshService{
		engine: engine,
		config: cfg,
		logger: logger.With().Str("service", "index-refresh").Logger(),
		name:   "index-refresh",
	}
}

// Serve implements the suture.Service interface.
func (s *IndexRefreshService) Serve(ctx context.Context) error {
	s.logger.Info().
		Bool("build_on_startup", s.config.BuildOnStartup).
		Dur("interval", s.config.Interval).
		Msg("index refresh service starting")

	if s.config.BuildOnStartup {
		if err := s.rebuild(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("initial index build failed (will retry on schedule)")
		}
	}

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("index refresh service shutting down")
			return ctx.Err()

		case <-ticker.C:
			if err := s.rebuild(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("scheduled index rebuild failed")
			}
		}
	}
}

// rebuild performs one index build with a bounded timeout and records the
// outcome in the rebuild metrics.
func (s *IndexRefreshService) rebuild(ctx context.Context) error {
	buildCtx, cancel := context.WithTimeout(ctx, s.config.BuildTimeout)
	defer cancel()

	start := time.Now()
	err := s.engine.BuildIndex(buildCtx)
	metrics.ObserveIndexRebuild(err, s.engine.Status().IndexSize)

	if err != nil {
		return err
	}

	s.logger.Info().
		Int("students", s.engine.Status().IndexSize).
		Dur("duration", time.Since(start)).
		Msg("similar-student index rebuilt")
	return nil
}

// String implements fmt.Stringer; suture uses it in supervision events.
func (s *IndexRefreshService) String() string {
	return s.name
}
