// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

// Package config provides layered application configuration: struct
// defaults, then an optional YAML file, then environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/ashanr/student-decision-support/internal/recommend"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Refresh   RefreshConfig   `koanf:"refresh"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`

	// CORSOrigins lists allowed origins. Empty means same-origin only.
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimit is the per-IP request budget per RateLimitWindow.
	// Zero disables rate limiting.
	RateLimit       int           `koanf:"rate_limit"`
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`
}

// Addr returns the host:port listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig configures the SQLite store.
type DatabaseConfig struct {
	// Path is the SQLite database file path.
	Path string `koanf:"path"`

	// BusyTimeout is how long a connection waits on a locked database.
	BusyTimeout time.Duration `koanf:"busy_timeout"`

	// SeedDemoData loads the bundled demo catalog and historical dataset
	// into an empty database on startup.
	SeedDemoData bool `koanf:"seed_demo_data"`
}

// LoggingConfig configures the global logger.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
	Caller bool   `koanf:"caller"`
}

// RecommendConfig configures the recommendation engine. Zero values fall
// back to the engine's documented defaults.
type RecommendConfig struct {
	WeightAcademic    float64 `koanf:"weight_academic"`
	WeightTuition     float64 `koanf:"weight_tuition"`
	WeightLiving      float64 `koanf:"weight_living"`
	WeightRanking     float64 `koanf:"weight_ranking"`
	WeightGeoLanguage float64 `koanf:"weight_geo_language"`

	BoostWeight    float64 `koanf:"boost_weight"`
	BoostNeighbors int     `koanf:"boost_neighbors"`

	DiversityEnabled bool `koanf:"diversity_enabled"`

	DefaultK      int `koanf:"default_k"`
	MaxK          int `koanf:"max_k"`
	MaxCandidates int `koanf:"max_candidates"`
}

// RefreshConfig configures the periodic similarity index rebuild.
type RefreshConfig struct {
	// Enabled controls whether the background rebuild service runs.
	Enabled bool `koanf:"enabled"`

	// Interval is the time between rebuilds.
	Interval time.Duration `koanf:"interval"`
}

// ToEngineConfig maps the recommend section onto the engine's config,
// starting from engine defaults so unset values keep their documented
// behavior.
func (r RecommendConfig) ToEngineConfig() *recommend.Config {
	cfg := recommend.DefaultConfig()

	if r.WeightAcademic > 0 || r.WeightTuition > 0 || r.WeightLiving > 0 ||
		r.WeightRanking > 0 || r.WeightGeoLanguage > 0 {
		cfg.Weights = recommend.ScoringWeights{
			Academic:    r.WeightAcademic,
			Tuition:     r.WeightTuition,
			Living:      r.WeightLiving,
			Ranking:     r.WeightRanking,
			GeoLanguage: r.WeightGeoLanguage,
		}
	}
	if r.BoostWeight > 0 {
		cfg.Boost.Weight = r.BoostWeight
	}
	if r.BoostNeighbors > 0 {
		cfg.Boost.Neighbors = r.BoostNeighbors
	}
	cfg.Diversity.Enabled = r.DiversityEnabled
	if r.DefaultK > 0 {
		cfg.Limits.DefaultK = r.DefaultK
	}
	if r.MaxK > 0 {
		cfg.Limits.MaxK = r.MaxK
	}
	if r.MaxCandidates > 0 {
		cfg.Limits.MaxCandidates = r.MaxCandidates
	}

	return cfg
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("server timeouts must be positive, got read=%v write=%v",
			c.Server.ReadTimeout, c.Server.WriteTimeout)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must be non-negative, got %d", c.Server.RateLimit)
	}
	if c.Server.RateLimit > 0 && c.Server.RateLimitWindow <= 0 {
		return fmt.Errorf("server.rate_limit_window must be positive when rate limiting is on, got %v",
			c.Server.RateLimitWindow)
	}
	if c.Database.Path == "" {
		return fmt.Errorf("database.path must not be empty")
	}
	if c.Refresh.Enabled && c.Refresh.Interval < time.Minute {
		return fmt.Errorf("refresh.interval must be at least 1m, got %v", c.Refresh.Interval)
	}

	// The engine re-validates its own section, but failing here surfaces
	// mistakes before any component starts.
	if err := c.Recommend.ToEngineConfig().Validate(); err != nil {
		return fmt.Errorf("recommend: %w", err)
	}

	return nil
}
