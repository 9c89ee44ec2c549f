// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages to
// maintain clean separation. The CatalogProvider and DatasetProvider
// interfaces allow integration with the store package without creating
// circular imports.

// CatalogProvider supplies candidate programs for scoring. Typically
// implemented by the store layer.
type CatalogProvider interface {
	// FetchCandidates returns up to limit candidate programs matching the
	// given degree level. An empty level returns all levels.
	FetchCandidates(ctx context.Context, level DegreeLevel, limit int) ([]ProgramCandidate, error)
}

// DatasetProvider supplies the historical student dataset used to build
// the similarity index.
type DatasetProvider interface {
	// FetchAllHistoricalStudents returns the complete historical dataset.
	FetchAllHistoricalStudents(ctx context.Context) ([]HistoricalStudent, error)
}

// Engine coordinates scoring, similarity lookup, outcome aggregation, and
// enhancement into final recommendations. It is safe for concurrent use.
type Engine struct {
	config   *Config
	configMu sync.RWMutex
	logger   zerolog.Logger

	scorer     *ProgramScorer
	index      *SimilarStudentIndex
	aggregator *OutcomeAggregator
	enhancer   *RecommendationEnhancer

	catalog CatalogProvider
	dataset DatasetProvider

	indexVersion  atomic.Int32
	requestCount  atomic.Int64
	fallbackCount atomic.Int64
}

// NewEngine creates a recommendation engine. The index starts empty;
// call BuildIndex before expecting popularity boosts.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	componentLogger := logger.With().Str("component", "recommend").Logger()
	e := &Engine{
		config: cfg,
		logger: componentLogger,
		index:  NewSimilarStudentIndex(componentLogger),
	}
	e.rebuildComponents(cfg)
	return e, nil
}

// rebuildComponents replaces the stateless scoring pipeline for a new
// config. Callers must hold configMu (or be the constructor).
func (e *Engine) rebuildComponents(cfg *Config) {
	e.scorer = NewProgramScorer(cfg, e.logger)
	e.aggregator = NewOutcomeAggregator(cfg, e.logger)
	e.enhancer = NewRecommendationEnhancer(cfg, e.logger)
}

// SetProviders wires the catalog and dataset sources. Either may be nil;
// the corresponding engine operations then require caller-supplied data.
func (e *Engine) SetProviders(catalog CatalogProvider, dataset DatasetProvider) {
	e.catalog = catalog
	e.dataset = dataset
}

// Recommend fetches candidates from the catalog and returns the top k
// enhanced recommendations for the profile. If the similarity index is
// not yet built, recommendations degrade to base-score ordering instead
// of failing.
func (e *Engine) Recommend(ctx context.Context, profile *PreferenceProfile, k int) ([]ScoredCandidate, error) {
	if e.catalog == nil {
		return nil, errors.New("recommend: no catalog provider configured")
	}
	if err := e.validateProfile(profile); err != nil {
		return nil, err
	}

	limits := e.currentConfig().Limits
	candidates, err := e.catalog.FetchCandidates(ctx, profile.DegreeLevel, limits.MaxCandidates)
	if err != nil {
		return nil, fmt.Errorf("fetch candidates: %w", err)
	}

	return e.RecommendFrom(ctx, profile, candidates, k)
}

// RecommendFrom scores and enhances a caller-supplied candidate set. An
// empty candidate set yields an empty result, not an error.
func (e *Engine) RecommendFrom(ctx context.Context, profile *PreferenceProfile, candidates []ProgramCandidate, k int) ([]ScoredCandidate, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := e.validateProfile(profile); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	k = e.clampK(k)
	scorer, aggregator, enhancer := e.pipeline()

	scored := scorer.Score(profile, candidates)
	if len(scored) == 0 {
		return []ScoredCandidate{}, nil
	}

	cfg := e.currentConfig()
	var stats *NeighborhoodStats
	neighbors, err := e.index.Nearest(profile, cfg.Boost.Neighbors)
	switch {
	case errors.Is(err, ErrIndexUnavailable):
		e.fallbackCount.Add(1)
		e.logger.Warn().Msg("Similarity index unavailable, serving base scores only")
	case err != nil:
		e.fallbackCount.Add(1)
		e.logger.Warn().Err(err).Msg("Similarity lookup failed, serving base scores only")
	default:
		stats = aggregator.Aggregate(neighbors)
	}

	enhanced := enhancer.Enhance(profile, scored, stats, aggregator)
	if k < len(enhanced) {
		enhanced = enhanced[:k]
	}

	e.logger.Debug().
		Int("candidates", len(candidates)).
		Int("returned", len(enhanced)).
		Bool("boosted", stats != nil).
		Dur("duration", time.Since(start)).
		Msg("Recommendation request served")

	return enhanced, nil
}

// SimilarStudents returns up to k historical students nearest to the
// profile, reduced to their externally safe summaries. Unlike Recommend,
// this operation fails with ErrIndexUnavailable when the index has never
// been built, since there is nothing to degrade to. An index built from
// an empty dataset answers with an empty sequence.
func (e *Engine) SimilarStudents(ctx context.Context, profile *PreferenceProfile, k int) ([]StudentMatch, error) {
	e.requestCount.Add(1)

	if err := e.validateProfile(profile); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	neighbors, err := e.index.Nearest(profile, e.clampK(k))
	if err != nil {
		return nil, err
	}

	matches := make([]StudentMatch, 0, len(neighbors))
	for i := range neighbors {
		matches = append(matches, StudentMatch{
			Student:  neighbors[i].Student.Summarize(),
			Distance: neighbors[i].Distance,
		})
	}
	return matches, nil
}

// BuildIndex loads the historical dataset from the dataset provider and
// rebuilds the similarity index. Queries in flight continue against the
// previous snapshot until the swap completes.
func (e *Engine) BuildIndex(ctx context.Context) error {
	if e.dataset == nil {
		return errors.New("recommend: no dataset provider configured")
	}

	students, err := e.dataset.FetchAllHistoricalStudents(ctx)
	if err != nil {
		return fmt.Errorf("fetch historical students: %w", err)
	}
	return e.BuildIndexFrom(students)
}

// BuildIndexFrom rebuilds the similarity index from a caller-supplied
// dataset.
func (e *Engine) BuildIndexFrom(students []HistoricalStudent) error {
	if err := e.index.Build(students); err != nil {
		return err
	}
	e.indexVersion.Add(1)
	return nil
}

// Status returns a snapshot of index and request state.
func (e *Engine) Status() EngineStatus {
	return EngineStatus{
		IndexBuilt:    e.index.Ready(),
		IndexSize:     e.index.Size(),
		IndexBuiltAt:  e.index.BuiltAt(),
		IndexVersion:  int(e.indexVersion.Load()),
		RequestCount:  e.requestCount.Load(),
		FallbackCount: e.fallbackCount.Load(),
	}
}

// Ready reports whether the similarity index is available for queries.
func (e *Engine) Ready() bool {
	return e.index.Ready()
}

// UpdateConfig validates and swaps in a new configuration. The scorer,
// aggregator, and enhancer pick up the new config on the next request.
func (e *Engine) UpdateConfig(cfg *Config) error {
	if cfg == nil {
		return errors.New("recommend: nil config")
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	e.configMu.Lock()
	e.config = cfg
	e.rebuildComponents(cfg)
	e.configMu.Unlock()
	return nil
}

func (e *Engine) currentConfig() *Config {
	e.configMu.RLock()
	defer e.configMu.RUnlock()
	return e.config
}

// pipeline snapshots the scoring components so a request keeps a
// consistent view across a concurrent config swap.
func (e *Engine) pipeline() (*ProgramScorer, *OutcomeAggregator, *RecommendationEnhancer) {
	e.configMu.RLock()
	defer e.configMu.RUnlock()
	return e.scorer, e.aggregator, e.enhancer
}

func (e *Engine) validateProfile(profile *PreferenceProfile) error {
	if profile == nil {
		return &ValidationError{Field: "profile", Reason: "must not be nil"}
	}
	if profile.FieldOfStudy == "" {
		return &ValidationError{Field: "field_of_study", Reason: "must not be empty"}
	}
	if _, ok := ParseDegreeLevel(string(profile.DegreeLevel)); !ok {
		return &ValidationError{Field: "degree_level", Reason: fmt.Sprintf("unknown degree level %q", profile.DegreeLevel)}
	}
	if _, ok := ParseLanguagePreference(string(profile.LanguagePreference)); !ok {
		return &ValidationError{Field: "language_preference", Reason: fmt.Sprintf("unknown language preference %q", profile.LanguagePreference)}
	}
	if profile.MaxTuition < 0 {
		return &ValidationError{Field: "max_tuition", Reason: "must not be negative"}
	}
	if profile.MaxLivingExpenses < 0 {
		return &ValidationError{Field: "max_living_expenses", Reason: "must not be negative"}
	}
	if profile.RankingImportance < 0 || profile.RankingImportance > 1 {
		return &ValidationError{Field: "ranking_importance", Reason: "must be in [0, 1]"}
	}
	if profile.CostSensitivity < 0 || profile.CostSensitivity > 1 {
		return &ValidationError{Field: "cost_sensitivity", Reason: "must be in [0, 1]"}
	}
	return nil
}

func (e *Engine) clampK(k int) int {
	limits := e.currentConfig().Limits
	if k <= 0 {
		return limits.DefaultK
	}
	if k > limits.MaxK {
		return limits.MaxK
	}
	return k
}
