// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import (
	"strings"

	"github.com/rs/zerolog"
)

// OutcomeAggregator turns a neighborhood of historical outcomes into
// per-candidate popularity boosts. Each neighbor's vote is weighted by
// their reported satisfaction, so a destination that made its students
// happy counts for more than one that merely attracted them.
type OutcomeAggregator struct {
	config *Config
	logger zerolog.Logger
}

// NeighborhoodStats summarizes the aggregated neighborhood once per
// request, so every candidate boost is a cheap lookup.
type NeighborhoodStats struct {
	// Weighted mass per lowercase destination country.
	CountryMass map[string]float64
	// Weighted mass per university tier (1..5).
	TierMass map[int]float64
	// Weighted mass per lowercase field of study.
	FieldMass map[string]float64
	// Total satisfaction-weighted mass across all neighbors.
	TotalMass float64
	// Plain neighbor count, for explanations.
	Neighbors int
	// Mean satisfaction across the neighborhood, 1..10 scale.
	MeanSatisfaction float64
}

// NewOutcomeAggregator creates an aggregator bound to a validated
// configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewOutcomeAggregator(cfg *Config, logger zerolog.Logger) *OutcomeAggregator {
	return &OutcomeAggregator{
		config: cfg,
		logger: logger.With().Str("component", "aggregator").Logger(),
	}
}

// Aggregate folds the neighborhood into weighted outcome masses. A nil or
// empty neighborhood yields zero stats, which in turn yield zero boosts.
func (a *OutcomeAggregator) Aggregate(neighbors []Neighbor) *NeighborhoodStats {
	stats := &NeighborhoodStats{
		CountryMass: make(map[string]float64),
		TierMass:    make(map[int]float64),
		FieldMass:   make(map[string]float64),
		Neighbors:   len(neighbors),
	}

	var satSum float64
	for i := range neighbors {
		s := &neighbors[i].Student
		w := satisfactionWeight(s.SatisfactionScore)
		satSum += float64(s.SatisfactionScore)

		if country := strings.ToLower(strings.TrimSpace(s.DestinationCountry)); country != "" {
			stats.CountryMass[country] += w
		}
		if s.UniversityTier >= 1 && s.UniversityTier <= 5 {
			stats.TierMass[s.UniversityTier] += w
		}
		if field := strings.ToLower(strings.TrimSpace(s.FieldOfStudy)); field != "" {
			stats.FieldMass[field] += w
		}
		stats.TotalMass += w
	}

	if len(neighbors) > 0 {
		stats.MeanSatisfaction = satSum / float64(len(neighbors))
	}
	return stats
}

// Boost computes the popularity boost in [0, 1] for one candidate: the
// satisfaction-weighted share of neighbors who chose the candidate's
// country, university tier, and field, combined under the configured
// dimension weights.
func (a *OutcomeAggregator) Boost(stats *NeighborhoodStats, c *ProgramCandidate) float64 {
	if stats == nil || stats.TotalMass <= 0 {
		return 0
	}

	weights := a.config.BoostWeights.Normalize()
	country := strings.ToLower(strings.TrimSpace(c.Country))
	field := strings.ToLower(strings.TrimSpace(c.Field))
	tier := TierForRanking(c.RankingGlobal)

	boost := weights.Country * (stats.CountryMass[country] / stats.TotalMass)
	if tier >= 1 {
		boost += weights.Tier * (stats.TierMass[tier] / stats.TotalMass)
	}
	boost += weights.Field * (stats.FieldMass[field] / stats.TotalMass)

	if boost < 0 {
		return 0
	}
	if boost > 1 {
		return 1
	}
	return boost
}

// satisfactionWeight maps a 1..10 satisfaction score onto a [0, 1] vote
// weight. Missing or out-of-range scores count as a neutral half vote.
func satisfactionWeight(score int) float64 {
	if score <= 0 || score > 10 {
		return 0.5
	}
	return float64(score) / 10
}
