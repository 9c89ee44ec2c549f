// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// RecommendationEnhancer blends base scores with neighborhood boosts,
// applies the diversity adjustment, assigns final ranks, and writes the
// human-readable explanation for each recommendation.
//
// The blend is multiplicative on the base:
//
//	final = base*(1-w) + base*boost*w
//
// so a zero base score stays zero no matter how popular the destination
// was with similar students.
type RecommendationEnhancer struct {
	config *Config
	logger zerolog.Logger
}

// NewRecommendationEnhancer creates an enhancer bound to a validated
// configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewRecommendationEnhancer(cfg *Config, logger zerolog.Logger) *RecommendationEnhancer {
	return &RecommendationEnhancer{
		config: cfg,
		logger: logger.With().Str("component", "enhancer").Logger(),
	}
}

// Enhance applies boosts and diversity to scored candidates and returns
// them re-sorted by final score with ranks and explanations filled in.
// A nil stats (index unavailable) degrades to pure base-score ordering.
func (e *RecommendationEnhancer) Enhance(profile *PreferenceProfile, scored []ScoredCandidate, stats *NeighborhoodStats, agg *OutcomeAggregator) []ScoredCandidate {
	w := e.config.Boost.Weight

	out := make([]ScoredCandidate, len(scored))
	copy(out, scored)

	for i := range out {
		var boost float64
		if stats != nil && agg != nil {
			boost = agg.Boost(stats, &out[i].Candidate)
		}
		out[i].Boost = boost
		out[i].FinalScore = clampScore(out[i].BaseScore*(1-w) + out[i].BaseScore*boost*w)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FinalScore != out[j].FinalScore {
			return out[i].FinalScore > out[j].FinalScore
		}
		return lessCandidate(&out[i].Candidate, &out[j].Candidate)
	})

	if e.config.Diversity.Enabled {
		e.applyDiversity(out)
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].FinalScore != out[j].FinalScore {
				return out[i].FinalScore > out[j].FinalScore
			}
			return lessCandidate(&out[i].Candidate, &out[j].Candidate)
		})
	}

	for i := range out {
		out[i].Rank = i + 1
		out[i].MatchPercentage = roundTo(out[i].FinalScore, 1)
		out[i].Explanation = e.explain(profile, &out[i], stats)
	}
	return out
}

// applyDiversity nudges the first occurrence of each country, university,
// and field up the list slightly, so the top of the ranking is not a wall
// of near-identical programs.
func (e *RecommendationEnhancer) applyDiversity(scored []ScoredCandidate) {
	seenCountry := make(map[string]bool)
	seenUniversity := make(map[string]bool)
	seenField := make(map[string]bool)

	d := e.config.Diversity
	for i := range scored {
		c := &scored[i].Candidate
		country := strings.ToLower(c.Country)
		university := strings.ToLower(c.University)
		field := strings.ToLower(c.Field)

		var bonus float64
		if !seenCountry[country] {
			seenCountry[country] = true
			bonus += d.CountryBonus
		}
		if !seenUniversity[university] {
			seenUniversity[university] = true
			bonus += d.UniversityBonus
		}
		if !seenField[field] {
			seenField[field] = true
			bonus += d.FieldBonus
		}
		if bonus > 0 && scored[i].FinalScore > 0 {
			scored[i].FinalScore = clampScore(scored[i].FinalScore + bonus)
		}
	}
}

// explain builds the one-line explanation for a recommendation: notable
// sub-scores first, then the neighborhood boost when it moved the score
// by a material amount.
func (e *RecommendationEnhancer) explain(profile *PreferenceProfile, sc *ScoredCandidate, stats *NeighborhoodStats) string {
	notable := e.config.Explanation.NotableScore
	parts := make([]string, 0, 4)

	if sc.SubScores.Academic >= notable {
		parts = append(parts, fmt.Sprintf("strong fit for %s", profile.FieldOfStudy))
	}
	if sc.SubScores.Tuition >= notable {
		parts = append(parts, "tuition within budget")
	}
	if sc.SubScores.Ranking >= notable && sc.Candidate.RankingGlobal > 0 {
		parts = append(parts, fmt.Sprintf("ranked #%d globally", sc.Candidate.RankingGlobal))
	}
	if sc.SubScores.GeoLanguage >= notable {
		parts = append(parts, "matches your location and language preferences")
	}

	lift := sc.BaseScore * sc.Boost * e.config.Boost.Weight
	if stats != nil && stats.Neighbors > 0 && lift >= e.config.Explanation.BoostMaterialityPoints {
		parts = append(parts, fmt.Sprintf("popular choice among %d similar students", stats.Neighbors))
	}

	if len(parts) == 0 {
		return fmt.Sprintf("Overall match of %.1f%% across your preferences", sc.MatchPercentage)
	}
	return strings.Join(parts, "; ")
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
