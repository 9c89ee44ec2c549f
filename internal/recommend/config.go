// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import "fmt"

// Config contains all tunables for the recommendation engine. It is
// constructed once, validated, and passed by reference into the scorer and
// enhancer components.
type Config struct {
	// Weights defines the relative contribution of each scoring criterion.
	// Weights are normalized at runtime, so they don't need to sum to 100.
	Weights ScoringWeights `json:"weights"`

	// BoostWeights defines the relative contribution of each outcome
	// dimension to the combined popularity boost.
	BoostWeights BoostWeights `json:"boost_weights"`

	// Scoring contains sub-score thresholds and decay parameters.
	Scoring ScoringConfig `json:"scoring"`

	// Boost contains enhancement parameters.
	Boost BoostConfig `json:"boost"`

	// Diversity contains the diversity adjustment parameters.
	Diversity DiversityConfig `json:"diversity"`

	// Explanation contains explanation generation thresholds.
	Explanation ExplanationConfig `json:"explanation"`

	// Limits contains operational limits.
	Limits LimitsConfig `json:"limits"`
}

// ScoringWeights defines the relative contribution of each sub-score.
type ScoringWeights struct {
	// Academic is the weight for academic field fit.
	Academic float64 `json:"academic"`

	// Tuition is the weight for annual tuition fit.
	Tuition float64 `json:"tuition"`

	// Living is the weight for monthly living-expense fit.
	Living float64 `json:"living"`

	// Ranking is the weight for university ranking standing.
	Ranking float64 `json:"ranking"`

	// GeoLanguage is the weight for combined geography and language fit.
	GeoLanguage float64 `json:"geo_language"`
}

// Normalize returns a copy with weights scaled to sum to 1.0.
// All-zero weights normalize to equal shares.
func (w ScoringWeights) Normalize() ScoringWeights {
	sum := w.Academic + w.Tuition + w.Living + w.Ranking + w.GeoLanguage
	if sum == 0 {
		const equal = 1.0 / 5.0
		return ScoringWeights{
			Academic: equal, Tuition: equal, Living: equal,
			Ranking: equal, GeoLanguage: equal,
		}
	}
	return ScoringWeights{
		Academic:    w.Academic / sum,
		Tuition:     w.Tuition / sum,
		Living:      w.Living / sum,
		Ranking:     w.Ranking / sum,
		GeoLanguage: w.GeoLanguage / sum,
	}
}

// BoostWeights defines the relative contribution of each outcome dimension
// to the combined popularity boost.
type BoostWeights struct {
	// Country is the weight for destination country popularity.
	Country float64 `json:"country"`

	// Tier is the weight for university tier popularity, used as a proxy
	// for the university itself.
	Tier float64 `json:"tier"`

	// Field is the weight for field-of-study popularity.
	Field float64 `json:"field"`
}

// Normalize returns a copy with weights scaled to sum to 1.0.
func (w BoostWeights) Normalize() BoostWeights {
	sum := w.Country + w.Tier + w.Field
	if sum == 0 {
		const equal = 1.0 / 3.0
		return BoostWeights{Country: equal, Tier: equal, Field: equal}
	}
	return BoostWeights{
		Country: w.Country / sum,
		Tier:    w.Tier / sum,
		Field:   w.Field / sum,
	}
}

// ScoringConfig contains sub-score thresholds and decay parameters.
type ScoringConfig struct {
	// PartialFieldCredit is the academic sub-score awarded for a keyword or
	// substring field match that is not exact.
	// Default: 60.
	PartialFieldCredit float64 `json:"partial_field_credit"`

	// OvershootRatio defines where tuition and living-cost scores decay to
	// zero, as a multiple of the stated budget. A candidate at exactly the
	// budget scores 100; at OvershootRatio times the budget it scores 0.
	// Default: 2.0.
	OvershootRatio float64 `json:"overshoot_ratio"`

	// RegionCredit is the geography sub-score for a candidate whose country
	// is not preferred but shares a region with a preferred country.
	// Default: 70.
	RegionCredit float64 `json:"region_credit"`

	// OpenLanguageCredit is the flat language sub-score when the student is
	// open to learning a new language.
	// Default: 80.
	OpenLanguageCredit float64 `json:"open_language_credit"`

	// NonEnglishCredit is the language sub-score for a non-English program
	// under the default preference (English programs, any country).
	// Default: 50.
	NonEnglishCredit float64 `json:"non_english_credit"`

	// DefaultMaxTuition is the system-wide annual tuition cap applied when
	// the profile does not state a budget.
	// Default: 50000.
	DefaultMaxTuition float64 `json:"default_max_tuition"`
}

// BoostConfig contains enhancement parameters.
type BoostConfig struct {
	// Weight bounds how much historical popularity can move a score, in
	// [0, 1]. The merge is multiplicative:
	//
	//	final = base*(1-Weight) + base*boost*Weight
	//
	// so a zero base score stays zero regardless of boost.
	// Default: 0.2.
	Weight float64 `json:"weight"`

	// Neighbors is the default number of similar students retrieved per
	// request.
	// Default: 10.
	Neighbors int `json:"neighbors"`

	// MaxNeighbors is the maximum allowed per-call neighbor count.
	// Default: 50.
	MaxNeighbors int `json:"max_neighbors"`
}

// DiversityConfig contains the diversity adjustment parameters. The first
// occurrence of a country, university, or field in the ranked list receives
// a small deterministic bonus so the top of the list is not a monoculture.
type DiversityConfig struct {
	// Enabled controls whether the adjustment runs.
	// Default: true.
	Enabled bool `json:"enabled"`

	// CountryBonus is the bonus in score points for the first candidate
	// from each country. Default: 3.
	CountryBonus float64 `json:"country_bonus"`

	// UniversityBonus is the bonus for the first candidate from each
	// university. Default: 2.
	UniversityBonus float64 `json:"university_bonus"`

	// FieldBonus is the bonus for the first candidate in each field.
	// Default: 1.
	FieldBonus float64 `json:"field_bonus"`
}

// ExplanationConfig contains explanation generation thresholds.
type ExplanationConfig struct {
	// NotableScore is the sub-score above which a criterion earns a clause
	// in the explanation. Default: 70.
	NotableScore float64 `json:"notable_score"`

	// BoostMaterialityPoints is the minimum score contribution (in points)
	// the popularity boost must make before the explanation cites it.
	// Default: 2.0.
	BoostMaterialityPoints float64 `json:"boost_materiality_points"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the default number of recommendations returned.
	// Default: 10.
	DefaultK int `json:"default_k"`

	// MaxK is the maximum allowed K value.
	// Default: 50.
	MaxK int `json:"max_k"`

	// MaxCandidates is the maximum number of candidates scored per request.
	// Default: 1000.
	MaxCandidates int `json:"max_candidates"`
}

// DefaultConfig returns a Config with documented production defaults.
func DefaultConfig() *Config {
	return &Config{
		Weights: ScoringWeights{
			Academic:    30,
			Tuition:     25,
			Living:      10,
			Ranking:     15,
			GeoLanguage: 20,
		},
		BoostWeights: BoostWeights{
			Country: 0.4,
			Tier:    0.3,
			Field:   0.3,
		},
		Scoring: ScoringConfig{
			PartialFieldCredit: 60,
			OvershootRatio:     2.0,
			RegionCredit:       70,
			OpenLanguageCredit: 80,
			NonEnglishCredit:   50,
			DefaultMaxTuition:  50000,
		},
		Boost: BoostConfig{
			Weight:       0.2,
			Neighbors:    10,
			MaxNeighbors: 50,
		},
		Diversity: DiversityConfig{
			Enabled:         true,
			CountryBonus:    3,
			UniversityBonus: 2,
			FieldBonus:      1,
		},
		Explanation: ExplanationConfig{
			NotableScore:           70,
			BoostMaterialityPoints: 2.0,
		},
		Limits: LimitsConfig{
			DefaultK:      10,
			MaxK:          50,
			MaxCandidates: 1000,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Weights.Academic < 0 || c.Weights.Tuition < 0 || c.Weights.Living < 0 ||
		c.Weights.Ranking < 0 || c.Weights.GeoLanguage < 0 {
		return fmt.Errorf("weights must be non-negative, got %+v", c.Weights)
	}
	if c.BoostWeights.Country < 0 || c.BoostWeights.Tier < 0 || c.BoostWeights.Field < 0 {
		return fmt.Errorf("boost_weights must be non-negative, got %+v", c.BoostWeights)
	}

	if c.Scoring.PartialFieldCredit < 0 || c.Scoring.PartialFieldCredit > 100 {
		return fmt.Errorf("scoring.partial_field_credit must be in [0, 100], got %f", c.Scoring.PartialFieldCredit)
	}
	if c.Scoring.OvershootRatio <= 1 {
		return fmt.Errorf("scoring.overshoot_ratio must be > 1, got %f", c.Scoring.OvershootRatio)
	}
	if c.Scoring.RegionCredit < 0 || c.Scoring.RegionCredit > 100 {
		return fmt.Errorf("scoring.region_credit must be in [0, 100], got %f", c.Scoring.RegionCredit)
	}
	if c.Scoring.OpenLanguageCredit < 0 || c.Scoring.OpenLanguageCredit > 100 {
		return fmt.Errorf("scoring.open_language_credit must be in [0, 100], got %f", c.Scoring.OpenLanguageCredit)
	}
	if c.Scoring.NonEnglishCredit < 0 || c.Scoring.NonEnglishCredit > 100 {
		return fmt.Errorf("scoring.non_english_credit must be in [0, 100], got %f", c.Scoring.NonEnglishCredit)
	}
	if c.Scoring.DefaultMaxTuition <= 0 {
		return fmt.Errorf("scoring.default_max_tuition must be positive, got %f", c.Scoring.DefaultMaxTuition)
	}

	if c.Boost.Weight < 0 || c.Boost.Weight > 1 {
		return fmt.Errorf("boost.weight must be in [0, 1], got %f", c.Boost.Weight)
	}
	if c.Boost.Neighbors < 1 {
		return fmt.Errorf("boost.neighbors must be positive, got %d", c.Boost.Neighbors)
	}
	if c.Boost.MaxNeighbors < c.Boost.Neighbors {
		return fmt.Errorf("boost.max_neighbors must be >= boost.neighbors, got %d < %d",
			c.Boost.MaxNeighbors, c.Boost.Neighbors)
	}

	if c.Diversity.CountryBonus < 0 || c.Diversity.UniversityBonus < 0 || c.Diversity.FieldBonus < 0 {
		return fmt.Errorf("diversity bonuses must be non-negative, got %+v", c.Diversity)
	}

	if c.Explanation.NotableScore < 0 || c.Explanation.NotableScore > 100 {
		return fmt.Errorf("explanation.notable_score must be in [0, 100], got %f", c.Explanation.NotableScore)
	}
	if c.Explanation.BoostMaterialityPoints < 0 {
		return fmt.Errorf("explanation.boost_materiality_points must be non-negative, got %f",
			c.Explanation.BoostMaterialityPoints)
	}

	if c.Limits.DefaultK < 1 {
		return fmt.Errorf("limits.default_k must be positive, got %d", c.Limits.DefaultK)
	}
	if c.Limits.MaxK < c.Limits.DefaultK {
		return fmt.Errorf("limits.max_k must be >= limits.default_k, got %d < %d",
			c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Limits.MaxCandidates < 1 {
		return fmt.Errorf("limits.max_candidates must be positive, got %d", c.Limits.MaxCandidates)
	}

	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	return &Config{
		Weights:      c.Weights,
		BoostWeights: c.BoostWeights,
		Scoring:      c.Scoring,
		Boost:        c.Boost,
		Diversity:    c.Diversity,
		Explanation:  c.Explanation,
		Limits:       c.Limits,
	}
}
