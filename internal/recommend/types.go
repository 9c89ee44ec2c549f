// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import (
	"strings"
	"time"
)

// DegreeLevel is the academic level of a program or a student's intent.
type DegreeLevel string

const (
	// DegreeBachelor is an undergraduate degree.
	DegreeBachelor DegreeLevel = "Bachelor"
	// DegreeMaster is a graduate degree.
	DegreeMaster DegreeLevel = "Master"
	// DegreePhD is a doctoral degree.
	DegreePhD DegreeLevel = "PhD"
)

// ParseDegreeLevel parses a degree level string case-insensitively.
// Returns false if the value is not a recognized level.
func ParseDegreeLevel(s string) (DegreeLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bachelor", "bachelors", "bachelor's":
		return DegreeBachelor, true
	case "master", "masters", "master's":
		return DegreeMaster, true
	case "phd", "doctorate", "doctoral":
		return DegreePhD, true
	default:
		return "", false
	}
}

// Ordinal returns the numeric position of the level (Bachelor < Master < PhD).
func (d DegreeLevel) Ordinal() int {
	switch d {
	case DegreeBachelor:
		return 1
	case DegreeMaster:
		return 2
	case DegreePhD:
		return 3
	default:
		return 0
	}
}

// String returns the canonical level name.
func (d DegreeLevel) String() string {
	return string(d)
}

// LanguagePreference describes how the student wants instruction language
// handled during scoring.
type LanguagePreference string

const (
	// LanguageEnglishOnly accepts only English-taught programs.
	LanguageEnglishOnly LanguagePreference = "english_only"
	// LanguageEnglishPrograms prefers English-taught programs in any country.
	// This is the default when no preference is stated.
	LanguageEnglishPrograms LanguagePreference = "english_programs"
	// LanguageOpenToLearning accepts instruction in a new language.
	LanguageOpenToLearning LanguagePreference = "open_to_learning"
)

// ParseLanguagePreference parses a language preference string. The empty
// string maps to the default (English programs in any country).
func ParseLanguagePreference(s string) (LanguagePreference, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return LanguageEnglishPrograms, true
	case "english_only", "english only":
		return LanguageEnglishOnly, true
	case "english_programs", "any language with english programs":
		return LanguageEnglishPrograms, true
	case "open_to_learning", "open to learning a new language":
		return LanguageOpenToLearning, true
	default:
		return "", false
	}
}

// PreferenceProfile is the canonical, validated representation of a
// student's stated preferences. It is produced once per request and is
// immutable for the duration of a scoring pass.
type PreferenceProfile struct {
	// FieldOfStudy is a free-text discipline label. Required.
	FieldOfStudy string `json:"field_of_study"`

	// DegreeLevel is the intended degree level. Required. Candidates at a
	// different level are excluded outright, never merely down-scored.
	DegreeLevel DegreeLevel `json:"degree_level"`

	// MaxTuition is the annual tuition budget, currency-normalized.
	// Zero means unstated; the system-wide cap applies.
	MaxTuition float64 `json:"max_tuition,omitempty"`

	// MaxLivingExpenses is the monthly living budget.
	// Zero means unstated; living cost is not constrained.
	MaxLivingExpenses float64 `json:"max_living_expenses,omitempty"`

	// PreferredCountries lists preferred destination countries in order.
	// Empty means no geographic preference.
	PreferredCountries []string `json:"preferred_countries,omitempty"`

	// LanguagePreference controls language scoring. Defaults to
	// LanguageEnglishPrograms when empty.
	LanguagePreference LanguagePreference `json:"language_preference,omitempty"`

	// RankingImportance is the weight in [0, 1] the student places on
	// university prestige. Zero means unstated.
	RankingImportance float64 `json:"ranking_importance,omitempty"`

	// CostSensitivity is the weight in [0, 1] the student places on
	// affordability. Zero means unstated.
	CostSensitivity float64 `json:"cost_sensitivity,omitempty"`
}

// ProgramCandidate is a candidate program supplied by the catalog store.
// Read-only to the engine; immutable for the duration of one scoring pass.
type ProgramCandidate struct {
	ID             int         `json:"id"`
	Program        string      `json:"program"`
	University     string      `json:"university"`
	Country        string      `json:"country"`
	City           string      `json:"city"`
	TuitionPerYear float64     `json:"tuition_per_year"`
	LivingCost     float64     `json:"living_cost"` // average monthly living cost for the location
	Language       string      `json:"language"`
	DurationYears  float64     `json:"duration_years"`
	Field          string      `json:"field"`
	Level          DegreeLevel `json:"level"`
	RankingGlobal  int         `json:"ranking_global"`
	ApplicationFee float64     `json:"application_fee,omitempty"`
}

// HistoricalStudent is one record of the historical outcome dataset.
// Treated as a static snapshot per engine instance; never mutated.
type HistoricalStudent struct {
	ID                  int     `json:"id"`
	FieldOfStudy        string  `json:"field_of_study"`
	GPA                 float64 `json:"gpa"`
	TuitionBudget       float64 `json:"tuition_budget"`
	LivingExpenseBudget float64 `json:"living_expense_budget"`
	RankingImportance   float64 `json:"ranking_importance"`
	CostSensitivity     float64 `json:"cost_sensitivity"`
	DestinationCountry  string  `json:"final_destination_country"`
	UniversityTier      int     `json:"final_university_tier"` // ordinal, 1 = top tier
	SatisfactionScore   int     `json:"decision_satisfaction_score"`
}

// SubScores is the per-criterion breakdown of a base score.
// Each component is in [0, 100].
type SubScores struct {
	Academic    float64 `json:"academic"`
	Tuition     float64 `json:"tuition"`
	Living      float64 `json:"living"`
	Ranking     float64 `json:"ranking"`
	GeoLanguage float64 `json:"geo_language"`
}

// ScoredCandidate is a candidate with its base score, historical boost,
// final score and explanation. Created once per request, never persisted.
type ScoredCandidate struct {
	Candidate ProgramCandidate `json:"candidate"`

	// BaseScore is the preference-only match score in [0, 100].
	BaseScore float64 `json:"base_score"`

	// SubScores is the per-criterion breakdown of BaseScore.
	SubScores SubScores `json:"sub_scores"`

	// Boost is the popularity boost factor in [0, 1] derived from similar
	// students' outcomes. Zero when no enhancement was applied.
	Boost float64 `json:"boost"`

	// FinalScore is the enhanced score in [0, 100].
	FinalScore float64 `json:"final_score"`

	// MatchPercentage is FinalScore rounded to one decimal place.
	MatchPercentage float64 `json:"match_percentage"`

	// Explanation is a human-readable summary of why the candidate ranked
	// where it did.
	Explanation string `json:"explanation"`

	// Rank is the 1-based position in the final ordering.
	Rank int `json:"rank"`
}

// Neighbor is a historical student returned by a similarity query.
type Neighbor struct {
	Student  HistoricalStudent `json:"student"`
	Distance float64           `json:"distance"`
}

// StudentSummary is the subset of HistoricalStudent fields safe to surface
// externally.
type StudentSummary struct {
	ID                int     `json:"id"`
	FieldOfStudy      string  `json:"field_of_study"`
	GPA               float64 `json:"gpa"`
	FinalDestination  string  `json:"final_destination"`
	SatisfactionScore int     `json:"satisfaction_score"`
}

// StudentMatch pairs an externally safe student summary with its distance
// from the query profile.
type StudentMatch struct {
	Student  StudentSummary `json:"student"`
	Distance float64        `json:"distance"`
}

// Summarize reduces a historical student to its externally safe subset.
func (s HistoricalStudent) Summarize() StudentSummary {
	return StudentSummary{
		ID:                s.ID,
		FieldOfStudy:      s.FieldOfStudy,
		GPA:               s.GPA,
		FinalDestination:  s.DestinationCountry,
		SatisfactionScore: s.SatisfactionScore,
	}
}

// EngineStatus reports the engine's index and request state.
type EngineStatus struct {
	IndexBuilt    bool      `json:"index_built"`
	IndexSize     int       `json:"index_size"`
	IndexBuiltAt  time.Time `json:"index_built_at,omitempty"`
	IndexVersion  int       `json:"index_version"`
	RequestCount  int64     `json:"request_count"`
	FallbackCount int64     `json:"fallback_count"`
}

// TierForRanking maps a global ranking position onto the ordinal tier
// buckets used in the historical dataset (1 = top 50 ... 5 = beyond 1000).
// Non-positive rankings map to 0 (unknown).
func TierForRanking(rankingGlobal int) int {
	switch {
	case rankingGlobal <= 0:
		return 0
	case rankingGlobal <= 50:
		return 1
	case rankingGlobal <= 200:
		return 2
	case rankingGlobal <= 500:
		return 3
	case rankingGlobal <= 1000:
		return 4
	default:
		return 5
	}
}
