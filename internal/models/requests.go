// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package models

import (
	"github.com/ashanr/student-decision-support/internal/recommend"
)

// RecommendationRequest is the body of POST /api/v1/recommendations.
// Struct tags drive go-playground/validator; degree_level and language_pref
// are custom validators registered in internal/validation.
type RecommendationRequest struct {
	FieldOfStudy       string   `json:"field_of_study" validate:"required,min=2,max=100"`
	DegreeLevel        string   `json:"degree_level" validate:"required,degree_level"`
	MaxTuition         float64  `json:"max_tuition" validate:"omitempty,min=0"`
	MaxLivingExpenses  float64  `json:"max_living_expenses" validate:"omitempty,min=0"`
	PreferredCountries []string `json:"preferred_countries" validate:"omitempty,max=20,dive,min=2,max=60"`
	LanguagePreference string   `json:"language_preference" validate:"language_pref"`
	RankingImportance  float64  `json:"ranking_importance" validate:"min=0,max=1"`
	CostSensitivity    float64  `json:"cost_sensitivity" validate:"min=0,max=1"`

	// Limit is the number of recommendations to return. Zero means the
	// engine default; the engine caps it at its configured maximum.
	Limit int `json:"limit" validate:"omitempty,min=1,max=50"`
}

// Profile converts the request into an engine preference profile. The
// degree level and language preference strings have already passed
// validation, so the parse results are taken as-is.
func (r *RecommendationRequest) Profile() *recommend.PreferenceProfile {
	level, _ := recommend.ParseDegreeLevel(r.DegreeLevel)
	pref, _ := recommend.ParseLanguagePreference(r.LanguagePreference)

	return &recommend.PreferenceProfile{
		FieldOfStudy:       r.FieldOfStudy,
		DegreeLevel:        level,
		MaxTuition:         r.MaxTuition,
		MaxLivingExpenses:  r.MaxLivingExpenses,
		PreferredCountries: r.PreferredCountries,
		LanguagePreference: pref,
		RankingImportance:  r.RankingImportance,
		CostSensitivity:    r.CostSensitivity,
	}
}

// SimilarStudentsRequest is the body of POST /api/v1/similar-students.
// It carries the same preference profile as a recommendation request but
// returns historical students instead of programs.
type SimilarStudentsRequest struct {
	FieldOfStudy       string   `json:"field_of_study" validate:"required,min=2,max=100"`
	DegreeLevel        string   `json:"degree_level" validate:"required,degree_level"`
	MaxTuition         float64  `json:"max_tuition" validate:"omitempty,min=0"`
	MaxLivingExpenses  float64  `json:"max_living_expenses" validate:"omitempty,min=0"`
	PreferredCountries []string `json:"preferred_countries" validate:"omitempty,max=20,dive,min=2,max=60"`
	LanguagePreference string   `json:"language_preference" validate:"language_pref"`
	RankingImportance  float64  `json:"ranking_importance" validate:"min=0,max=1"`
	CostSensitivity    float64  `json:"cost_sensitivity" validate:"min=0,max=1"`

	// K is the number of similar students to return. Zero means the
	// engine default.
	K int `json:"k" validate:"omitempty,min=1,max=50"`
}

// Profile converts the request into an engine preference profile.
func (r *SimilarStudentsRequest) Profile() *recommend.PreferenceProfile {
	level, _ := recommend.ParseDegreeLevel(r.DegreeLevel)
	pref, _ := recommend.ParseLanguagePreference(r.LanguagePreference)

	return &recommend.PreferenceProfile{
		FieldOfStudy:       r.FieldOfStudy,
		DegreeLevel:        level,
		MaxTuition:         r.MaxTuition,
		MaxLivingExpenses:  r.MaxLivingExpenses,
		PreferredCountries: r.PreferredCountries,
		LanguagePreference: pref,
		RankingImportance:  r.RankingImportance,
		CostSensitivity:    r.CostSensitivity,
	}
}

// RecommendationResult is the Data payload of a successful recommendation
// response.
type RecommendationResult struct {
	Recommendations []recommend.ScoredCandidate `json:"recommendations"`
	Count           int                         `json:"count"`
	Boosted         bool                        `json:"boosted"`
}

// SimilarStudentsResult is the Data payload of a successful similar-students
// response.
type SimilarStudentsResult struct {
	Matches []recommend.StudentMatch `json:"matches"`
	Count   int                      `json:"count"`
}
