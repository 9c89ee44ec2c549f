// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import "testing"

func TestParseDegreeLevel(t *testing.T) {
	tests := []struct {
		input string
		want  DegreeLevel
		ok    bool
	}{
		{"Bachelor", DegreeBachelor, true},
		{"bachelor", DegreeBachelor, true},
		{"bachelors", DegreeBachelor, true},
		{"  Master ", DegreeMaster, true},
		{"master's", DegreeMaster, true},
		{"PhD", DegreePhD, true},
		{"phd", DegreePhD, true},
		{"doctorate", DegreePhD, true},
		{"", "", false},
		{"diploma", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDegreeLevel(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseDegreeLevel(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestDegreeLevel_Ordinal(t *testing.T) {
	if DegreeBachelor.Ordinal() >= DegreeMaster.Ordinal() {
		t.Error("Bachelor ordinal should be below Master")
	}
	if DegreeMaster.Ordinal() >= DegreePhD.Ordinal() {
		t.Error("Master ordinal should be below PhD")
	}
	if DegreeLevel("unknown").Ordinal() != 0 {
		t.Error("unknown level should have ordinal 0")
	}
}

func TestParseLanguagePreference(t *testing.T) {
	tests := []struct {
		input string
		want  LanguagePreference
		ok    bool
	}{
		{"", LanguageEnglishPrograms, true},
		{"english_only", LanguageEnglishOnly, true},
		{"English Only", LanguageEnglishOnly, true},
		{"english_programs", LanguageEnglishPrograms, true},
		{"Any language with English programs", LanguageEnglishPrograms, true},
		{"open_to_learning", LanguageOpenToLearning, true},
		{"Open to learning a new language", LanguageOpenToLearning, true},
		{"klingon_only", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLanguagePreference(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("ParseLanguagePreference(%q) = (%q, %v), want (%q, %v)",
					tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestTierForRanking(t *testing.T) {
	tests := []struct {
		rank int
		want int
	}{
		{0, 0},
		{-5, 0},
		{1, 1},
		{50, 1},
		{51, 2},
		{200, 2},
		{201, 3},
		{500, 3},
		{501, 4},
		{1000, 4},
		{1001, 5},
		{5000, 5},
	}

	for _, tt := range tests {
		if got := TierForRanking(tt.rank); got != tt.want {
			t.Errorf("TierForRanking(%d) = %d, want %d", tt.rank, got, tt.want)
		}
	}
}

func TestHistoricalStudent_Summarize(t *testing.T) {
	s := HistoricalStudent{
		ID:                 42,
		FieldOfStudy:       "Computer Science",
		GPA:                3.6,
		TuitionBudget:      18000,
		DestinationCountry: "Germany",
		UniversityTier:     2,
		SatisfactionScore:  9,
	}

	sum := s.Summarize()
	if sum.ID != 42 {
		t.Errorf("ID = %d, want 42", sum.ID)
	}
	if sum.FinalDestination != "Germany" {
		t.Errorf("FinalDestination = %q, want Germany", sum.FinalDestination)
	}
	if sum.SatisfactionScore != 9 {
		t.Errorf("SatisfactionScore = %d, want 9", sum.SatisfactionScore)
	}
	if sum.GPA != 3.6 {
		t.Errorf("GPA = %f, want 3.6", sum.GPA)
	}
}
