// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import (
	"math"
	"testing"

	"github.com/rs/zerolog"
)

func newTestScorer(t *testing.T) *ProgramScorer {
	t.Helper()
	return NewProgramScorer(DefaultConfig(), zerolog.Nop())
}

func testCandidates() []ProgramCandidate {
	return []ProgramCandidate{
		{
			ID: 1, Program: "MSc Computer Science", University: "TU Munich",
			Country: "Germany", City: "Munich", TuitionPerYear: 3000,
			LivingCost: 1200, Language: "English", DurationYears: 2,
			Field: "Computer Science", Level: DegreeMaster, RankingGlobal: 50,
		},
		{
			ID: 2, Program: "MSc Data Science", University: "ETH Zurich",
			Country: "Switzerland", City: "Zurich", TuitionPerYear: 1500,
			LivingCost: 2200, Language: "English", DurationYears: 2,
			Field: "Data Science", Level: DegreeMaster, RankingGlobal: 10,
		},
		{
			ID: 3, Program: "MSc Informatik", University: "University of Vienna",
			Country: "Austria", City: "Vienna", TuitionPerYear: 1500,
			LivingCost: 1000, Language: "German", DurationYears: 2,
			Field: "Computer Science", Level: DegreeMaster, RankingGlobal: 300,
		},
		{
			ID: 4, Program: "BSc Computer Science", University: "University of Toronto",
			Country: "Canada", City: "Toronto", TuitionPerYear: 40000,
			LivingCost: 1800, Language: "English", DurationYears: 4,
			Field: "Computer Science", Level: DegreeBachelor, RankingGlobal: 25,
		},
		{
			ID: 5, Program: "MBA", University: "Harvard University",
			Country: "USA", City: "Boston", TuitionPerYear: 75000,
			LivingCost: 2500, Language: "English", DurationYears: 2,
			Field: "Business Administration", Level: DegreeMaster, RankingGlobal: 1,
		},
	}
}

func masterProfile() *PreferenceProfile {
	return &PreferenceProfile{
		FieldOfStudy:       "Computer Science",
		DegreeLevel:        DegreeMaster,
		MaxTuition:         15000,
		MaxLivingExpenses:  1500,
		PreferredCountries: []string{"Germany"},
		LanguagePreference: LanguageEnglishPrograms,
		RankingImportance:  0.7,
		CostSensitivity:    0.5,
	}
}

func TestProgramScorer_DegreeFilter(t *testing.T) {
	s := newTestScorer(t)

	scored := s.Score(masterProfile(), testCandidates())
	for _, sc := range scored {
		if sc.Candidate.Level != DegreeMaster {
			t.Errorf("candidate %d has level %s, want only Master candidates", sc.Candidate.ID, sc.Candidate.Level)
		}
	}
	if len(scored) != 4 {
		t.Errorf("scored %d candidates, want 4 after degree filter", len(scored))
	}
}

func TestProgramScorer_NoMatchingLevel(t *testing.T) {
	s := newTestScorer(t)

	profile := masterProfile()
	profile.DegreeLevel = DegreePhD
	scored := s.Score(profile, testCandidates())
	if len(scored) != 0 {
		t.Errorf("scored %d candidates, want 0 for a level with no candidates", len(scored))
	}
}

func TestProgramScorer_Ordering(t *testing.T) {
	s := newTestScorer(t)

	scored := s.Score(masterProfile(), testCandidates())
	if len(scored) == 0 {
		t.Fatal("no candidates scored")
	}

	for i := 1; i < len(scored); i++ {
		if scored[i].BaseScore > scored[i-1].BaseScore {
			t.Errorf("scores not descending at position %d: %f > %f",
				i, scored[i].BaseScore, scored[i-1].BaseScore)
		}
	}

	// The TU Munich program matches field exactly, is in the preferred
	// country, taught in English, and well under budget. It must beat the
	// off-field, over-budget Harvard MBA.
	var munich, harvard float64
	for _, sc := range scored {
		switch sc.Candidate.ID {
		case 1:
			munich = sc.BaseScore
		case 5:
			harvard = sc.BaseScore
		}
	}
	if munich <= harvard {
		t.Errorf("TU Munich score %f should exceed Harvard MBA score %f", munich, harvard)
	}
}

func TestProgramScorer_SubScoreBounds(t *testing.T) {
	s := newTestScorer(t)

	scored := s.Score(masterProfile(), testCandidates())
	for _, sc := range scored {
		subs := map[string]float64{
			"academic":     sc.SubScores.Academic,
			"tuition":      sc.SubScores.Tuition,
			"living":       sc.SubScores.Living,
			"ranking":      sc.SubScores.Ranking,
			"geo_language": sc.SubScores.GeoLanguage,
			"base":         sc.BaseScore,
		}
		for name, v := range subs {
			if v < 0 || v > 100 {
				t.Errorf("candidate %d %s = %f, want in [0, 100]", sc.Candidate.ID, name, v)
			}
		}
	}
}

func TestProgramScorer_AcademicFit(t *testing.T) {
	s := newTestScorer(t)
	cfg := DefaultConfig()
	keywords := extractKeywords("Computer Science")

	tests := []struct {
		name      string
		candidate ProgramCandidate
		want      float64
	}{
		{
			name:      "exact field match",
			candidate: ProgramCandidate{Field: "Computer Science", Program: "MSc CS"},
			want:      100,
		},
		{
			name:      "exact match different case",
			candidate: ProgramCandidate{Field: "COMPUTER SCIENCE"},
			want:      100,
		},
		{
			name:      "keyword match in program name",
			candidate: ProgramCandidate{Field: "Data Science", Program: "Computer Engineering"},
			want:      cfg.Scoring.PartialFieldCredit,
		},
		{
			name:      "keyword match in field",
			candidate: ProgramCandidate{Field: "Applied Computer Engineering"},
			want:      cfg.Scoring.PartialFieldCredit,
		},
		{
			name:      "no match",
			candidate: ProgramCandidate{Field: "Fine Arts", Program: "BA Painting"},
			want:      0,
		},
	}

	profile := masterProfile()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.scoreAcademic(profile, &tt.candidate, keywords)
			if got != tt.want {
				t.Errorf("scoreAcademic() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestDecayScore(t *testing.T) {
	tests := []struct {
		name   string
		cost   float64
		budget float64
		want   float64
	}{
		{"under budget", 5000, 10000, 100},
		{"at budget", 10000, 10000, 100},
		{"midway to ceiling", 15000, 10000, 50},
		{"at ceiling", 20000, 10000, 0},
		{"beyond ceiling", 30000, 10000, 0},
		{"no budget", 5000, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decayScore(tt.cost, tt.budget, 2.0)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("decayScore(%f, %f) = %f, want %f", tt.cost, tt.budget, got, tt.want)
			}
		})
	}
}

func TestScoreRanking(t *testing.T) {
	tests := []struct {
		name    string
		rank    int
		minRank int
		maxRank int
		want    float64
	}{
		{"best in pool", 10, 10, 500, 100},
		{"worst in pool", 500, 10, 500, 0},
		{"midpoint", 255, 10, 500, 50},
		{"unranked candidate", 0, 10, 500, 100},
		{"degenerate pool", 50, 50, 50, 100},
		{"empty pool stats", 100, 0, 0, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := scoreRanking(tt.rank, tt.minRank, tt.maxRank)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("scoreRanking(%d, %d, %d) = %f, want %f", tt.rank, tt.minRank, tt.maxRank, got, tt.want)
			}
		})
	}
}

func TestProgramScorer_Geography(t *testing.T) {
	s := newTestScorer(t)
	cfg := DefaultConfig()

	tests := []struct {
		name      string
		preferred []string
		country   string
		want      float64
	}{
		{"no preference", nil, "Japan", 100},
		{"preferred country", []string{"Germany"}, "Germany", 100},
		{"preferred case-insensitive", []string{"germany"}, "Germany", 100},
		{"same region", []string{"Germany"}, "France", cfg.Scoring.RegionCredit},
		{"different region", []string{"Germany"}, "Japan", 0},
		{"unknown country", []string{"Germany"}, "Atlantis", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := masterProfile()
			profile.PreferredCountries = tt.preferred
			c := ProgramCandidate{Country: tt.country}
			got := s.scoreGeography(profile, &c)
			if got != tt.want {
				t.Errorf("scoreGeography() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestProgramScorer_Language(t *testing.T) {
	s := newTestScorer(t)
	cfg := DefaultConfig()

	tests := []struct {
		name     string
		pref     LanguagePreference
		language string
		want     float64
	}{
		{"english only, english program", LanguageEnglishOnly, "English", 100},
		{"english only, german program", LanguageEnglishOnly, "German", 0},
		{"english programs, english", LanguageEnglishPrograms, "English", 100},
		{"english programs, german", LanguageEnglishPrograms, "German", cfg.Scoring.NonEnglishCredit},
		{"empty preference defaults", "", "German", cfg.Scoring.NonEnglishCredit},
		{"open to learning, english", LanguageOpenToLearning, "English", cfg.Scoring.OpenLanguageCredit},
		{"open to learning, german", LanguageOpenToLearning, "German", cfg.Scoring.OpenLanguageCredit},
		{"mixed instruction counts as english", LanguageEnglishOnly, "German/English", 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := masterProfile()
			profile.LanguagePreference = tt.pref
			c := ProgramCandidate{Language: tt.language}
			got := s.scoreLanguage(profile, &c)
			if got != tt.want {
				t.Errorf("scoreLanguage() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestProgramScorer_DefaultTuitionCap(t *testing.T) {
	s := newTestScorer(t)

	profile := masterProfile()
	profile.MaxTuition = 0 // unstated budget falls back to the system cap

	scored := s.Score(profile, testCandidates())
	for _, sc := range scored {
		if sc.Candidate.TuitionPerYear <= DefaultConfig().Scoring.DefaultMaxTuition && sc.SubScores.Tuition != 100 {
			t.Errorf("candidate %d tuition sub-score = %f, want 100 under the default cap",
				sc.Candidate.ID, sc.SubScores.Tuition)
		}
	}
}

func TestProgramScorer_TieBreakDeterminism(t *testing.T) {
	s := newTestScorer(t)

	// Two identical candidates except ranking and name.
	candidates := []ProgramCandidate{
		{ID: 2, Program: "MSc CS", University: "B University", Country: "Germany",
			TuitionPerYear: 3000, Language: "English", Field: "Computer Science",
			Level: DegreeMaster, RankingGlobal: 100},
		{ID: 1, Program: "MSc CS", University: "A University", Country: "Germany",
			TuitionPerYear: 3000, Language: "English", Field: "Computer Science",
			Level: DegreeMaster, RankingGlobal: 100},
	}

	profile := masterProfile()
	profile.PreferredCountries = nil

	for run := 0; run < 5; run++ {
		scored := s.Score(profile, candidates)
		if len(scored) != 2 {
			t.Fatalf("scored %d, want 2", len(scored))
		}
		if scored[0].Candidate.University != "A University" {
			t.Fatalf("run %d: tie-break picked %q first, want A University", run, scored[0].Candidate.University)
		}
	}
}

func TestLessCandidate(t *testing.T) {
	tests := []struct {
		name string
		a, b ProgramCandidate
		want bool
	}{
		{
			name: "lower ranking wins",
			a:    ProgramCandidate{RankingGlobal: 10},
			b:    ProgramCandidate{RankingGlobal: 20},
			want: true,
		},
		{
			name: "unranked loses to ranked",
			a:    ProgramCandidate{RankingGlobal: 0},
			b:    ProgramCandidate{RankingGlobal: 9999},
			want: false,
		},
		{
			name: "equal rank falls to university name",
			a:    ProgramCandidate{RankingGlobal: 10, University: "Aalto"},
			b:    ProgramCandidate{RankingGlobal: 10, University: "Zurich"},
			want: true,
		},
		{
			name: "equal everything falls to id",
			a:    ProgramCandidate{RankingGlobal: 10, University: "Aalto", ID: 1},
			b:    ProgramCandidate{RankingGlobal: 10, University: "Aalto", ID: 2},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lessCandidate(&tt.a, &tt.b); got != tt.want {
				t.Errorf("lessCandidate() = %v, want %v", got, tt.want)
			}
		})
	}
}
