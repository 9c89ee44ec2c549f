// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"
)

// ProgramScorer computes preference-only base scores for candidate
// programs. It is stateless between requests and safe for concurrent use.
type ProgramScorer struct {
	config *Config
	logger zerolog.Logger
}

// NewProgramScorer creates a scorer bound to a validated configuration.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewProgramScorer(cfg *Config, logger zerolog.Logger) *ProgramScorer {
	return &ProgramScorer{
		config: cfg,
		logger: logger.With().Str("component", "scorer").Logger(),
	}
}

// Score computes a base score in [0, 100] for each candidate against the
// profile. Candidates whose degree level does not match are excluded
// outright. The result is sorted by base score descending with a full
// deterministic tie-break.
func (s *ProgramScorer) Score(profile *PreferenceProfile, candidates []ProgramCandidate) []ScoredCandidate {
	pool := make([]ProgramCandidate, 0, len(candidates))
	for i := range candidates {
		if candidates[i].Level == profile.DegreeLevel {
			pool = append(pool, candidates[i])
		}
	}
	if len(pool) == 0 {
		return []ScoredCandidate{}
	}

	minRank, maxRank := rankingRange(pool)
	keywords := extractKeywords(profile.FieldOfStudy)
	maxTuition := profile.MaxTuition
	if maxTuition <= 0 {
		maxTuition = s.config.Scoring.DefaultMaxTuition
	}
	weights := s.config.Weights.Normalize()

	scored := make([]ScoredCandidate, 0, len(pool))
	for i := range pool {
		c := pool[i]
		sub := SubScores{
			Academic:    s.scoreAcademic(profile, &c, keywords),
			Tuition:     decayScore(c.TuitionPerYear, maxTuition, s.config.Scoring.OvershootRatio),
			Living:      s.scoreLiving(profile, &c),
			Ranking:     scoreRanking(c.RankingGlobal, minRank, maxRank),
			GeoLanguage: s.scoreGeoLanguage(profile, &c),
		}

		base := sub.Academic*weights.Academic +
			sub.Tuition*weights.Tuition +
			sub.Living*weights.Living +
			sub.Ranking*weights.Ranking +
			sub.GeoLanguage*weights.GeoLanguage

		scored = append(scored, ScoredCandidate{
			Candidate: c,
			BaseScore: clampScore(base),
			SubScores: sub,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].BaseScore != scored[j].BaseScore {
			return scored[i].BaseScore > scored[j].BaseScore
		}
		return lessCandidate(&scored[i].Candidate, &scored[j].Candidate)
	})

	return scored
}

// scoreAcademic scores field fit. An exact case-insensitive match earns
// full credit; a keyword or substring match earns the configured partial
// credit; anything else earns zero. Degree level is already a hard filter,
// so it is not re-checked here.
func (s *ProgramScorer) scoreAcademic(profile *PreferenceProfile, c *ProgramCandidate, keywords []string) float64 {
	want := strings.ToLower(strings.TrimSpace(profile.FieldOfStudy))
	have := strings.ToLower(strings.TrimSpace(c.Field))
	if want == "" {
		return 0
	}
	if want == have {
		return 100
	}

	haystack := have + " " + strings.ToLower(c.Program)
	if strings.Contains(haystack, want) {
		return s.config.Scoring.PartialFieldCredit
	}
	for _, kw := range keywords {
		if strings.Contains(haystack, kw) {
			return s.config.Scoring.PartialFieldCredit
		}
	}
	return 0
}

// scoreLiving scores monthly living cost against the stated budget.
// Full credit when the caller set no limit or the candidate carries no
// living-cost context.
func (s *ProgramScorer) scoreLiving(profile *PreferenceProfile, c *ProgramCandidate) float64 {
	if profile.MaxLivingExpenses <= 0 || c.LivingCost <= 0 {
		return 100
	}
	return decayScore(c.LivingCost, profile.MaxLivingExpenses, s.config.Scoring.OvershootRatio)
}

// scoreGeoLanguage averages the geography and language halves into one
// sub-score.
func (s *ProgramScorer) scoreGeoLanguage(profile *PreferenceProfile, c *ProgramCandidate) float64 {
	return (s.scoreGeography(profile, c) + s.scoreLanguage(profile, c)) / 2
}

// scoreGeography gives full credit for a preferred country (or when no
// preference is stated), partial credit for a same-region country, and
// zero otherwise.
func (s *ProgramScorer) scoreGeography(profile *PreferenceProfile, c *ProgramCandidate) float64 {
	if len(profile.PreferredCountries) == 0 {
		return 100
	}
	country := strings.ToLower(strings.TrimSpace(c.Country))
	for _, p := range profile.PreferredCountries {
		if strings.ToLower(strings.TrimSpace(p)) == country {
			return 100
		}
	}
	if inSameRegion(country, profile.PreferredCountries) {
		return s.config.Scoring.RegionCredit
	}
	return 0
}

// scoreLanguage evaluates the instruction language against the stated
// preference.
func (s *ProgramScorer) scoreLanguage(profile *PreferenceProfile, c *ProgramCandidate) float64 {
	english := strings.Contains(strings.ToLower(c.Language), "english")

	pref := profile.LanguagePreference
	if pref == "" {
		pref = LanguageEnglishPrograms
	}

	switch pref {
	case LanguageEnglishOnly:
		if english {
			return 100
		}
		return 0
	case LanguageOpenToLearning:
		return s.config.Scoring.OpenLanguageCredit
	default: // LanguageEnglishPrograms
		if english {
			return 100
		}
		return s.config.Scoring.NonEnglishCredit
	}
}

// decayScore gives full credit at or under the budget, then decays
// linearly to zero at overshootRatio times the budget.
func decayScore(cost, budget, overshootRatio float64) float64 {
	if budget <= 0 || cost <= budget {
		return 100
	}
	ceiling := budget * overshootRatio
	if cost >= ceiling {
		return 0
	}
	return 100 * (ceiling - cost) / (ceiling - budget)
}

// scoreRanking normalizes ranking standing against the request's candidate
// pool: the best-ranked candidate scores 100 and the worst 0. A pool with
// a single rank value (or unranked candidates) earns full credit.
func scoreRanking(rank, minRank, maxRank int) float64 {
	if rank <= 0 || minRank <= 0 || maxRank <= minRank {
		return 100
	}
	return 100 * float64(maxRank-rank) / float64(maxRank-minRank)
}

// rankingRange finds the min and max positive global rankings in the pool.
func rankingRange(pool []ProgramCandidate) (minRank, maxRank int) {
	for i := range pool {
		r := pool[i].RankingGlobal
		if r <= 0 {
			continue
		}
		if minRank == 0 || r < minRank {
			minRank = r
		}
		if r > maxRank {
			maxRank = r
		}
	}
	return minRank, maxRank
}

// regionGroups maps coarse world regions to lowercase country names, used
// for partial geography credit.
var regionGroups = map[string][]string{
	"europe": {
		"germany", "france", "italy", "spain", "netherlands",
		"belgium", "austria", "switzerland", "uk", "united kingdom",
		"ireland", "sweden",
	},
	"north_america": {"usa", "united states", "canada", "mexico"},
	"asia":          {"china", "japan", "south korea", "singapore", "india", "malaysia"},
	"oceania":       {"australia", "new zealand"},
}

// regionOf returns the region a country belongs to, or "".
func regionOf(country string) string {
	for region, countries := range regionGroups {
		for _, c := range countries {
			if c == country {
				return region
			}
		}
	}
	return ""
}

// inSameRegion reports whether country shares a region with any preferred
// country. Both inputs are matched case-insensitively.
func inSameRegion(country string, preferred []string) bool {
	region := regionOf(country)
	if region == "" {
		return false
	}
	for _, p := range preferred {
		if regionOf(strings.ToLower(strings.TrimSpace(p))) == region {
			return true
		}
	}
	return false
}

// extractKeywords splits a free-text field label into lowercase keywords
// longer than two characters.
func extractKeywords(text string) []string {
	cleaned := strings.NewReplacer(",", " ", ";", " ").Replace(strings.ToLower(text))
	words := strings.Fields(cleaned)
	keywords := make([]string, 0, len(words))
	for _, w := range words {
		if len(w) > 2 {
			keywords = append(keywords, w)
		}
	}
	return keywords
}

// lessCandidate is the deterministic tie-break used everywhere scores are
// equal: better (lower) global ranking first, then university name
// ascending, then candidate id.
func lessCandidate(a, b *ProgramCandidate) bool {
	ar, br := a.RankingGlobal, b.RankingGlobal
	if ar <= 0 {
		ar = int(^uint(0) >> 1)
	}
	if br <= 0 {
		br = int(^uint(0) >> 1)
	}
	if ar != br {
		return ar < br
	}
	if a.University != b.University {
		return a.University < b.University
	}
	return a.ID < b.ID
}

// clampScore bounds a score to [0, 100].
func clampScore(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
