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

func newTestAggregator(t *testing.T) *OutcomeAggregator {
	t.Helper()
	return NewOutcomeAggregator(DefaultConfig(), zerolog.Nop())
}

func neighborsFrom(students []HistoricalStudent) []Neighbor {
	neighbors := make([]Neighbor, len(students))
	for i, s := range students {
		neighbors[i] = Neighbor{Student: s, Distance: float64(i)}
	}
	return neighbors
}

func TestOutcomeAggregator_Aggregate(t *testing.T) {
	a := newTestAggregator(t)

	stats := a.Aggregate(neighborsFrom(testStudents()))
	if stats.Neighbors != 4 {
		t.Errorf("Neighbors = %d, want 4", stats.Neighbors)
	}

	// Satisfaction weights: 0.9 + 0.8 + 0.7 + 0.6 = 3.0 total mass.
	if math.Abs(stats.TotalMass-3.0) > 1e-9 {
		t.Errorf("TotalMass = %f, want 3.0", stats.TotalMass)
	}

	// Germany carries students 1 and 2: 0.9 + 0.8 = 1.7.
	if math.Abs(stats.CountryMass["germany"]-1.7) > 1e-9 {
		t.Errorf("CountryMass[germany] = %f, want 1.7", stats.CountryMass["germany"])
	}
	if math.Abs(stats.CountryMass["usa"]-0.7) > 1e-9 {
		t.Errorf("CountryMass[usa] = %f, want 0.7", stats.CountryMass["usa"])
	}

	// Tier 3 carries students 2 and 4: 0.8 + 0.6 = 1.4.
	if math.Abs(stats.TierMass[3]-1.4) > 1e-9 {
		t.Errorf("TierMass[3] = %f, want 1.4", stats.TierMass[3])
	}

	// Computer Science carries students 1 and 2.
	if math.Abs(stats.FieldMass["computer science"]-1.7) > 1e-9 {
		t.Errorf("FieldMass[computer science] = %f, want 1.7", stats.FieldMass["computer science"])
	}

	// Mean satisfaction: (9 + 8 + 7 + 6) / 4 = 7.5.
	if math.Abs(stats.MeanSatisfaction-7.5) > 1e-9 {
		t.Errorf("MeanSatisfaction = %f, want 7.5", stats.MeanSatisfaction)
	}
}

func TestOutcomeAggregator_Aggregate_Empty(t *testing.T) {
	a := newTestAggregator(t)

	stats := a.Aggregate(nil)
	if stats.Neighbors != 0 || stats.TotalMass != 0 {
		t.Errorf("empty aggregate = %+v, want zero stats", stats)
	}

	boost := a.Boost(stats, &ProgramCandidate{Country: "Germany", Field: "Computer Science", RankingGlobal: 100})
	if boost != 0 {
		t.Errorf("Boost() = %f on empty stats, want 0", boost)
	}
}

func TestOutcomeAggregator_Aggregate_MissingSatisfaction(t *testing.T) {
	a := newTestAggregator(t)

	students := []HistoricalStudent{
		{ID: 1, DestinationCountry: "Germany", UniversityTier: 2, FieldOfStudy: "CS", SatisfactionScore: 0},
	}
	stats := a.Aggregate(neighborsFrom(students))

	// A missing score counts as a neutral half vote.
	if math.Abs(stats.TotalMass-0.5) > 1e-9 {
		t.Errorf("TotalMass = %f, want 0.5 for missing satisfaction", stats.TotalMass)
	}
}

func TestOutcomeAggregator_Boost(t *testing.T) {
	a := newTestAggregator(t)
	stats := a.Aggregate(neighborsFrom(testStudents()))

	// Candidate in Germany (mass 1.7/3.0), tier 2 via ranking 100
	// (student 1 only: 0.9/3.0), field Computer Science (1.7/3.0).
	c := &ProgramCandidate{Country: "Germany", Field: "Computer Science", RankingGlobal: 100}
	boost := a.Boost(stats, c)

	want := 0.4*(1.7/3.0) + 0.3*(0.9/3.0) + 0.3*(1.7/3.0)
	if math.Abs(boost-want) > 1e-9 {
		t.Errorf("Boost() = %f, want %f", boost, want)
	}
	if boost <= 0 || boost > 1 {
		t.Errorf("Boost() = %f, want in (0, 1]", boost)
	}
}

func TestOutcomeAggregator_Boost_NoOverlap(t *testing.T) {
	a := newTestAggregator(t)
	stats := a.Aggregate(neighborsFrom(testStudents()))

	// Nothing in the neighborhood matches this candidate: tier 5 via a
	// ranking beyond 1000, unvisited country, unstudied field.
	c := &ProgramCandidate{Country: "Japan", Field: "Fine Arts", RankingGlobal: 2000}
	if boost := a.Boost(stats, c); boost != 0 {
		t.Errorf("Boost() = %f for zero-overlap candidate, want 0", boost)
	}
}

func TestOutcomeAggregator_Boost_UnrankedCandidate(t *testing.T) {
	a := newTestAggregator(t)
	stats := a.Aggregate(neighborsFrom(testStudents()))

	// Unranked candidates earn no tier component but keep country and
	// field shares.
	c := &ProgramCandidate{Country: "Germany", Field: "Computer Science", RankingGlobal: 0}
	boost := a.Boost(stats, c)
	want := 0.4*(1.7/3.0) + 0.3*(1.7/3.0)
	if math.Abs(boost-want) > 1e-9 {
		t.Errorf("Boost() = %f, want %f without tier component", boost, want)
	}
}

func TestSatisfactionWeight(t *testing.T) {
	tests := []struct {
		score int
		want  float64
	}{
		{10, 1.0},
		{5, 0.5},
		{1, 0.1},
		{0, 0.5},
		{-3, 0.5},
		{11, 0.5},
	}

	for _, tt := range tests {
		if got := satisfactionWeight(tt.score); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("satisfactionWeight(%d) = %f, want %f", tt.score, got, tt.want)
		}
	}
}
