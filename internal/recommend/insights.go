// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import (
	"math"
)

// FactorCorrelation reports how strongly one profile factor correlates
// with decision satisfaction across the historical dataset.
type FactorCorrelation struct {
	// Factor is the dataset column name.
	Factor string `json:"factor"`

	// Correlation is the Pearson coefficient in [-1, 1]. Zero when the
	// factor (or satisfaction) has no variance.
	Correlation float64 `json:"correlation"`

	// Samples is the number of records the coefficient was computed over.
	Samples int `json:"samples"`
}

// SatisfactionFactors computes the Pearson correlation of each numeric
// profile factor against the satisfaction score over the indexed
// historical dataset. Returns ErrIndexUnavailable before the first
// successful build.
//
// The result order is fixed so callers can render it without sorting.
func (e *Engine) SatisfactionFactors() ([]FactorCorrelation, error) {
	snap := e.index.current()
	if snap == nil {
		return nil, ErrIndexUnavailable
	}
	return satisfactionFactors(snap.students), nil
}

// factorColumns maps dataset column names to their value accessors, in
// presentation order.
var factorColumns = []struct {
	name  string
	value func(*HistoricalStudent) float64
}{
	{"gpa", func(s *HistoricalStudent) float64 { return s.GPA }},
	{"tuition_budget", func(s *HistoricalStudent) float64 { return s.TuitionBudget }},
	{"living_expense_budget", func(s *HistoricalStudent) float64 { return s.LivingExpenseBudget }},
	{"ranking_importance", func(s *HistoricalStudent) float64 { return s.RankingImportance }},
	{"cost_sensitivity", func(s *HistoricalStudent) float64 { return s.CostSensitivity }},
}

func satisfactionFactors(students []HistoricalStudent) []FactorCorrelation {
	satisfaction := make([]float64, len(students))
	for i := range students {
		satisfaction[i] = float64(students[i].SatisfactionScore)
	}

	out := make([]FactorCorrelation, 0, len(factorColumns))
	for _, col := range factorColumns {
		values := make([]float64, len(students))
		for i := range students {
			values[i] = col.value(&students[i])
		}
		out = append(out, FactorCorrelation{
			Factor:      col.name,
			Correlation: pearson(values, satisfaction),
			Samples:     len(students),
		})
	}
	return out
}

// pearson computes the Pearson correlation coefficient of two equal-length
// series. Degenerate input (fewer than two points, or zero variance on
// either side) yields 0.
func pearson(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += x[i]
		sumY += y[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - meanX
		dy := y[i] - meanY
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}
	if varX == 0 || varY == 0 {
		return 0
	}
	return cov / math.Sqrt(varX*varY)
}
