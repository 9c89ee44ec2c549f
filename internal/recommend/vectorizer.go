// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import (
	"math"
	"strings"
)

// NumFeatures is the fixed length of every feature vector.
const NumFeatures = 6

// Feature vector dimensions, in fixed order.
const (
	dimField = iota
	dimDegree
	dimTuition
	dimLiving
	dimRankingImportance
	dimCostSensitivity
)

// dimensionNames labels dimensions for error reporting.
var dimensionNames = [NumFeatures]string{
	"field_of_study",
	"degree_level",
	"tuition_budget",
	"living_expense_budget",
	"ranking_importance",
	"cost_sensitivity",
}

// neutralDegreeOrdinal is the academic-level value assigned to historical
// records, which carry no intended degree level. The dimension still
// discriminates between profiles of different levels through the shared
// normalization statistics.
const neutralDegreeOrdinal = float64(2)

// FeatureVector is a fixed-length numeric encoding of a profile or a
// historical record, comparable under Euclidean distance.
type FeatureVector []float64

// disciplineTaxonomy assigns a stable code to each recognized discipline.
// Codes are ordinal only in the sense of being fixed; the z-score
// normalization keeps their magnitude comparable to the other dimensions.
var disciplineTaxonomy = map[string]float64{
	"medicine":          1,
	"chemistry":         2,
	"psychology":        3,
	"computer science":  4,
	"business":          5,
	"engineering":       6,
	"physics":           7,
	"literature":        8,
	"economics":         9,
	"biology":           10,
	"mathematics":       11,
	"law":               12,
	"architecture":      13,
	"agriculture":       14,
	"political science": 15,
	"sociology":         16,
	"anthropology":      17,
	"history":           18,
	"art":               19,
	"education":         20,
}

// disciplineCode maps a free-text field label onto the taxonomy. Exact
// match wins; otherwise the first taxonomy entry contained in (or
// containing) the label, scanned in code order for determinism. Unknown
// labels map to 0.
func disciplineCode(field string) float64 {
	f := strings.ToLower(strings.TrimSpace(field))
	if f == "" {
		return 0
	}
	if code, ok := disciplineTaxonomy[f]; ok {
		return code
	}

	best := 0.0
	for name, code := range disciplineTaxonomy {
		if strings.Contains(f, name) || strings.Contains(name, f) {
			if best == 0 || code < best {
				best = code
			}
		}
	}
	return best
}

// featureStats holds the per-dimension normalization reference, computed
// once from the historical dataset at index build time and never
// recomputed per call.
type featureStats struct {
	mean [NumFeatures]float64
	std  [NumFeatures]float64
}

// Vectorizer turns profiles and historical records into normalized feature
// vectors. It is immutable after construction: the same input always
// yields the same vector.
type Vectorizer struct {
	stats featureStats
}

// NewVectorizer computes normalization statistics from the historical
// dataset and returns a vectorizer frozen on them. An empty dataset yields
// a vectorizer whose dimensions all normalize to zero.
func NewVectorizer(students []HistoricalStudent) *Vectorizer {
	var sum, sumSq [NumFeatures]float64
	var count [NumFeatures]int

	for i := range students {
		raw, err := rawStudentFeatures(&students[i])
		if err != nil {
			continue
		}
		for d := 0; d < NumFeatures; d++ {
			if math.IsNaN(raw[d]) {
				continue
			}
			sum[d] += raw[d]
			sumSq[d] += raw[d] * raw[d]
			count[d]++
		}
	}

	var stats featureStats
	for d := 0; d < NumFeatures; d++ {
		if count[d] == 0 {
			continue
		}
		n := float64(count[d])
		stats.mean[d] = sum[d] / n
		variance := sumSq[d]/n - stats.mean[d]*stats.mean[d]
		if variance > 0 {
			stats.std[d] = math.Sqrt(variance)
		}
	}

	return &Vectorizer{stats: stats}
}

// VectorizeStudent encodes a historical record. Records with unusable
// numeric fields fail with a FeatureError and are expected to be skipped
// by the caller, not to abort the batch.
func (v *Vectorizer) VectorizeStudent(s *HistoricalStudent) (FeatureVector, error) {
	raw, err := rawStudentFeatures(s)
	if err != nil {
		return nil, err
	}
	return v.normalize(raw), nil
}

// VectorizeProfile encodes a preference profile. Missing optional fields
// map to the dataset mean; absent required fields fail with a FeatureError.
func (v *Vectorizer) VectorizeProfile(p *PreferenceProfile) (FeatureVector, error) {
	var raw [NumFeatures]float64

	code := disciplineCode(p.FieldOfStudy)
	if strings.TrimSpace(p.FieldOfStudy) == "" {
		return nil, &FeatureError{Dimension: dimensionNames[dimField], Reason: "source field is empty"}
	}
	raw[dimField] = code

	ord := p.DegreeLevel.Ordinal()
	if ord == 0 {
		return nil, &FeatureError{Dimension: dimensionNames[dimDegree], Reason: "unrecognized degree level"}
	}
	raw[dimDegree] = float64(ord)

	raw[dimTuition] = optionalOrNaN(p.MaxTuition)
	raw[dimLiving] = optionalOrNaN(p.MaxLivingExpenses)
	raw[dimRankingImportance] = optionalOrNaN(p.RankingImportance)
	raw[dimCostSensitivity] = optionalOrNaN(p.CostSensitivity)

	return v.normalize(raw), nil
}

// Stats returns the per-dimension reference means, primarily for tests and
// diagnostics.
func (v *Vectorizer) Stats() (mean, std []float64) {
	return v.stats.mean[:], v.stats.std[:]
}

// normalize z-scores raw features against the reference statistics.
// NaN marks a missing optional value and maps to the dataset mean, which
// z-scores to zero. A zero-variance dimension also normalizes to zero.
func (v *Vectorizer) normalize(raw [NumFeatures]float64) FeatureVector {
	vec := make(FeatureVector, NumFeatures)
	for d := 0; d < NumFeatures; d++ {
		if math.IsNaN(raw[d]) || v.stats.std[d] == 0 {
			continue
		}
		vec[d] = (raw[d] - v.stats.mean[d]) / v.stats.std[d]
	}
	return vec
}

// rawStudentFeatures extracts unnormalized features from a historical
// record. Zero-valued weights mark missing data (NaN); negative numerics
// are unusable and fail.
func rawStudentFeatures(s *HistoricalStudent) ([NumFeatures]float64, error) {
	var raw [NumFeatures]float64

	if s.TuitionBudget < 0 {
		return raw, &FeatureError{Dimension: dimensionNames[dimTuition], Reason: "negative value"}
	}
	if s.LivingExpenseBudget < 0 {
		return raw, &FeatureError{Dimension: dimensionNames[dimLiving], Reason: "negative value"}
	}
	if s.RankingImportance < 0 {
		return raw, &FeatureError{Dimension: dimensionNames[dimRankingImportance], Reason: "negative value"}
	}
	if s.CostSensitivity < 0 {
		return raw, &FeatureError{Dimension: dimensionNames[dimCostSensitivity], Reason: "negative value"}
	}

	raw[dimField] = disciplineCode(s.FieldOfStudy)
	raw[dimDegree] = neutralDegreeOrdinal
	raw[dimTuition] = optionalOrNaN(s.TuitionBudget)
	raw[dimLiving] = optionalOrNaN(s.LivingExpenseBudget)
	raw[dimRankingImportance] = optionalOrNaN(s.RankingImportance)
	raw[dimCostSensitivity] = optionalOrNaN(s.CostSensitivity)

	return raw, nil
}

// optionalOrNaN marks zero-valued optional numerics as missing.
func optionalOrNaN(v float64) float64 {
	if v == 0 {
		return math.NaN()
	}
	return v
}

// euclideanDistance computes the L2 distance between two vectors of equal
// length.
func euclideanDistance(a, b FeatureVector) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}
