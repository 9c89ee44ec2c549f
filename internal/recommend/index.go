// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package recommend

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// indexSnapshot is an immutable, fully built nearest-neighbor index over
// one historical dataset. Queries never mutate a snapshot, so readers
// need no locking once they hold a reference.
type indexSnapshot struct {
	vectorizer *Vectorizer
	students   []HistoricalStudent
	vectors    []FeatureVector
	builtAt    time.Time
}

// SimilarStudentIndex answers k-nearest-neighbor queries over historical
// student outcomes in z-scored feature space. Build replaces the entire
// snapshot atomically; in-flight queries keep reading the snapshot they
// started with.
type SimilarStudentIndex struct {
	mu       sync.RWMutex
	snapshot *indexSnapshot
	logger   zerolog.Logger
}

// NewSimilarStudentIndex creates an empty index. Queries fail with
// ErrIndexUnavailable until the first successful Build.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewSimilarStudentIndex(logger zerolog.Logger) *SimilarStudentIndex {
	return &SimilarStudentIndex{
		logger: logger.With().Str("component", "student_index").Logger(),
	}
}

// Build vectorizes the dataset and swaps it in as the active snapshot.
// Students whose features cannot be vectorized are skipped with a log
// entry rather than failing the whole build. An empty usable dataset
// builds a valid zero-student snapshot: queries against it return empty
// results, not errors.
func (idx *SimilarStudentIndex) Build(students []HistoricalStudent) error {
	start := time.Now()

	vectorizer := NewVectorizer(students)
	kept := make([]HistoricalStudent, 0, len(students))
	vectors := make([]FeatureVector, 0, len(students))
	skipped := 0

	for i := range students {
		vec, err := vectorizer.VectorizeStudent(&students[i])
		if err != nil {
			skipped++
			idx.logger.Warn().
				Int("student_id", students[i].ID).
				Err(err).
				Msg("Skipping student with unusable features")
			continue
		}
		kept = append(kept, students[i])
		vectors = append(vectors, vec)
	}

	snap := &indexSnapshot{
		vectorizer: vectorizer,
		students:   kept,
		vectors:    vectors,
		builtAt:    time.Now(),
	}

	idx.mu.Lock()
	idx.snapshot = snap
	idx.mu.Unlock()

	idx.logger.Info().
		Int("students", len(kept)).
		Int("skipped", skipped).
		Dur("duration", time.Since(start)).
		Msg("Student index built")

	return nil
}

// Nearest returns up to k historical students closest to the profile in
// feature space, ordered by ascending Euclidean distance with student id
// as the tie-break. Returns ErrIndexUnavailable before the first build.
func (idx *SimilarStudentIndex) Nearest(profile *PreferenceProfile, k int) ([]Neighbor, error) {
	snap := idx.current()
	if snap == nil {
		return nil, ErrIndexUnavailable
	}
	if k <= 0 {
		return []Neighbor{}, nil
	}

	query, err := snap.vectorizer.VectorizeProfile(profile)
	if err != nil {
		return nil, fmt.Errorf("vectorize profile: %w", err)
	}

	neighbors := make([]Neighbor, 0, len(snap.students))
	for i := range snap.students {
		neighbors = append(neighbors, Neighbor{
			Student:  snap.students[i],
			Distance: euclideanDistance(query, snap.vectors[i]),
		})
	}

	sort.SliceStable(neighbors, func(i, j int) bool {
		if neighbors[i].Distance != neighbors[j].Distance {
			return neighbors[i].Distance < neighbors[j].Distance
		}
		return neighbors[i].Student.ID < neighbors[j].Student.ID
	})

	if k < len(neighbors) {
		neighbors = neighbors[:k]
	}
	return neighbors, nil
}

// Ready reports whether a snapshot is available for queries.
func (idx *SimilarStudentIndex) Ready() bool {
	return idx.current() != nil
}

// Size returns the number of students in the active snapshot, or zero.
func (idx *SimilarStudentIndex) Size() int {
	snap := idx.current()
	if snap == nil {
		return 0
	}
	return len(snap.students)
}

// BuiltAt returns when the active snapshot was built, or the zero time.
func (idx *SimilarStudentIndex) BuiltAt() time.Time {
	snap := idx.current()
	if snap == nil {
		return time.Time{}
	}
	return snap.builtAt
}

func (idx *SimilarStudentIndex) current() *indexSnapshot {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.snapshot
}
