// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

// Package recommend implements the program matching and enhancement engine.
//
// # Architecture
//
// The engine combines two independent scoring signals into one ranked,
// explainable recommendation list:
//
//   - Base scoring: a weighted multi-criterion match of each candidate
//     program against the student's stated preferences (academic fit,
//     tuition, living cost, ranking, geography/language).
//   - Historical enhancement: a nearest-neighbor search over past student
//     outcomes that boosts candidates resembling what similar, satisfied
//     students ultimately chose.
//
// # Design Principles
//
//   - Deterministic: identical inputs produce byte-identical ranked output.
//     All orderings carry a full tie-break (ranking standing, then
//     university name).
//   - Immutable after build: the similarity index and its normalization
//     statistics never change in place. Refresh produces a new index that
//     is swapped in atomically; in-flight queries finish against the old one.
//   - Boost never rescues: the historical boost multiplies the base score,
//     so a candidate with zero preference fit stays at zero regardless of
//     how popular it was among similar students.
//   - Degraded, not failed: if the index is unavailable the engine returns
//     unboosted base scores instead of failing the request.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil { ... }
//	engine.SetProviders(catalog, dataset)
//	if err := engine.BuildIndex(ctx); err != nil { ... }
//
//	recs, err := engine.Recommend(ctx, profile, 10)
//
// # Thread Safety
//
// The engine is safe for concurrent use. Scoring paths are pure functions
// over immutable snapshots; BuildIndex is the only mutating operation and
// publishes its result with an atomic pointer swap.
package recommend
