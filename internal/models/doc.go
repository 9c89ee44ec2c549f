// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

// Package models defines the shared HTTP data structures: the API response
// envelope, error payloads and the validated request bodies accepted by the
// recommendation endpoints.
//
// The engine-facing domain types (PreferenceProfile, ProgramCandidate,
// ScoredCandidate and friends) live in internal/recommend; this package only
// covers the transport layer around them.
package models
