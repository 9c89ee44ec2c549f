// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RecommendationEvent is one served recommendation request, recorded for
// offline analysis of what students ask for.
type RecommendationEvent struct {
	ID           string        `json:"id"`
	CreatedAt    time.Time     `json:"created_at"`
	FieldOfStudy string        `json:"field_of_study"`
	DegreeLevel  string        `json:"degree_level"`
	RequestedK   int           `json:"requested_k"`
	Returned     int           `json:"returned"`
	Boosted      bool          `json:"boosted"`
	Duration     time.Duration `json:"duration"`
}

// RecordRecommendationEvent persists one request event. The event ID is
// assigned here when empty.
func (db *DB) RecordRecommendationEvent(ctx context.Context, ev *RecommendationEvent) error {
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.CreatedAt.IsZero() {
		ev.CreatedAt = time.Now().UTC()
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO recommendation_events (
			id, created_at, field_of_study, degree_level,
			requested_k, returned, boosted, duration_ms
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.CreatedAt.Format(time.RFC3339), ev.FieldOfStudy, ev.DegreeLevel,
		ev.RequestedK, ev.Returned, ev.Boosted, ev.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert recommendation event: %w", err)
	}
	return nil
}

// RecentRecommendationEvents returns the most recent events, newest first.
func (db *DB) RecentRecommendationEvents(ctx context.Context, limit int) ([]RecommendationEvent, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := db.QueryContext(ctx, `
		SELECT id, created_at, field_of_study, degree_level,
		       requested_k, returned, boosted, duration_ms
		FROM recommendation_events
		ORDER BY created_at DESC, id
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recommendation events: %w", err)
	}
	defer rows.Close()

	var events []RecommendationEvent
	for rows.Next() {
		var ev RecommendationEvent
		var createdAt string
		var durationMs int64
		if err := rows.Scan(
			&ev.ID, &createdAt, &ev.FieldOfStudy, &ev.DegreeLevel,
			&ev.RequestedK, &ev.Returned, &ev.Boosted, &durationMs,
		); err != nil {
			return nil, fmt.Errorf("scan recommendation event: %w", err)
		}
		if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
			ev.CreatedAt = t
		}
		ev.Duration = time.Duration(durationMs) * time.Millisecond
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate recommendation events: %w", err)
	}
	return events, nil
}
