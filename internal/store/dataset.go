// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ashanr/student-decision-support/internal/recommend"
)

// FetchAllHistoricalStudents returns the complete historical dataset for
// index building. Implements recommend.DatasetProvider.
func (db *DB) FetchAllHistoricalStudents(ctx context.Context) ([]recommend.HistoricalStudent, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT id, field_of_study, gpa, tuition_budget, living_expense_budget,
		       ranking_importance, cost_sensitivity, final_destination_country,
		       final_university_tier, decision_satisfaction_score
		FROM historical_students
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query historical students: %w", err)
	}
	defer rows.Close()

	var students []recommend.HistoricalStudent
	for rows.Next() {
		var s recommend.HistoricalStudent
		if err := rows.Scan(
			&s.ID, &s.FieldOfStudy, &s.GPA, &s.TuitionBudget, &s.LivingExpenseBudget,
			&s.RankingImportance, &s.CostSensitivity, &s.DestinationCountry,
			&s.UniversityTier, &s.SatisfactionScore,
		); err != nil {
			return nil, fmt.Errorf("scan historical student: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate historical students: %w", err)
	}
	return students, nil
}

// InsertHistoricalStudents loads a batch of historical outcomes in one
// transaction. Used by seeding and data import.
func (db *DB) InsertHistoricalStudents(ctx context.Context, students []recommend.HistoricalStudent) error {
	return db.Transaction(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO historical_students (
				field_of_study, gpa, tuition_budget, living_expense_budget,
				ranking_importance, cost_sensitivity, final_destination_country,
				final_university_tier, decision_satisfaction_score
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("prepare insert: %w", err)
		}
		defer stmt.Close()

		for i := range students {
			s := &students[i]
			if _, err := stmt.ExecContext(ctx,
				s.FieldOfStudy, s.GPA, s.TuitionBudget, s.LivingExpenseBudget,
				s.RankingImportance, s.CostSensitivity, s.DestinationCountry,
				s.UniversityTier, s.SatisfactionScore,
			); err != nil {
				return fmt.Errorf("insert historical student: %w", err)
			}
		}
		return nil
	})
}

// CountHistoricalStudents returns the dataset size.
func (db *DB) CountHistoricalStudents(ctx context.Context) (int, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM historical_students`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count historical students: %w", err)
	}
	return count, nil
}
