// Student Decision Support - University Program Recommendation Engine
// Copyright 2026 Ashan R. (ashanr)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ashanr/student-decision-support

package store

import (
	"context"
	"fmt"

	"github.com/ashanr/student-decision-support/internal/recommend"
)

// Country is a reference row for the countries endpoint.
type Country struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Region string `json:"region,omitempty"`
}

// University is a reference row for the universities endpoint.
type University struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	City          string `json:"city"`
	Country       string `json:"country"`
	RankingGlobal int    `json:"ranking_global"`
}

// Field is a reference row for the fields-of-study endpoint.
type Field struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// FetchCandidates returns up to limit candidate programs at the given
// degree level, joined with their university, city, and country context.
// An empty level returns all levels. Implements recommend.CatalogProvider.
func (db *DB) FetchCandidates(ctx context.Context, level recommend.DegreeLevel, limit int) ([]recommend.ProgramCandidate, error) {
	query := `
		SELECT p.id, p.name, u.name, co.name, ci.name,
		       p.tuition_per_year, ci.monthly_living_cost, p.language,
		       p.duration_years, f.name, p.level, u.ranking_global,
		       p.application_fee
		FROM programs p
		JOIN universities u ON u.id = p.university_id
		JOIN cities ci ON ci.id = u.city_id
		JOIN countries co ON co.id = ci.country_id
		JOIN fields_of_study f ON f.id = p.field_id`
	args := make([]interface{}, 0, 2)
	if level != "" {
		query += ` WHERE p.level = ?`
		args = append(args, string(level))
	}
	query += ` ORDER BY p.id`
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	var candidates []recommend.ProgramCandidate
	for rows.Next() {
		var c recommend.ProgramCandidate
		var levelStr string
		if err := rows.Scan(
			&c.ID, &c.Program, &c.University, &c.Country, &c.City,
			&c.TuitionPerYear, &c.LivingCost, &c.Language,
			&c.DurationYears, &c.Field, &levelStr, &c.RankingGlobal,
			&c.ApplicationFee,
		); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		c.Level = recommend.DegreeLevel(levelStr)
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate candidates: %w", err)
	}
	return candidates, nil
}

// ListCountries returns all countries ordered by name.
func (db *DB) ListCountries(ctx context.Context) ([]Country, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name, region FROM countries ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query countries: %w", err)
	}
	defer rows.Close()

	var countries []Country
	for rows.Next() {
		var c Country
		if err := rows.Scan(&c.ID, &c.Name, &c.Region); err != nil {
			return nil, fmt.Errorf("scan country: %w", err)
		}
		countries = append(countries, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate countries: %w", err)
	}
	return countries, nil
}

// ListUniversities returns all universities with their location, ordered
// by global ranking with unranked entries last.
func (db *DB) ListUniversities(ctx context.Context) ([]University, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT u.id, u.name, ci.name, co.name, u.ranking_global
		FROM universities u
		JOIN cities ci ON ci.id = u.city_id
		JOIN countries co ON co.id = ci.country_id
		ORDER BY CASE WHEN u.ranking_global > 0 THEN u.ranking_global ELSE 1000000 END, u.name`)
	if err != nil {
		return nil, fmt.Errorf("query universities: %w", err)
	}
	defer rows.Close()

	var universities []University
	for rows.Next() {
		var u University
		if err := rows.Scan(&u.ID, &u.Name, &u.City, &u.Country, &u.RankingGlobal); err != nil {
			return nil, fmt.Errorf("scan university: %w", err)
		}
		universities = append(universities, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate universities: %w", err)
	}
	return universities, nil
}

// ListFields returns all fields of study ordered by name.
func (db *DB) ListFields(ctx context.Context) ([]Field, error) {
	rows, err := db.QueryContext(ctx, `SELECT id, name FROM fields_of_study ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query fields: %w", err)
	}
	defer rows.Close()

	var fields []Field
	for rows.Next() {
		var f Field
		if err := rows.Scan(&f.ID, &f.Name); err != nil {
			return nil, fmt.Errorf("scan field: %w", err)
		}
		fields = append(fields, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fields: %w", err)
	}
	return fields, nil
}
