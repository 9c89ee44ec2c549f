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

type seedProgram struct {
	name       string
	university string
	city       string
	country    string
	region     string
	ranking    int
	livingCost float64
	field      string
	level      recommend.DegreeLevel
	tuition    float64
	language   string
	duration   float64
	fee        float64
}

var demoPrograms = []seedProgram{
	{"MSc Computer Science", "Technical University of Munich", "Munich", "Germany", "europe", 37, 1250, "Computer Science", recommend.DegreeMaster, 300, "English", 2, 75},
	{"MSc Informatics", "University of Amsterdam", "Amsterdam", "Netherlands", "europe", 53, 1600, "Computer Science", recommend.DegreeMaster, 16500, "English", 2, 100},
	{"MSc Data Science", "ETH Zurich", "Zurich", "Switzerland", "europe", 7, 2300, "Data Science", recommend.DegreeMaster, 1500, "English", 2, 150},
	{"MSc Informatik", "University of Vienna", "Vienna", "Austria", "europe", 130, 1100, "Computer Science", recommend.DegreeMaster, 1500, "German", 2, 0},
	{"Master of Computer Science", "University of Toronto", "Toronto", "Canada", "north_america", 21, 1800, "Computer Science", recommend.DegreeMaster, 42000, "English", 2, 125},
	{"MS Computer Science", "Georgia Institute of Technology", "Atlanta", "USA", "north_america", 88, 1500, "Computer Science", recommend.DegreeMaster, 30000, "English", 2, 85},
	{"MSc Artificial Intelligence", "University of Edinburgh", "Edinburgh", "UK", "europe", 27, 1400, "Artificial Intelligence", recommend.DegreeMaster, 38000, "English", 1, 90},
	{"MBA", "INSEAD", "Fontainebleau", "France", "europe", 2, 1900, "Business Administration", recommend.DegreeMaster, 92000, "English", 1, 250},
	{"BSc Computer Science", "National University of Singapore", "Singapore", "Singapore", "asia", 8, 1700, "Computer Science", recommend.DegreeBachelor, 18000, "English", 4, 20},
	{"BSc Mechanical Engineering", "RWTH Aachen", "Aachen", "Germany", "europe", 99, 1000, "Mechanical Engineering", recommend.DegreeBachelor, 600, "German", 3, 0},
	{"PhD Computer Science", "KTH Royal Institute of Technology", "Stockholm", "Sweden", "europe", 73, 1500, "Computer Science", recommend.DegreePhD, 0, "English", 4, 0},
	{"MSc Business Analytics", "University of Melbourne", "Melbourne", "Australia", "oceania", 13, 1650, "Business Administration", recommend.DegreeMaster, 35000, "English", 2, 70},
}

var demoStudents = []recommend.HistoricalStudent{
	{FieldOfStudy: "Computer Science", GPA: 3.8, TuitionBudget: 15000, LivingExpenseBudget: 1300, RankingImportance: 0.8, CostSensitivity: 0.5, DestinationCountry: "Germany", UniversityTier: 1, SatisfactionScore: 9},
	{FieldOfStudy: "Computer Science", GPA: 3.4, TuitionBudget: 8000, LivingExpenseBudget: 1100, RankingImportance: 0.5, CostSensitivity: 0.8, DestinationCountry: "Germany", UniversityTier: 2, SatisfactionScore: 8},
	{FieldOfStudy: "Computer Science", GPA: 3.9, TuitionBudget: 45000, LivingExpenseBudget: 1900, RankingImportance: 0.9, CostSensitivity: 0.2, DestinationCountry: "USA", UniversityTier: 1, SatisfactionScore: 7},
	{FieldOfStudy: "Data Science", GPA: 3.6, TuitionBudget: 20000, LivingExpenseBudget: 1500, RankingImportance: 0.7, CostSensitivity: 0.4, DestinationCountry: "Netherlands", UniversityTier: 2, SatisfactionScore: 9},
	{FieldOfStudy: "Computer Science", GPA: 3.2, TuitionBudget: 12000, LivingExpenseBudget: 1000, RankingImportance: 0.4, CostSensitivity: 0.7, DestinationCountry: "Austria", UniversityTier: 3, SatisfactionScore: 8},
	{FieldOfStudy: "Business Administration", GPA: 3.5, TuitionBudget: 60000, LivingExpenseBudget: 2000, RankingImportance: 0.9, CostSensitivity: 0.3, DestinationCountry: "France", UniversityTier: 1, SatisfactionScore: 8},
	{FieldOfStudy: "Mechanical Engineering", GPA: 3.1, TuitionBudget: 5000, LivingExpenseBudget: 900, RankingImportance: 0.3, CostSensitivity: 0.9, DestinationCountry: "Germany", UniversityTier: 2, SatisfactionScore: 7},
	{FieldOfStudy: "Artificial Intelligence", GPA: 3.7, TuitionBudget: 35000, LivingExpenseBudget: 1400, RankingImportance: 0.8, CostSensitivity: 0.4, DestinationCountry: "UK", UniversityTier: 1, SatisfactionScore: 9},
	{FieldOfStudy: "Computer Science", GPA: 3.5, TuitionBudget: 25000, LivingExpenseBudget: 1600, RankingImportance: 0.6, CostSensitivity: 0.5, DestinationCountry: "Canada", UniversityTier: 1, SatisfactionScore: 8},
	{FieldOfStudy: "Computer Science", GPA: 3.3, TuitionBudget: 18000, LivingExpenseBudget: 1700, RankingImportance: 0.7, CostSensitivity: 0.6, DestinationCountry: "Singapore", UniversityTier: 1, SatisfactionScore: 6},
	{FieldOfStudy: "Business Administration", GPA: 3.0, TuitionBudget: 30000, LivingExpenseBudget: 1600, RankingImportance: 0.5, CostSensitivity: 0.6, DestinationCountry: "Australia", UniversityTier: 1, SatisfactionScore: 7},
	{FieldOfStudy: "Data Science", GPA: 3.8, TuitionBudget: 10000, LivingExpenseBudget: 2200, RankingImportance: 0.9, CostSensitivity: 0.7, DestinationCountry: "Switzerland", UniversityTier: 1, SatisfactionScore: 10},
}

// SeedDemoData loads the bundled demo catalog and historical dataset into
// an empty database. A database that already has countries is left alone.
func (db *DB) SeedDemoData(ctx context.Context) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM countries`).Scan(&count); err != nil {
		return fmt.Errorf("check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	err := db.Transaction(ctx, func(tx *sql.Tx) error {
		for i := range demoPrograms {
			if err := insertSeedProgram(ctx, tx, &demoPrograms[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	if err := db.InsertHistoricalStudents(ctx, demoStudents); err != nil {
		return fmt.Errorf("seed historical students: %w", err)
	}

	db.logger.Info().
		Int("programs", len(demoPrograms)).
		Int("students", len(demoStudents)).
		Msg("Demo data seeded")
	return nil
}

func insertSeedProgram(ctx context.Context, tx *sql.Tx, p *seedProgram) error {
	countryID, err := upsertID(ctx, tx,
		`INSERT INTO countries (name, region) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET region=excluded.region RETURNING id`,
		p.country, p.region)
	if err != nil {
		return fmt.Errorf("country %s: %w", p.country, err)
	}

	cityID, err := upsertID(ctx, tx,
		`INSERT INTO cities (name, country_id, monthly_living_cost) VALUES (?, ?, ?)
		 ON CONFLICT(name, country_id) DO UPDATE SET monthly_living_cost=excluded.monthly_living_cost RETURNING id`,
		p.city, countryID, p.livingCost)
	if err != nil {
		return fmt.Errorf("city %s: %w", p.city, err)
	}

	universityID, err := upsertID(ctx, tx,
		`INSERT INTO universities (name, city_id, ranking_global) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET ranking_global=excluded.ranking_global RETURNING id`,
		p.university, cityID, p.ranking)
	if err != nil {
		return fmt.Errorf("university %s: %w", p.university, err)
	}

	fieldID, err := upsertID(ctx, tx,
		`INSERT INTO fields_of_study (name) VALUES (?) ON CONFLICT(name) DO UPDATE SET name=excluded.name RETURNING id`,
		p.field)
	if err != nil {
		return fmt.Errorf("field %s: %w", p.field, err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO programs (university_id, field_id, name, level, tuition_per_year,
		                      language, duration_years, application_fee)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		universityID, fieldID, p.name, string(p.level), p.tuition,
		p.language, p.duration, p.fee)
	if err != nil {
		return fmt.Errorf("program %s: %w", p.name, err)
	}
	return nil
}

func upsertID(ctx context.Context, tx *sql.Tx, query string, args ...interface{}) (int64, error) {
	var id int64
	if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}
