/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/pregnancy"
)

// PregnancyAssessment is a stored pregnancy risk assessment with its inputs.
type PregnancyAssessment struct {
	ID        uuid.UUID
	Input     pregnancy.Input
	Result    pregnancy.Assessment
	CreatedAt time.Time
}

const pregnancyAssessmentColumns = `id, mother_age, pregnancy_weeks, mother_height, pre_pregnancy_weight,
	current_weight, iron_folic_intake, anc_visits, risk_level, score, factors, recommendations, created_at`

func scanPregnancyAssessment(row pgx.Row) (PregnancyAssessment, error) {
	var a PregnancyAssessment
	err := row.Scan(
		&a.ID,
		&a.Input.MotherAge, &a.Input.PregnancyWeeks, &a.Input.MotherHeight,
		&a.Input.PrePregnancyWeight, &a.Input.CurrentWeight,
		&a.Input.IronFolicIntake, &a.Input.ANCVisits,
		&a.Result.Level, &a.Result.Score, &a.Result.Factors, &a.Result.Recommendations,
		&a.CreatedAt,
	)

	return a, err
}

// SavePregnancyAssessment stores an assessment and returns its id.
func SavePregnancyAssessment(ctx context.Context, in pregnancy.Input, result pregnancy.Assessment) (uuid.UUID, error) {
	if pool == nil {
		return uuid.Nil, ErrDatabaseConnectionNotInitialized
	}

	id := uuid.New()
	query := `
		INSERT INTO pregnancy_assessments (
			id, mother_age, pregnancy_weeks, mother_height, pre_pregnancy_weight,
			current_weight, iron_folic_intake, anc_visits, risk_level, score, factors, recommendations
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := pool.Exec(ctx, query,
		id, in.MotherAge, in.PregnancyWeeks, in.MotherHeight, in.PrePregnancyWeight,
		in.CurrentWeight, in.IronFolicIntake, in.ANCVisits,
		string(result.Level), result.Score, result.Factors, result.Recommendations,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save pregnancy assessment: %w", err)
	}

	return id, nil
}

// ListPregnancyAssessments returns stored assessments, newest first.
func ListPregnancyAssessments(ctx context.Context, limit int) ([]PregnancyAssessment, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `SELECT ` + pregnancyAssessmentColumns + `
		FROM pregnancy_assessments
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list pregnancy assessments: %w", err)
	}
	defer rows.Close()

	var assessments []PregnancyAssessment
	for rows.Next() {
		a, err := scanPregnancyAssessment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pregnancy assessment: %w", err)
		}
		assessments = append(assessments, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating pregnancy assessments: %w", err)
	}

	return assessments, nil
}

// GetPregnancyAssessment returns one stored assessment.
func GetPregnancyAssessment(ctx context.Context, id uuid.UUID) (*PregnancyAssessment, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `SELECT ` + pregnancyAssessmentColumns + ` FROM pregnancy_assessments WHERE id = $1`

	a, err := scanPregnancyAssessment(pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPregnancyAssessmentNotFound
		}
		return nil, fmt.Errorf("failed to get pregnancy assessment: %w", err)
	}

	return &a, nil
}
