/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
)

// GrowthRecordStore persists growth history in Postgres.
type GrowthRecordStore struct{}

var _ growth.HistoryStore = GrowthRecordStore{}

const growthRecordColumns = `id, measured_at, age_months, sex, height_cm, weight_kg, haz, waz, whz, status`

func scanGrowthRecord(row pgx.Row) (growth.Record, error) {
	var rec growth.Record
	err := row.Scan(
		&rec.ID, &rec.Date, &rec.AgeMonths, &rec.Sex,
		&rec.Height, &rec.Weight,
		&rec.HAZ, &rec.WAZ, &rec.WHZ, &rec.Status,
	)

	return rec, err
}

// Save inserts a record with a fresh id and the current timestamp.
func (GrowthRecordStore) Save(ctx context.Context, rec growth.Record) (growth.Record, error) {
	if pool == nil {
		return growth.Record{}, ErrDatabaseConnectionNotInitialized
	}

	query := `
		INSERT INTO growth_records (id, age_months, sex, height_cm, weight_kg, haz, waz, whz, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + growthRecordColumns

	saved, err := scanGrowthRecord(pool.QueryRow(ctx, query,
		uuid.New(), rec.AgeMonths, string(rec.Sex), rec.Height, rec.Weight,
		rec.HAZ, rec.WAZ, rec.WHZ, rec.Status,
	))
	if err != nil {
		return growth.Record{}, fmt.Errorf("failed to save growth record: %w", err)
	}

	return saved, nil
}

// List returns all records ordered by measurement date.
func (GrowthRecordStore) List(ctx context.Context) ([]growth.Record, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `SELECT ` + growthRecordColumns + ` FROM growth_records ORDER BY measured_at ASC, created_at ASC`

	rows, err := pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list growth records: %w", err)
	}
	defer rows.Close()

	records := []growth.Record{}
	for rows.Next() {
		rec, err := scanGrowthRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan growth record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating growth records: %w", err)
	}

	return records, nil
}

// Get returns a single record.
func (GrowthRecordStore) Get(ctx context.Context, id uuid.UUID) (*growth.Record, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `SELECT ` + growthRecordColumns + ` FROM growth_records WHERE id = $1`

	rec, err := scanGrowthRecord(pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, growth.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get growth record: %w", err)
	}

	return &rec, nil
}

// Delete removes a single record.
func (GrowthRecordStore) Delete(ctx context.Context, id uuid.UUID) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	tag, err := pool.Exec(ctx, `DELETE FROM growth_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete growth record: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return growth.ErrRecordNotFound
	}

	return nil
}

// Clear removes every record.
func (GrowthRecordStore) Clear(ctx context.Context) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	tag, err := pool.Exec(ctx, `DELETE FROM growth_records`)
	if err != nil {
		return fmt.Errorf("failed to clear growth records: %w", err)
	}

	logger.Info("Cleared growth history", "deleted", tag.RowsAffected())

	return nil
}
