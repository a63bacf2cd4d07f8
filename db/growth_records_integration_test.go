// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
)

func mustSaveGrowthRecord(t *testing.T, store GrowthRecordStore, in growth.MeasurementInput) growth.Record {
	t.Helper()

	rec, err := store.Save(testContext(), growth.NewRecord(in, in.Score()))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	return rec
}

func TestGrowthRecordStoreLifecycle(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()
	store := GrowthRecordStore{}

	first := mustSaveGrowthRecord(t, store, growth.MeasurementInput{AgeMonths: 24, Sex: growth.Male, Height: 80, Weight: 10.5})
	second := mustSaveGrowthRecord(t, store, growth.MeasurementInput{AgeMonths: 30, Sex: growth.Male, Height: 86, Weight: 11.8})

	if first.ID == uuid.Nil || first.Date.IsZero() {
		t.Fatalf("expected generated id and date, got %#v", first)
	}

	if first.Status != growth.StatusStunted {
		t.Fatalf("expected stunted status to round-trip, got %q", first.Status)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(records) != 2 || records[0].ID != first.ID || records[1].ID != second.ID {
		t.Fatalf("expected records in save order, got %#v", records)
	}

	got, err := store.Get(ctx, second.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}

	if got.Sex != growth.Male || got.Height != 86 || got.HAZ != second.HAZ {
		t.Fatalf("unexpected record %#v", got)
	}

	if err := store.Delete(ctx, first.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if err := store.Delete(ctx, first.ID); !errors.Is(err, growth.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	if _, err := store.Get(ctx, first.ID); !errors.Is(err, growth.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	records, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if len(records) != 0 {
		t.Fatalf("expected empty history, got %d records", len(records))
	}
}
