/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Record is a saved child measurement together with its scores.
type Record struct {
	ID        uuid.UUID `json:"id"`
	Date      time.Time `json:"date"`
	AgeMonths float64   `json:"age_months"`
	Sex       Sex       `json:"sex"`
	Height    float64   `json:"height"`
	Weight    float64   `json:"weight"`
	HAZ       float64   `json:"haz"`
	WAZ       float64   `json:"waz"`
	WHZ       float64   `json:"whz"`
	Status    string    `json:"status"`
}

// NewRecord builds an unsaved record from a measurement and its scores.
func NewRecord(in MeasurementInput, scores ScoreResult) Record {
	return Record{
		AgeMonths: in.AgeMonths,
		Sex:       in.Sex,
		Height:    in.Height,
		Weight:    in.Weight,
		HAZ:       scores.HAZ,
		WAZ:       scores.WAZ,
		WHZ:       scores.WHZ,
		Status:    scores.Status,
	}
}

// Stunting re-derives the classification from the stored HAZ.
func (r Record) Stunting() Stunting {
	return StuntingStatus(r.HAZ)
}

// HistoryStore persists growth records.
type HistoryStore interface {
	Save(ctx context.Context, rec Record) (Record, error)
	List(ctx context.Context) ([]Record, error)
	Get(ctx context.Context, id uuid.UUID) (*Record, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) error
}

// History is an immutable snapshot of records ordered by date. Every
// mutation returns a new snapshot and leaves the receiver untouched.
type History struct {
	records []Record
}

// Records returns a copy of the records in date order.
func (h History) Records() []Record {
	return slices.Clone(h.records)
}

// Len returns the number of records.
func (h History) Len() int {
	return len(h.records)
}

// Find returns the record with the given id.
func (h History) Find(id uuid.UUID) (Record, bool) {
	i := slices.IndexFunc(h.records, func(r Record) bool { return r.ID == id })
	if i < 0 {
		return Record{}, false
	}

	return h.records[i], true
}

// Save assigns a fresh id and date to rec and appends it.
func (h History) Save(rec Record, now time.Time) (History, Record) {
	rec.ID = uuid.New()
	rec.Date = now

	records := make([]Record, 0, len(h.records)+1)
	records = append(records, h.records...)
	records = append(records, rec)
	slices.SortStableFunc(records, func(a, b Record) int {
		return a.Date.Compare(b.Date)
	})

	return History{records: records}, rec
}

// Delete returns a snapshot without the record with the given id.
func (h History) Delete(id uuid.UUID) History {
	records := make([]Record, 0, len(h.records))
	for _, r := range h.records {
		if r.ID != id {
			records = append(records, r)
		}
	}

	return History{records: records}
}

// Clear returns an empty snapshot.
func (h History) Clear() History {
	return History{}
}

// MemoryStore keeps history in process memory. It is used when no
// database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	history History
	now     func() time.Time
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// Snapshot returns the current history.
func (s *MemoryStore) Snapshot() History {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.history
}

// Save stores rec with a new ID and the current date.
func (s *MemoryStore) Save(_ context.Context, rec Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var saved Record
	s.history, saved = s.history.Save(rec, s.now().UTC())

	return saved, nil
}

// List returns all records ordered by date.
func (s *MemoryStore) List(_ context.Context) ([]Record, error) {
	return s.Snapshot().Records(), nil
}

// Get returns the record with id or ErrRecordNotFound.
func (s *MemoryStore) Get(_ context.Context, id uuid.UUID) (*Record, error) {
	rec, ok := s.Snapshot().Find(id)
	if !ok {
		return nil, ErrRecordNotFound
	}

	return &rec, nil
}

// Delete removes the record with id or returns ErrRecordNotFound.
func (s *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.history.Find(id); !ok {
		return ErrRecordNotFound
	}

	s.history = s.history.Delete(id)

	return nil
}

// Clear removes every record.
func (s *MemoryStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = s.history.Clear()

	return nil
}
