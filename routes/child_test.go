// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/google/uuid"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
)

// failingStore fails every call.
type failingStore struct{}

func (failingStore) Save(context.Context, growth.Record) (growth.Record, error) {
	return growth.Record{}, errTestBoom
}

func (failingStore) List(context.Context) ([]growth.Record, error) {
	return nil, errTestBoom
}

func (failingStore) Get(context.Context, uuid.UUID) (*growth.Record, error) {
	return nil, errTestBoom
}

func (failingStore) Delete(context.Context, uuid.UUID) error {
	return errTestBoom
}

func (failingStore) Clear(context.Context) error {
	return errTestBoom
}

func childForm(save bool) url.Values {
	form := url.Values{
		"age_months": {"24"},
		"sex":        {"male"},
		"height":     {"87.1"},
		"weight":     {"12.2"},
	}
	if save {
		form.Set("save", "1")
	}

	return form
}

func TestHomeRendersRecordCount(t *testing.T) {
	t.Parallel()

	store := growth.NewMemoryStore()
	if _, err := store.Save(context.Background(), growth.Record{AgeMonths: 12, Sex: growth.Male}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	app := newHandlerTestApp(store)
	app.get("/")

	if app.tpl.name != "home" || app.tpl.status != http.StatusOK {
		t.Fatalf("unexpected render %q %d", app.tpl.name, app.tpl.status)
	}

	if got := app.data["RecordCount"]; got != 1 {
		t.Fatalf("expected RecordCount 1, got %#v", got)
	}

	if _, ok := app.data["LatestRecord"].(growth.Record); !ok {
		t.Fatalf("expected LatestRecord in data")
	}
}

func TestChildFormRenders(t *testing.T) {
	t.Parallel()

	app := newHandlerTestApp(nil)
	app.get("/child")

	if app.tpl.name != "child" || app.tpl.status != http.StatusOK {
		t.Fatalf("unexpected render %q %d", app.tpl.name, app.tpl.status)
	}
}

func TestAssessChildWithoutSave(t *testing.T) {
	t.Parallel()

	store := growth.NewMemoryStore()
	app := newHandlerTestApp(store)
	app.postForm("/child", childForm(false))

	if app.tpl.name != "child_result" || app.tpl.status != http.StatusOK {
		t.Fatalf("unexpected render %q %d", app.tpl.name, app.tpl.status)
	}

	result, ok := app.data["Result"].(ChildResult)
	if !ok {
		t.Fatalf("expected ChildResult, got %T", app.data["Result"])
	}

	if result.Scores.Status != growth.StatusNormal {
		t.Fatalf("expected normal status, got %q", result.Scores.Status)
	}

	if result.IdealWeight.Min != 9.8 || result.IdealWeight.Max != 15.3 {
		t.Fatalf("unexpected ideal weight %+v", result.IdealWeight)
	}

	if result.WeightStatus.Label != growth.WeightNormal {
		t.Fatalf("expected normal weight, got %q", result.WeightStatus.Label)
	}

	if result.NutritionGroup != "1-3" {
		t.Fatalf("expected nutrition group 1-3, got %q", result.NutritionGroup)
	}

	if result.Saved != nil || store.Snapshot().Len() != 0 {
		t.Fatalf("expected nothing saved")
	}
}

func TestAssessChildSavesRecord(t *testing.T) {
	t.Parallel()

	store := growth.NewMemoryStore()
	app := newHandlerTestApp(store)
	app.postForm("/child", childForm(true))

	result, ok := app.data["Result"].(ChildResult)
	if !ok {
		t.Fatalf("expected ChildResult, got %T", app.data["Result"])
	}

	if result.Saved == nil {
		t.Fatalf("expected saved record")
	}

	if _, ok := store.Snapshot().Find(result.Saved.ID); !ok {
		t.Fatalf("expected record %s in store", result.Saved.ID)
	}
}

func TestAssessChildRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	store := growth.NewMemoryStore()
	app := newHandlerTestApp(store)

	form := childForm(true)
	form.Set("age_months", "72")
	app.postForm("/child", form)

	if app.tpl.name != "child" || app.tpl.status != http.StatusBadRequest {
		t.Fatalf("unexpected render %q %d", app.tpl.name, app.tpl.status)
	}

	if app.data["Error"] == nil {
		t.Fatalf("expected error message")
	}

	if _, ok := app.data["Form"].(url.Values); !ok {
		t.Fatalf("expected form values to be kept for refilling")
	}

	if store.Snapshot().Len() != 0 {
		t.Fatalf("expected nothing saved")
	}
}

func TestAssessChildSaveFailureStillShowsResult(t *testing.T) {
	t.Parallel()

	app := newHandlerTestApp(failingStore{})
	app.postForm("/child", childForm(true))

	if app.tpl.name != "child_result" {
		t.Fatalf("expected result page, got %q", app.tpl.name)
	}

	if app.data["Error"] == nil {
		t.Fatalf("expected save error message")
	}

	result, ok := app.data["Result"].(ChildResult)
	if !ok || result.Saved != nil {
		t.Fatalf("expected unsaved result, got %#v", app.data["Result"])
	}
}

func TestCalculateIdealWeight(t *testing.T) {
	t.Parallel()

	app := newHandlerTestApp(nil)
	app.postForm("/ideal-weight", url.Values{
		"age_months": {"24"},
		"sex":        {"male"},
		"weight":     {"9.7"},
	})

	if app.tpl.name != "ideal_weight" || app.tpl.status != http.StatusOK {
		t.Fatalf("unexpected render %q %d", app.tpl.name, app.tpl.status)
	}

	result, ok := app.data["Result"].(IdealWeightResult)
	if !ok {
		t.Fatalf("expected IdealWeightResult, got %T", app.data["Result"])
	}

	if result.Range.Min != 9.8 || result.Status == nil || result.Status.Label != growth.WeightBelowIdeal {
		t.Fatalf("unexpected result %+v", result)
	}
}

func TestCalculateIdealWeightWithoutWeight(t *testing.T) {
	t.Parallel()

	app := newHandlerTestApp(nil)
	app.postForm("/ideal-weight", url.Values{"age_months": {"23"}, "sex": {"female"}})

	result, ok := app.data["Result"].(IdealWeightResult)
	if !ok {
		t.Fatalf("expected IdealWeightResult, got %T", app.data["Result"])
	}

	if result.Status != nil {
		t.Fatalf("expected no status without weight")
	}

	if result.Range.Min != 8.9 || result.Range.Max != 14.8 {
		t.Fatalf("unexpected range %+v", result.Range)
	}
}

func TestCalculateIdealWeightRejectsUnknownSex(t *testing.T) {
	t.Parallel()

	app := newHandlerTestApp(nil)
	app.postForm("/ideal-weight", url.Values{"age_months": {"23"}, "sex": {"x"}})

	if app.tpl.status != http.StatusBadRequest || app.data["Error"] == nil {
		t.Fatalf("expected bad request with error, got %d %#v", app.tpl.status, app.data["Error"])
	}
}
