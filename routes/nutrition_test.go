// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package routes

import (
	"html/template"
	"net/http"
	"strings"
	"testing"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/nutrition"
)

func TestNutritionIndex(t *testing.T) {
	t.Parallel()

	app := newHandlerTestApp(nil)
	app.get("/nutrition")

	if app.tpl.name != "nutrition" || app.tpl.status != http.StatusOK {
		t.Fatalf("unexpected render %q %d", app.tpl.name, app.tpl.status)
	}

	groups, ok := app.data["Groups"].([]nutrition.AgeGroup)
	if !ok || len(groups) != 4 {
		t.Fatalf("expected 4 groups, got %#v", app.data["Groups"])
	}
}

func TestNutritionIndexRedirectsByAge(t *testing.T) {
	t.Parallel()

	app := newHandlerTestApp(nil)
	rec := app.get("/nutrition?age_months=7")

	assertRedirect(t, rec, "/nutrition/6-12")
}

func TestNutritionIndexUnknownAge(t *testing.T) {
	t.Parallel()

	app := newHandlerTestApp(nil)
	app.get("/nutrition?age_months=99")

	if app.data["Error"] != errUnknownAgeGroup.Error() {
		t.Fatalf("expected unknown age group error, got %#v", app.data["Error"])
	}
}

func TestNutritionGroupRendersNotes(t *testing.T) {
	t.Parallel()

	app := newHandlerTestApp(nil)
	app.get("/nutrition/0-6")

	group, ok := app.data["Group"].(nutrition.AgeGroup)
	if !ok || group.ID != "0-6" {
		t.Fatalf("expected 0-6 group, got %#v", app.data["Group"])
	}

	notes, ok := app.data["Notes"].(template.HTML)
	if !ok {
		t.Fatalf("expected rendered notes")
	}

	if !strings.Contains(string(notes), `target="_blank"`) {
		t.Fatalf("expected external link annotation in %s", notes)
	}
}

func TestNutritionGroupUnknown(t *testing.T) {
	t.Parallel()

	app := newHandlerTestApp(nil)
	app.get("/nutrition/9-99")

	if app.tpl.status != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", app.tpl.status)
	}
}

//nolint:paralleltest // Overrides the package-level org renderer.
func TestNutritionGroupRenderFailure(t *testing.T) {
	orig := renderOrgNotes
	t.Cleanup(func() {
		renderOrgNotes = orig
	})

	renderOrgNotes = func(string) (string, error) {
		return "", errTestBoom
	}

	app := newHandlerTestApp(nil)
	app.get("/nutrition/1-3")

	if _, ok := app.data["Notes"]; ok {
		t.Fatalf("expected notes to be omitted on render failure")
	}

	if app.tpl.status != http.StatusOK {
		t.Fatalf("expected page to render, got %d", app.tpl.status)
	}
}
