// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package nutrition

import (
	"errors"
	"testing"
)

func TestGroupsLoaded(t *testing.T) {
	t.Parallel()

	got := Groups()

	wantIDs := []string{"0-6", "6-12", "1-3", "3-5"}
	if len(got) != len(wantIDs) {
		t.Fatalf("expected %d groups, got %d", len(wantIDs), len(got))
	}

	for i, id := range wantIDs {
		if got[i].ID != id {
			t.Fatalf("group %d: expected %q, got %q", i, id, got[i].ID)
		}

		if len(got[i].Foods) == 0 {
			t.Fatalf("group %q has no foods", id)
		}

		if got[i].Notes == "" {
			t.Fatalf("group %q has no notes", id)
		}
	}

	got[0].ID = "changed"
	if Groups()[0].ID != "0-6" {
		t.Fatalf("expected Groups to return a copy")
	}
}

func TestFoodCategoriesKnown(t *testing.T) {
	t.Parallel()

	for _, g := range Groups() {
		for _, f := range g.Foods {
			switch f.Category {
			case CategoryProtein, CategoryIron, CategoryBudget:
			default:
				t.Fatalf("unexpected category %q for %q", f.Category, f.Name)
			}
		}
	}
}

func TestGroup(t *testing.T) {
	t.Parallel()

	g, ok := Group("6-12")
	if !ok {
		t.Fatalf("expected 6-12 group")
	}

	if len(g.Foods) != 6 {
		t.Fatalf("expected 6 foods, got %d", len(g.Foods))
	}

	if _, ok := Group("12-24"); ok {
		t.Fatalf("expected unknown group to be missing")
	}
}

func TestGroupForAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		age  float64
		want string
		ok   bool
	}{
		{0, "0-6", true},
		{5.9, "0-6", true},
		{6, "6-12", true},
		{11.5, "6-12", true},
		{12, "1-3", true},
		{35, "1-3", true},
		{36, "3-5", true},
		{60, "3-5", true},
		{61, "", false},
		{-1, "", false},
	}

	for _, tt := range tests {
		g, ok := GroupForAge(tt.age)
		if ok != tt.ok || g.ID != tt.want {
			t.Fatalf("GroupForAge(%v) = (%q, %v), want (%q, %v)", tt.age, g.ID, ok, tt.want, tt.ok)
		}
	}
}

func TestCategoryLabel(t *testing.T) {
	t.Parallel()

	if CategoryIron.Label() != "Rich in iron" {
		t.Fatalf("unexpected iron label %q", CategoryIron.Label())
	}

	if Category("other").Label() != "other" {
		t.Fatalf("expected unknown category to echo its value")
	}
}

func TestLoadGuideErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want error
	}{
		{"empty", "groups: []\n", ErrEmptyGuide},
		{"missing id", "groups:\n  - label: x\n    min_months: 0\n    max_months: 6\n", ErrMissingGroupID},
		{"bad bounds", "groups:\n  - id: x\n    min_months: 6\n    max_months: 6\n", ErrInvalidAgeBounds},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := loadGuide([]byte(tt.raw)); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}

	if _, err := loadGuide([]byte("groups: [")); err == nil {
		t.Fatalf("expected yaml syntax error")
	}
}
