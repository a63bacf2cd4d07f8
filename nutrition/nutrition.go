/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package nutrition holds the age-grouped feeding guide.
package nutrition

import (
	_ "embed"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// Category groups foods by their main selling point.
type Category string

const (
	CategoryProtein Category = "protein"
	CategoryIron    Category = "iron"
	CategoryBudget  Category = "budget"
)

// Label returns the human readable category name.
func (c Category) Label() string {
	switch c {
	case CategoryProtein:
		return "High protein"
	case CategoryIron:
		return "Rich in iron"
	case CategoryBudget:
		return "Budget friendly"
	default:
		return string(c)
	}
}

// FoodItem is one recommended food.
type FoodItem struct {
	Name        string   `yaml:"name" json:"name"`
	Benefits    string   `yaml:"benefits" json:"benefits"`
	Portion     string   `yaml:"portion" json:"portion"`
	Preparation string   `yaml:"preparation" json:"preparation"`
	Category    Category `yaml:"category" json:"category"`
}

// AgeGroup is the guide for one age bracket.
type AgeGroup struct {
	ID          string     `yaml:"id" json:"id"`
	Label       string     `yaml:"label" json:"label"`
	Description string     `yaml:"description" json:"description"`
	MinMonths   float64    `yaml:"min_months" json:"min_months"`
	MaxMonths   float64    `yaml:"max_months" json:"max_months"`
	Foods       []FoodItem `yaml:"foods" json:"foods"`
	Notes       string     `yaml:"notes" json:"-"`
}

type guideFile struct {
	Groups []AgeGroup `yaml:"groups"`
}

//go:embed guide.yaml
var guideYAML []byte

var groups = mustLoadGuide(guideYAML)

func mustLoadGuide(raw []byte) []AgeGroup {
	parsed, err := loadGuide(raw)
	if err != nil {
		panic(err)
	}

	return parsed
}

func loadGuide(raw []byte) ([]AgeGroup, error) {
	var guide guideFile
	if err := yaml.Unmarshal(raw, &guide); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition guide: %w", err)
	}

	if len(guide.Groups) == 0 {
		return nil, ErrEmptyGuide
	}

	for i, g := range guide.Groups {
		if g.ID == "" {
			return nil, fmt.Errorf("%w: group %d", ErrMissingGroupID, i)
		}

		if g.MaxMonths <= g.MinMonths {
			return nil, fmt.Errorf("%w: %s", ErrInvalidAgeBounds, g.ID)
		}
	}

	return guide.Groups, nil
}

// Groups returns every age group in order.
func Groups() []AgeGroup {
	return slices.Clone(groups)
}

// Group looks up an age group by id.
func Group(id string) (AgeGroup, bool) {
	for _, g := range groups {
		if g.ID == id {
			return g, true
		}
	}

	return AgeGroup{}, false
}

// GroupForAge returns the group covering ageMonths. The last group includes
// its upper bound.
func GroupForAge(ageMonths float64) (AgeGroup, bool) {
	for i, g := range groups {
		if ageMonths < g.MinMonths {
			continue
		}

		if ageMonths < g.MaxMonths || (i == len(groups)-1 && ageMonths == g.MaxMonths) {
			return g, true
		}
	}

	return AgeGroup{}, false
}
