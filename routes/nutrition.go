/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	htmltemplate "html/template"
	"net/http"
	"strconv"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/nutrition"
	"github.com/budistudiobank-hash/tanggap-cinta-anak/utils"
)

var renderOrgNotes = utils.ParseOrgToHTML

// NutritionIndex lists the age groups. An age query jumps to the matching group.
func NutritionIndex(c flamego.Context, t template.Template, data template.Data) {
	if raw := c.Query("age_months"); raw != "" {
		age, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			if group, ok := nutrition.GroupForAge(age); ok {
				c.Redirect("/nutrition/"+group.ID, http.StatusSeeOther)
				return
			}
		}

		data["Error"] = errUnknownAgeGroup.Error()
	}

	data["IsNutrition"] = true
	data["PageTitle"] = "Nutrition guide"
	data["Groups"] = nutrition.Groups()
	t.HTML(http.StatusOK, "nutrition")
}

// NutritionGroup renders the foods and notes for one age group.
func NutritionGroup(c flamego.Context, t template.Template, data template.Data) {
	data["IsNutrition"] = true
	data["PageTitle"] = "Nutrition guide"
	data["Groups"] = nutrition.Groups()

	group, ok := nutrition.Group(c.Param("group"))
	if !ok {
		data["Error"] = errUnknownAgeGroup.Error()
		t.HTML(http.StatusNotFound, "nutrition")

		return
	}

	data["Group"] = group

	if group.Notes != "" {
		notes, err := renderOrgNotes(group.Notes)
		if err != nil {
			webLogger.Warn("Failed to render nutrition notes", "group", group.ID, "error", err)
		} else {
			data["Notes"] = htmltemplate.HTML(notes) //nolint:gosec // rendered from embedded org content
		}
	}

	t.HTML(http.StatusOK, "nutrition")
}

func nutritionGroupFor(ageMonths float64) (string, bool) {
	group, ok := nutrition.GroupForAge(ageMonths)
	if !ok {
		return "", false
	}

	return group.ID, true
}
