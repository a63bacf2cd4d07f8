/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
)

// ChildResult bundles everything the result page shows for one measurement.
type ChildResult struct {
	Input        growth.MeasurementInput
	Scores       growth.ScoreResult
	IdealWeight  growth.WeightRange
	WeightStatus growth.WeightStatus
	// NutritionGroup is the id of the matching feeding guide, if any.
	NutritionGroup string
	Saved          *growth.Record
}

func buildChildResult(in growth.MeasurementInput) ChildResult {
	result := ChildResult{
		Input:        in,
		Scores:       in.Score(),
		IdealWeight:  growth.IdealWeightRange(in.AgeMonths, in.Sex),
		WeightStatus: growth.ClassifyWeightStatus(in.Weight, in.AgeMonths, in.Sex),
	}

	if group, ok := nutritionGroupFor(in.AgeMonths); ok {
		result.NutritionGroup = group
	}

	return result
}

// ChildForm renders the measurement form.
func ChildForm(t template.Template, data template.Data) {
	data["IsChild"] = true
	data["PageTitle"] = "Child growth check"
	t.HTML(http.StatusOK, "child")
}

// AssessChild scores a submitted measurement and optionally saves it.
func AssessChild(c flamego.Context, s session.Session, t template.Template, data template.Data, store growth.HistoryStore) {
	data["IsChild"] = true
	data["PageTitle"] = "Child growth check"

	if err := c.Request().ParseForm(); err != nil {
		SetErrorFlash(s, "Failed to read the form")
		c.Redirect("/child", http.StatusSeeOther)

		return
	}

	form := c.Request().Form

	in, err := parseMeasurementForm(form)
	if err != nil {
		data["Error"] = err.Error()
		data["Form"] = form
		t.HTML(http.StatusBadRequest, "child")

		return
	}

	result := buildChildResult(in)

	if parseCheckbox(form, "save") {
		saved, err := store.Save(c.Request().Context(), growth.NewRecord(in, result.Scores))
		if err != nil {
			webLogger.Error("Failed to save growth record", "error", err)
			data["Error"] = "The result could not be saved to history"
		} else {
			result.Saved = &saved
		}
	}

	data["Result"] = result
	t.HTML(http.StatusOK, "child_result")
}
