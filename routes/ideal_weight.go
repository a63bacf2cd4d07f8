/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
)

// IdealWeightResult is the ideal weight page result.
type IdealWeightResult struct {
	AgeMonths float64
	Sex       growth.Sex
	Range     growth.WeightRange
	Weight    *float64
	Status    *growth.WeightStatus
}

func buildIdealWeightResult(ageMonths float64, sex growth.Sex, weight *float64) IdealWeightResult {
	result := IdealWeightResult{
		AgeMonths: ageMonths,
		Sex:       sex,
		Range:     growth.IdealWeightRange(ageMonths, sex),
		Weight:    weight,
	}

	if weight != nil {
		status := growth.ClassifyWeightStatus(*weight, ageMonths, sex)
		result.Status = &status
	}

	return result
}

// IdealWeightForm renders the ideal weight form.
func IdealWeightForm(t template.Template, data template.Data) {
	data["IsIdealWeight"] = true
	data["PageTitle"] = "Ideal weight"
	t.HTML(http.StatusOK, "ideal_weight")
}

// CalculateIdealWeight shows the ideal range and, when given, the weight status.
func CalculateIdealWeight(c flamego.Context, t template.Template, data template.Data) {
	data["IsIdealWeight"] = true
	data["PageTitle"] = "Ideal weight"

	if err := c.Request().ParseForm(); err != nil {
		data["Error"] = "Failed to read the form"
		t.HTML(http.StatusBadRequest, "ideal_weight")

		return
	}

	form := c.Request().Form
	data["Form"] = form

	ageMonths, sex, weight, err := parseIdealWeightForm(form)
	if err != nil {
		data["Error"] = err.Error()
		t.HTML(http.StatusBadRequest, "ideal_weight")

		return
	}

	data["Result"] = buildIdealWeightResult(ageMonths, sex, weight)
	t.HTML(http.StatusOK, "ideal_weight")
}
