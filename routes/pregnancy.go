/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"errors"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"
	"github.com/google/uuid"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/db"
	"github.com/budistudiobank-hash/tanggap-cinta-anak/pregnancy"
)

const recentPregnancyAssessments = 20

var (
	pregnancyStorageEnabledFn   = db.Enabled
	savePregnancyAssessmentFn   = db.SavePregnancyAssessment
	listPregnancyAssessmentsFn  = db.ListPregnancyAssessments
	pregnancyAssessmentLookupFn = db.GetPregnancyAssessment
)

// PregnancyResult is the pregnancy result page model.
type PregnancyResult struct {
	Input              pregnancy.Input
	Assessment         pregnancy.Assessment
	BMI                float64
	ExpectedWeightGain float64
	ExpectedANCVisits  int
	SavedID            *uuid.UUID
}

func buildPregnancyResult(in pregnancy.Input) PregnancyResult {
	return PregnancyResult{
		Input:              in,
		Assessment:         pregnancy.Assess(in),
		BMI:                in.BMI(),
		ExpectedWeightGain: in.ExpectedWeightGain(),
		ExpectedANCVisits:  in.ExpectedANCVisits(),
	}
}

// storePregnancyResult persists the assessment when a database is configured.
func storePregnancyResult(ctx context.Context, result *PregnancyResult) {
	if !pregnancyStorageEnabledFn() {
		return
	}

	id, err := savePregnancyAssessmentFn(ctx, result.Input, result.Assessment)
	if err != nil {
		webLogger.Error("Failed to save pregnancy assessment", "error", err)
		return
	}

	result.SavedID = &id
}

// PregnancyForm renders the pregnancy risk form.
func PregnancyForm(c flamego.Context, t template.Template, data template.Data) {
	data["IsPregnancy"] = true
	data["PageTitle"] = "Pregnancy risk check"

	if pregnancyStorageEnabledFn() {
		assessments, err := listPregnancyAssessmentsFn(c.Request().Context(), recentPregnancyAssessments)
		if err != nil {
			webLogger.Warn("Failed to list pregnancy assessments", "error", err)
		} else {
			data["RecentAssessments"] = assessments
		}
	}

	t.HTML(http.StatusOK, "pregnancy")
}

// AssessPregnancy scores a submitted pregnancy form.
func AssessPregnancy(c flamego.Context, t template.Template, data template.Data) {
	data["IsPregnancy"] = true
	data["PageTitle"] = "Pregnancy risk check"

	if err := c.Request().ParseForm(); err != nil {
		data["Error"] = "Failed to read the form"
		t.HTML(http.StatusBadRequest, "pregnancy")

		return
	}

	form := c.Request().Form

	in, err := parsePregnancyForm(form)
	if err != nil {
		data["Error"] = err.Error()
		data["Form"] = form
		t.HTML(http.StatusBadRequest, "pregnancy")

		return
	}

	result := buildPregnancyResult(in)
	storePregnancyResult(c.Request().Context(), &result)

	data["Result"] = result
	t.HTML(http.StatusOK, "pregnancy_result")
}

// ViewPregnancyAssessment renders a stored assessment.
func ViewPregnancyAssessment(c flamego.Context, t template.Template, data template.Data) {
	data["IsPregnancy"] = true
	data["PageTitle"] = "Pregnancy risk check"

	if !pregnancyStorageEnabledFn() {
		c.Redirect("/pregnancy", http.StatusSeeOther)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		data["Error"] = errInvalidRecordID.Error()
		t.HTML(http.StatusNotFound, "pregnancy")

		return
	}

	stored, err := pregnancyAssessmentLookupFn(c.Request().Context(), id)
	if errors.Is(err, db.ErrPregnancyAssessmentNotFound) {
		data["Error"] = "Assessment not found"
		t.HTML(http.StatusNotFound, "pregnancy")

		return
	}

	if err != nil {
		webLogger.Error("Failed to load pregnancy assessment", "id", id, "error", err)
		data["Error"] = "Failed to load assessment"
		t.HTML(http.StatusInternalServerError, "pregnancy")

		return
	}

	result := buildPregnancyResult(stored.Input)
	result.Assessment = stored.Result
	result.SavedID = &stored.ID

	data["Result"] = result
	data["AssessedAt"] = stored.CreatedAt
	t.HTML(http.StatusOK, "pregnancy_result")
}
