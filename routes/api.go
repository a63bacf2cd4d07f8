/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/flamego/flamego"
	"github.com/google/uuid"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
	"github.com/budistudiobank-hash/tanggap-cinta-anak/pregnancy"
)

const maxAPIBodyBytes = 64 << 10

// ChildScoresResponse is the body of POST /api/child-scores.
type ChildScoresResponse struct {
	Input          growth.MeasurementInput `json:"input"`
	Scores         growth.ScoreResult      `json:"scores"`
	IdealWeight    growth.WeightRange      `json:"ideal_weight"`
	WeightStatus   growth.WeightStatus     `json:"weight_status"`
	NutritionGroup string                  `json:"nutrition_group,omitempty"`
	RecordID       *uuid.UUID              `json:"record_id,omitempty"`
}

// PregnancyRiskResponse is the body of POST /api/pregnancy-risk.
type PregnancyRiskResponse struct {
	pregnancy.Assessment
	BMI                float64    `json:"bmi"`
	ExpectedWeightGain float64    `json:"expected_weight_gain"`
	ExpectedANCVisits  int        `json:"expected_anc_visits"`
	ID                 *uuid.UUID `json:"id,omitempty"`
}

type apiError struct {
	Error string `json:"error"`
}

func writeJSON(c flamego.Context, status int, v any) {
	w := c.ResponseWriter()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		webLogger.Warn("Failed to encode JSON response", "error", err)
	}
}

func writeJSONError(c flamego.Context, status int, err error) {
	writeJSON(c, status, apiError{Error: err.Error()})
}

func decodeJSONBody(r io.Reader, v any) error {
	dec := json.NewDecoder(io.LimitReader(r, maxAPIBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSONInput, err)
	}

	return nil
}

// APIChildScores scores a JSON measurement. A "save" query of 1 also stores it.
func APIChildScores(c flamego.Context, store growth.HistoryStore) {
	var in growth.MeasurementInput
	if err := decodeJSONBody(c.Request().Request.Body, &in); err != nil {
		writeJSONError(c, http.StatusBadRequest, err)
		return
	}

	sex, err := growth.ParseSex(string(in.Sex))
	if err != nil {
		writeJSONError(c, http.StatusBadRequest, err)
		return
	}
	in.Sex = sex

	if err := in.Validate(); err != nil {
		writeJSONError(c, http.StatusBadRequest, err)
		return
	}

	result := buildChildResult(in)
	resp := ChildScoresResponse{
		Input:          in,
		Scores:         result.Scores,
		IdealWeight:    result.IdealWeight,
		WeightStatus:   result.WeightStatus,
		NutritionGroup: result.NutritionGroup,
	}

	if parseCheckbox(c.Request().URL.Query(), "save") {
		saved, err := store.Save(c.Request().Context(), growth.NewRecord(in, result.Scores))
		if err != nil {
			webLogger.Error("Failed to save growth record", "error", err)
			writeJSONError(c, http.StatusInternalServerError, err)

			return
		}

		resp.RecordID = &saved.ID
	}

	writeJSON(c, http.StatusOK, resp)
}

// APIIdealWeight returns the ideal weight range for age_months and sex.
func APIIdealWeight(c flamego.Context) {
	ageMonths, sex, _, err := parseIdealWeightForm(c.Request().URL.Query())
	if err != nil {
		writeJSONError(c, http.StatusBadRequest, err)
		return
	}

	writeJSON(c, http.StatusOK, growth.IdealWeightRange(ageMonths, sex))
}

// APIWeightStatus classifies weight against the ideal range.
func APIWeightStatus(c flamego.Context) {
	query := c.Request().URL.Query()

	ageMonths, sex, weight, err := parseIdealWeightForm(query)
	if err != nil {
		writeJSONError(c, http.StatusBadRequest, err)
		return
	}

	if weight == nil {
		writeJSONError(c, http.StatusBadRequest, fmt.Errorf("%w: weight", errMissingField))
		return
	}

	writeJSON(c, http.StatusOK, growth.ClassifyWeightStatus(*weight, ageMonths, sex))
}

// APIPregnancyRisk assesses a JSON pregnancy input.
func APIPregnancyRisk(c flamego.Context) {
	var in pregnancy.Input
	if err := decodeJSONBody(c.Request().Request.Body, &in); err != nil {
		writeJSONError(c, http.StatusBadRequest, err)
		return
	}

	if err := in.Validate(); err != nil {
		writeJSONError(c, http.StatusBadRequest, err)
		return
	}

	result := buildPregnancyResult(in)
	storePregnancyResult(c.Request().Context(), &result)

	writeJSON(c, http.StatusOK, PregnancyRiskResponse{
		Assessment:         result.Assessment,
		BMI:                result.BMI,
		ExpectedWeightGain: result.ExpectedWeightGain,
		ExpectedANCVisits:  result.ExpectedANCVisits,
		ID:                 result.SavedID,
	})
}
