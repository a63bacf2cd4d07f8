/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
	"github.com/budistudiobank-hash/tanggap-cinta-anak/pregnancy"
)

// parseFloatField reads a finite decimal form value. A comma is accepted
// as the decimal separator ("12,5").
func parseFloatField(form url.Values, name string) (float64, error) {
	raw := strings.TrimSpace(form.Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", errMissingField, name)
	}

	value, err := strconv.ParseFloat(strings.Replace(raw, ",", ".", 1), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %s", errInvalidNumber, name)
	}

	return value, nil
}

func parseIntField(form url.Values, name string) (int, error) {
	raw := strings.TrimSpace(form.Get(name))
	if raw == "" {
		return 0, fmt.Errorf("%w: %s", errMissingField, name)
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errInvalidNumber, name)
	}

	return value, nil
}

func parseCheckbox(form url.Values, name string) bool {
	switch strings.ToLower(strings.TrimSpace(form.Get(name))) {
	case "on", "1", "true", "yes":
		return true
	default:
		return false
	}
}

// parseMeasurementForm builds and validates a child measurement.
func parseMeasurementForm(form url.Values) (growth.MeasurementInput, error) {
	var in growth.MeasurementInput
	var err error

	if in.AgeMonths, err = parseFloatField(form, "age_months"); err != nil {
		return in, err
	}

	if in.Sex, err = growth.ParseSex(form.Get("sex")); err != nil {
		return in, err
	}

	if in.Height, err = parseFloatField(form, "height"); err != nil {
		return in, err
	}

	if in.Weight, err = parseFloatField(form, "weight"); err != nil {
		return in, err
	}

	return in, in.Validate()
}

// parseIdealWeightForm reads the age/sex/weight form. Weight is optional.
func parseIdealWeightForm(form url.Values) (ageMonths float64, sex growth.Sex, weight *float64, err error) {
	if ageMonths, err = parseFloatField(form, "age_months"); err != nil {
		return
	}

	if ageMonths < growth.MinAgeMonths || ageMonths > growth.MaxAgeMonths {
		err = growth.ErrAgeOutOfRange
		return
	}

	if sex, err = growth.ParseSex(form.Get("sex")); err != nil {
		return
	}

	if strings.TrimSpace(form.Get("weight")) == "" {
		return
	}

	w, err := parseFloatField(form, "weight")
	if err != nil {
		return
	}

	if w < growth.MinWeightKg || w > growth.MaxWeightKg {
		err = growth.ErrWeightOutOfRange
		return
	}

	weight = &w

	return
}

// parsePregnancyForm builds and validates a pregnancy input.
func parsePregnancyForm(form url.Values) (pregnancy.Input, error) {
	var in pregnancy.Input
	var err error

	if in.MotherAge, err = parseFloatField(form, "mother_age"); err != nil {
		return in, err
	}

	if in.PregnancyWeeks, err = parseIntField(form, "pregnancy_weeks"); err != nil {
		return in, err
	}

	if in.MotherHeight, err = parseFloatField(form, "mother_height"); err != nil {
		return in, err
	}

	if in.PrePregnancyWeight, err = parseFloatField(form, "pre_pregnancy_weight"); err != nil {
		return in, err
	}

	if in.CurrentWeight, err = parseFloatField(form, "current_weight"); err != nil {
		return in, err
	}

	if in.ANCVisits, err = parseIntField(form, "anc_visits"); err != nil {
		return in, err
	}

	in.IronFolicIntake = parseCheckbox(form, "iron_folic_intake")

	return in, in.Validate()
}
