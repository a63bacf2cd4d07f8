/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"fmt"
	"math"
)

// Accepted input ranges for child measurements.
const (
	MinAgeMonths = 0
	MaxAgeMonths = 60
	MinHeightCm  = 40
	MaxHeightCm  = 150
	MinWeightKg  = 1
	MaxWeightKg  = 50
)

// MeasurementInput is a single anthropometric measurement of a child.
type MeasurementInput struct {
	AgeMonths float64 `json:"age_months" yaml:"age_months"`
	Sex       Sex     `json:"sex" yaml:"sex"`
	Height    float64 `json:"height" yaml:"height"`
	Weight    float64 `json:"weight" yaml:"weight"`
}

// Validate checks the input ranges callers are expected to enforce before
// scoring. The scoring functions themselves never call it.
func (in MeasurementInput) Validate() error {
	for _, v := range []float64{in.AgeMonths, in.Height, in.Weight} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNotFinite
		}
	}

	if in.Sex != Male && in.Sex != Female {
		return fmt.Errorf("%w: %q", ErrUnknownSex, in.Sex)
	}

	if in.AgeMonths < MinAgeMonths || in.AgeMonths > MaxAgeMonths {
		return fmt.Errorf("%w: %g", ErrAgeOutOfRange, in.AgeMonths)
	}

	if in.Height < MinHeightCm || in.Height > MaxHeightCm {
		return fmt.Errorf("%w: %g", ErrHeightOutOfRange, in.Height)
	}

	if in.Weight < MinWeightKg || in.Weight > MaxWeightKg {
		return fmt.Errorf("%w: %g", ErrWeightOutOfRange, in.Weight)
	}

	return nil
}

// ScoreResult holds the standardized scores for one measurement.
type ScoreResult struct {
	HAZ       float64   `json:"haz" yaml:"haz"`
	WAZ       float64   `json:"waz" yaml:"waz"`
	WHZ       float64   `json:"whz" yaml:"whz"`
	Severity  Severity  `json:"severity" yaml:"severity"`
	RiskColor RiskColor `json:"risk_color" yaml:"risk_color"`
	Status    string    `json:"status" yaml:"status"`
}

// ComputeChildScores computes HAZ, WAZ and WHZ and the stunting category.
func ComputeChildScores(ageMonths float64, sex Sex, height, weight float64) ScoreResult {
	haz := HeightForAgeZ(ageMonths, height, sex)
	stunting := StuntingStatus(haz)

	return ScoreResult{
		HAZ:       haz,
		WAZ:       WeightForAgeZ(ageMonths, weight, sex),
		WHZ:       WeightForHeightZ(height, weight, sex),
		Severity:  stunting.Severity,
		RiskColor: stunting.Color,
		Status:    stunting.Label,
	}
}

// Score is a convenience wrapper around ComputeChildScores.
func (in MeasurementInput) Score() ScoreResult {
	return ComputeChildScores(in.AgeMonths, in.Sex, in.Height, in.Weight)
}
