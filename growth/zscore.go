/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "math"

// NearestAge returns the checkpoint age closest to ageMonths. Rows must be
// sorted by age; on a tie the lower checkpoint wins. Values are never
// interpolated between checkpoints.
func NearestAge(ageMonths float64, rows []ReferenceRow) int {
	return rows[nearestIndex(ageMonths, rows)].AgeMonths
}

func nearestIndex(ageMonths float64, rows []ReferenceRow) int {
	closest := 0
	minDiff := math.Abs(ageMonths - float64(rows[0].AgeMonths))

	for i, row := range rows {
		diff := math.Abs(ageMonths - float64(row.AgeMonths))
		if diff < minDiff {
			minDiff = diff
			closest = i
		}
	}

	return closest
}

// nearestRow resolves the reference row used for a measurement.
func nearestRow(indicator Indicator, sex Sex, ageMonths float64) ReferenceRow {
	rows := table(indicator, sex)
	return rows[nearestIndex(ageMonths, rows)]
}

// LMSZScore converts a measurement into a Z-score with the LMS method.
// value and M must be positive; otherwise the result is NaN or ±Inf.
func LMSZScore(value, L, M, S float64) float64 {
	if L == 0 {
		return math.Log(value/M) / S
	}

	return (math.Pow(value/M, L) - 1) / (L * S)
}

// HeightForAgeZ returns the height-for-age Z-score (HAZ).
func HeightForAgeZ(ageMonths, height float64, sex Sex) float64 {
	row := nearestRow(HeightForAge, sex, ageMonths)
	return LMSZScore(height, row.L, row.M, row.S)
}

// WeightForAgeZ returns the weight-for-age Z-score (WAZ).
func WeightForAgeZ(ageMonths, weight float64, sex Sex) float64 {
	row := nearestRow(WeightForAge, sex, ageMonths)
	return LMSZScore(weight, row.L, row.M, row.S)
}

// Expected-weight coefficients for the weight-for-height approximation.
const (
	expectedWeightCoefMale   = 0.0001
	expectedWeightCoefFemale = 0.00009
)

// WeightForHeightZ approximates a weight-for-height score from a closed-form
// expected weight (k * height^2.5). It is not a WHO LMS computation and
// should not be read as a clinical WHZ.
func WeightForHeightZ(height, weight float64, sex Sex) float64 {
	coef := expectedWeightCoefFemale
	if sex == Male {
		coef = expectedWeightCoefMale
	}

	expected := coef * math.Pow(height, 2.5)

	return (weight/expected - 1) * 3
}
