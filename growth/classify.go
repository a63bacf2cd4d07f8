/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "math"

// Severity is the stunting category derived from HAZ.
type Severity string

// Severity values, ordered from least to most severe.
const (
	SeverityNormal          Severity = "normal"
	SeverityAtRisk          Severity = "at-risk"
	SeverityStunted         Severity = "stunted"
	SeveritySeverelyStunted Severity = "severely-stunted"
)

// RiskColor is the traffic-light level shown next to a result.
type RiskColor string

// RiskColor values.
const (
	RiskLow      RiskColor = "low"
	RiskModerate RiskColor = "moderate"
	RiskHigh     RiskColor = "high"
)

// Stunting status labels.
const (
	StatusNormal          = "Normal"
	StatusAtRisk          = "At Risk of Stunting"
	StatusStunted         = "Stunted"
	StatusSeverelyStunted = "Severely Stunted"
)

// Weight status labels.
const (
	WeightBelowIdeal = "Below Ideal"
	WeightAboveIdeal = "Above Ideal"
	WeightNormal     = "Normal"
)

// Stunting is the classification of a height-for-age score.
type Stunting struct {
	Label    string
	Severity Severity
	Color    RiskColor
}

// StuntingStatus classifies HAZ. Lower bounds are inclusive, so -1 is
// normal, -2 is at risk and -3 is stunted.
func StuntingStatus(haz float64) Stunting {
	switch {
	case haz >= -1:
		return Stunting{Label: StatusNormal, Severity: SeverityNormal, Color: RiskLow}
	case haz >= -2:
		return Stunting{Label: StatusAtRisk, Severity: SeverityAtRisk, Color: RiskModerate}
	case haz >= -3:
		return Stunting{Label: StatusStunted, Severity: SeverityStunted, Color: RiskHigh}
	default:
		return Stunting{Label: StatusSeverelyStunted, Severity: SeveritySeverelyStunted, Color: RiskHigh}
	}
}

// WeightRange is the acceptable weight band for an age, in kg.
type WeightRange struct {
	Min    float64 `json:"min" yaml:"min"`
	Max    float64 `json:"max" yaml:"max"`
	Median float64 `json:"median" yaml:"median"`
}

// IdealWeightRange returns M*e^(-2S) .. M*e^(2S) from the nearest
// weight-for-age checkpoint, rounded to one decimal. This treats the spread
// as log-normal instead of inverting the LMS equation.
func IdealWeightRange(ageMonths float64, sex Sex) WeightRange {
	row := nearestRow(WeightForAge, sex, ageMonths)

	return WeightRange{
		Min:    roundTenth(row.M * math.Exp(-2*row.S)),
		Max:    roundTenth(row.M * math.Exp(2*row.S)),
		Median: row.M,
	}
}

// WeightStatus is the classification of a weight against the ideal range.
type WeightStatus struct {
	Label string    `json:"status" yaml:"status"`
	Color RiskColor `json:"color_level" yaml:"color_level"`
}

// ClassifyWeightStatus compares weight to IdealWeightRange. Weights equal to
// a bound are inside the range.
func ClassifyWeightStatus(weight, ageMonths float64, sex Sex) WeightStatus {
	r := IdealWeightRange(ageMonths, sex)

	switch {
	case weight < r.Min:
		return WeightStatus{Label: WeightBelowIdeal, Color: RiskHigh}
	case weight > r.Max:
		return WeightStatus{Label: WeightAboveIdeal, Color: RiskModerate}
	default:
		return WeightStatus{Label: WeightNormal, Color: RiskLow}
	}
}

// roundTenth rounds half up to one decimal place.
func roundTenth(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
