/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package pregnancy scores maternal risk factors for child stunting.
package pregnancy

import (
	"fmt"
	"math"
)

// Level is the overall pregnancy risk classification.
type Level string

// Level values.
const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// Score thresholds for Level.
const (
	maxLowScore      = 2
	maxModerateScore = 5
)

// Input holds the maternal data collected by the pregnancy form.
type Input struct {
	MotherAge          float64 `json:"mother_age" yaml:"mother_age"`
	PregnancyWeeks     int     `json:"pregnancy_weeks" yaml:"pregnancy_weeks"`
	MotherHeight       float64 `json:"mother_height" yaml:"mother_height"`
	PrePregnancyWeight float64 `json:"pre_pregnancy_weight" yaml:"pre_pregnancy_weight"`
	CurrentWeight      float64 `json:"current_weight" yaml:"current_weight"`
	IronFolicIntake    bool    `json:"iron_folic_intake" yaml:"iron_folic_intake"`
	ANCVisits          int     `json:"anc_visits" yaml:"anc_visits"`
}

// Validate checks the ranges the form layer enforces. Assess does not call it.
func (in Input) Validate() error {
	switch {
	case !inRange(in.MotherAge, 10, 60):
		return fmt.Errorf("%w: %g", ErrMotherAgeOutOfRange, in.MotherAge)
	case in.PregnancyWeeks < 1 || in.PregnancyWeeks > 42:
		return fmt.Errorf("%w: %d", ErrWeeksOutOfRange, in.PregnancyWeeks)
	case !inRange(in.MotherHeight, 100, 220):
		return fmt.Errorf("%w: %g", ErrHeightOutOfRange, in.MotherHeight)
	case !inRange(in.PrePregnancyWeight, 25, 200):
		return fmt.Errorf("%w: pre-pregnancy %g", ErrWeightOutOfRange, in.PrePregnancyWeight)
	case !inRange(in.CurrentWeight, 25, 200):
		return fmt.Errorf("%w: current %g", ErrWeightOutOfRange, in.CurrentWeight)
	case in.ANCVisits < 0 || in.ANCVisits > 50:
		return fmt.Errorf("%w: %d", ErrANCVisitsOutOfRange, in.ANCVisits)
	}

	return nil
}

// inRange is false for NaN.
func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

// BMI returns the pre-pregnancy body mass index.
func (in Input) BMI() float64 {
	return in.PrePregnancyWeight / math.Pow(in.MotherHeight/100, 2)
}

// ExpectedWeightGain returns the expected gain in kg at the current week.
func (in Input) ExpectedWeightGain() float64 {
	weeks := float64(in.PregnancyWeeks)
	if in.PregnancyWeeks <= 12 {
		return 0.5 * (weeks / 12)
	}

	return 0.5 + (weeks-12)*0.4
}

// ExpectedANCVisits returns one visit per completed four weeks.
func (in Input) ExpectedANCVisits() int {
	return in.PregnancyWeeks / 4
}

// Assessment is the result of Assess. Factors and Recommendations follow
// evaluation order.
type Assessment struct {
	Level           Level    `json:"level" yaml:"level"`
	Score           int      `json:"score" yaml:"score"`
	Factors         []string `json:"factors" yaml:"factors"`
	Recommendations []string `json:"recommendations" yaml:"recommendations"`
}

// General recommendations appended to every assessment.
var generalRecommendations = []string{
	"Eat a variety of foods including vegetables, fruits, protein, and whole grains.",
	"Stay hydrated by drinking at least 8 glasses of water daily.",
	"Get adequate rest and avoid strenuous activities.",
}

var leadIns = map[Level]string{
	LevelLow:      "Continue with your current healthy practices. Maintain regular checkups and balanced nutrition.",
	LevelModerate: "There are some risk factors that need attention. Follow the recommendations below and consult your healthcare provider.",
	LevelHigh:     "Please consult a healthcare professional as soon as possible. Several risk factors need immediate attention.",
}

type scorer struct {
	score           int
	factors         []string
	recommendations []string
}

func (s *scorer) add(points int, factor, recommendation string) {
	s.score += points
	s.factors = append(s.factors, factor)
	s.recommendations = append(s.recommendations, recommendation)
}

// Assess evaluates the maternal risk checks in a fixed order. At most one
// branch fires per check, so factors never repeat.
func Assess(in Input) Assessment {
	s := &scorer{factors: []string{}}

	// Optimal maternal age is 20-35.
	switch {
	case in.MotherAge < 18:
		s.add(3, "Mother is under 18 years old (high risk)",
			"Young maternal age increases stunting risk. Ensure extra nutritional support and regular medical checkups.")
	case in.MotherAge < 20:
		s.add(2, "Mother is under 20 years old",
			"Consider additional nutritional counseling for young mothers.")
	case in.MotherAge > 35:
		s.add(1, "Mother is over 35 years old",
			"Advanced maternal age requires closer monitoring. Ensure regular checkups.")
	}

	switch {
	case in.MotherHeight < 145:
		s.add(3, "Mother's height is below 145 cm (high risk)",
			"Short maternal stature is associated with higher stunting risk. Focus on protein-rich nutrition and monitor fetal growth closely.")
	case in.MotherHeight < 150:
		s.add(2, "Mother's height is below 150 cm",
			"Ensure adequate calcium and protein intake for optimal fetal bone development.")
	}

	bmi := in.BMI()
	switch {
	case bmi < 18.5:
		s.add(3, "Pre-pregnancy BMI indicates underweight",
			"Focus on calorie-dense, nutritious foods. Aim for balanced weight gain during pregnancy.")
	case bmi >= 30:
		s.add(1, "Pre-pregnancy BMI indicates obesity",
			"Monitor weight gain carefully. Focus on nutritious foods rather than quantity.")
	}

	expectedGain := in.ExpectedWeightGain()
	actualGain := in.CurrentWeight - in.PrePregnancyWeight
	switch {
	case actualGain < expectedGain*0.5:
		s.add(2, "Weight gain is significantly below expected",
			"Increase caloric intake with nutritious foods. Consider adding healthy snacks between meals.")
	case actualGain < expectedGain*0.75:
		s.add(1, "Weight gain is slightly below expected",
			"Ensure you're eating enough calories. Add protein-rich foods to your diet.")
	}

	if !in.IronFolicIntake {
		s.add(2, "Not taking iron/folic acid supplements",
			"Start taking iron and folic acid supplements as recommended by your healthcare provider. These are essential for preventing anemia and supporting fetal development.")
	}

	expectedVisits := float64(in.ExpectedANCVisits())
	visits := float64(in.ANCVisits)
	switch {
	case visits < expectedVisits*0.5:
		s.add(3, "Antenatal care visits are significantly below recommended",
			"Schedule regular prenatal checkups immediately. ANC visits are crucial for monitoring your health and baby's development.")
	case visits < expectedVisits:
		s.add(1, "Antenatal care visits are below recommended",
			"Try to attend all scheduled prenatal appointments for optimal monitoring.")
	}

	level := LevelForScore(s.score)

	recommendations := make([]string, 0, len(s.recommendations)+1+len(generalRecommendations))
	recommendations = append(recommendations, leadIns[level])
	recommendations = append(recommendations, s.recommendations...)
	recommendations = append(recommendations, generalRecommendations...)

	return Assessment{
		Level:           level,
		Score:           s.score,
		Factors:         s.factors,
		Recommendations: recommendations,
	}
}

// LevelForScore maps a total score to a Level.
func LevelForScore(score int) Level {
	switch {
	case score <= maxLowScore:
		return LevelLow
	case score <= maxModerateScore:
		return LevelModerate
	default:
		return LevelHigh
	}
}
