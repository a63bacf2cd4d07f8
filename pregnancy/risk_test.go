// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package pregnancy

import (
	"errors"
	"reflect"
	"testing"
)

func healthyInput() Input {
	return Input{
		MotherAge:          25,
		PregnancyWeeks:     20,
		MotherHeight:       160,
		PrePregnancyWeight: 55,
		CurrentWeight:      60,
		IronFolicIntake:    true,
		ANCVisits:          5,
	}
}

func TestAssessLowRisk(t *testing.T) {
	t.Parallel()

	got := Assess(healthyInput())

	if got.Score != 0 || got.Level != LevelLow {
		t.Fatalf("expected score 0 and low level, got %d/%s", got.Score, got.Level)
	}

	if len(got.Factors) != 0 {
		t.Fatalf("expected no factors, got %v", got.Factors)
	}

	want := append([]string{leadIns[LevelLow]}, generalRecommendations...)
	if !reflect.DeepEqual(got.Recommendations, want) {
		t.Fatalf("unexpected recommendations %v", got.Recommendations)
	}
}

func TestAssessHighRisk(t *testing.T) {
	t.Parallel()

	got := Assess(Input{
		MotherAge:          16,
		PregnancyWeeks:     20,
		MotherHeight:       140,
		PrePregnancyWeight: 45,
		CurrentWeight:      46,
		IronFolicIntake:    false,
		ANCVisits:          0,
	})

	// age 3 + height 3 + weight gain 2 + supplements 2 + visits 3
	if got.Score != 13 || got.Level != LevelHigh {
		t.Fatalf("expected score 13 and high level, got %d/%s", got.Score, got.Level)
	}

	wantFactors := []string{
		"Mother is under 18 years old (high risk)",
		"Mother's height is below 145 cm (high risk)",
		"Weight gain is significantly below expected",
		"Not taking iron/folic acid supplements",
		"Antenatal care visits are significantly below recommended",
	}
	if !reflect.DeepEqual(got.Factors, wantFactors) {
		t.Fatalf("unexpected factors %v", got.Factors)
	}

	if len(got.Recommendations) != len(wantFactors)+1+len(generalRecommendations) {
		t.Fatalf("unexpected recommendation count %d", len(got.Recommendations))
	}

	if got.Recommendations[0] != leadIns[LevelHigh] {
		t.Fatalf("expected high-risk lead-in first, got %q", got.Recommendations[0])
	}

	tail := got.Recommendations[len(got.Recommendations)-3:]
	if !reflect.DeepEqual(tail, generalRecommendations) {
		t.Fatalf("expected general recommendations last, got %v", tail)
	}
}

func TestAssessBranches(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*Input)
		score  int
		factor string
	}{
		{"age 18-19", func(in *Input) { in.MotherAge = 19 }, 2, "Mother is under 20 years old"},
		{"age over 35", func(in *Input) { in.MotherAge = 36 }, 1, "Mother is over 35 years old"},
		{"age exactly 35", func(in *Input) { in.MotherAge = 35 }, 0, ""},
		{"height 145-149", func(in *Input) { in.MotherHeight = 148; in.PrePregnancyWeight = 50; in.CurrentWeight = 55 }, 2, "Mother's height is below 150 cm"},
		{"underweight", func(in *Input) { in.PrePregnancyWeight = 45; in.CurrentWeight = 50 }, 3, "Pre-pregnancy BMI indicates underweight"},
		{"obese", func(in *Input) { in.PrePregnancyWeight = 80; in.CurrentWeight = 85 }, 1, "Pre-pregnancy BMI indicates obesity"},
		{"slightly low gain", func(in *Input) { in.CurrentWeight = 57 }, 1, "Weight gain is slightly below expected"},
		{"one visit short", func(in *Input) { in.ANCVisits = 4 }, 1, "Antenatal care visits are below recommended"},
		{"no supplements", func(in *Input) { in.IronFolicIntake = false }, 2, "Not taking iron/folic acid supplements"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			in := healthyInput()
			tc.mutate(&in)
			got := Assess(in)

			if got.Score != tc.score {
				t.Fatalf("expected score %d, got %d (%v)", tc.score, got.Score, got.Factors)
			}

			if tc.factor == "" {
				if len(got.Factors) != 0 {
					t.Fatalf("expected no factors, got %v", got.Factors)
				}
				return
			}

			if len(got.Factors) != 1 || got.Factors[0] != tc.factor {
				t.Fatalf("expected factor %q, got %v", tc.factor, got.Factors)
			}
		})
	}
}

func TestExpectedValues(t *testing.T) {
	t.Parallel()

	in := Input{PregnancyWeeks: 6}
	if got := in.ExpectedWeightGain(); got != 0.25 {
		t.Fatalf("expected 0.25 kg at week 6, got %v", got)
	}

	in.PregnancyWeeks = 22
	if got := in.ExpectedWeightGain(); got != 4.5 {
		t.Fatalf("expected 4.5 kg at week 22, got %v", got)
	}

	if got := in.ExpectedANCVisits(); got != 5 {
		t.Fatalf("expected 5 visits at week 22, got %d", got)
	}
}

func TestLevelForScore(t *testing.T) {
	t.Parallel()

	cases := map[int]Level{0: LevelLow, 2: LevelLow, 3: LevelModerate, 5: LevelModerate, 6: LevelHigh, 17: LevelHigh}
	for score, want := range cases {
		if got := LevelForScore(score); got != want {
			t.Fatalf("score %d: expected %s, got %s", score, want, got)
		}
	}
}

func TestAssessIsDeterministic(t *testing.T) {
	t.Parallel()

	in := healthyInput()
	in.MotherAge = 17
	in.ANCVisits = 1

	if first, second := Assess(in), Assess(in); !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical assessments, got %#v and %#v", first, second)
	}
}

func TestInputValidate(t *testing.T) {
	t.Parallel()

	if err := healthyInput().Validate(); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*Input)
		want   error
	}{
		{"age", func(in *Input) { in.MotherAge = 9 }, ErrMotherAgeOutOfRange},
		{"weeks", func(in *Input) { in.PregnancyWeeks = 43 }, ErrWeeksOutOfRange},
		{"height", func(in *Input) { in.MotherHeight = 0 }, ErrHeightOutOfRange},
		{"current weight", func(in *Input) { in.CurrentWeight = 0 }, ErrWeightOutOfRange},
		{"visits", func(in *Input) { in.ANCVisits = -1 }, ErrANCVisitsOutOfRange},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			in := healthyInput()
			tc.mutate(&in)

			if err := in.Validate(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
