/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import (
	"fmt"
	"slices"
	"strings"
)

// Indicator identifies an age-indexed growth standard.
type Indicator string

// Indicator values represent the supported reference tables.
const (
	HeightForAge Indicator = "height-for-age"
	WeightForAge Indicator = "weight-for-age"
)

// Sex represents biological sex for growth reference tables
type Sex string

// Sex values represent supported biological-sex categories.
const (
	Male   Sex = "male"
	Female Sex = "female"
)

// ParseSex converts form and CLI input into a Sex.
func ParseSex(value string) (Sex, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "male", "m", "l", "laki-laki", "boy":
		return Male, nil
	case "female", "f", "p", "perempuan", "girl":
		return Female, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSex, value)
	}
}

// ReferenceRow holds the LMS parameters for one age checkpoint.
type ReferenceRow struct {
	AgeMonths int
	L         float64 // skewness
	M         float64 // median
	S         float64 // coefficient of variation
}

type tableKey struct {
	indicator Indicator
	sex       Sex
}

// referenceTables is populated once at init and never mutated.
var referenceTables = map[tableKey][]ReferenceRow{
	{HeightForAge, Male}:   hazBoys,
	{HeightForAge, Female}: hazGirls,
	{WeightForAge, Male}:   wazBoys,
	{WeightForAge, Female}: wazGirls,
}

// Table returns a copy of the reference rows for an indicator and sex,
// ordered by ascending age. Unknown combinations are programming errors.
func Table(indicator Indicator, sex Sex) []ReferenceRow {
	return slices.Clone(table(indicator, sex))
}

func table(indicator Indicator, sex Sex) []ReferenceRow {
	rows, ok := referenceTables[tableKey{indicator, sex}]
	if !ok {
		panic(fmt.Sprintf("growth: no reference table for %s/%s", indicator, sex))
	}

	return rows
}

// Checkpoints returns the ages (in months) every table is keyed by.
func Checkpoints() []int {
	ages := make([]int, 0, len(hazBoys))
	for _, row := range hazBoys {
		ages = append(ages, row.AgeMonths)
	}

	return ages
}

// WHO Child Growth Standards (WHO Multicentre Growth Reference Study Group, 2006).
// Monthly to 12 months, then every 6 months to 60.

// ===== HEIGHT-FOR-AGE (cm) =====

var hazBoys = []ReferenceRow{
	{0, 1, 49.9, 0.03795},
	{1, 1, 54.7, 0.03557},
	{2, 1, 58.4, 0.03424},
	{3, 1, 61.4, 0.03328},
	{4, 1, 63.9, 0.03257},
	{5, 1, 65.9, 0.03204},
	{6, 1, 67.6, 0.03165},
	{7, 1, 69.2, 0.03139},
	{8, 1, 70.6, 0.03124},
	{9, 1, 72.0, 0.03117},
	{10, 1, 73.3, 0.03118},
	{11, 1, 74.5, 0.03125},
	{12, 1, 75.7, 0.03137},
	{18, 1, 82.3, 0.03204},
	{24, 1, 87.1, 0.03280},
	{30, 1, 91.9, 0.03320},
	{36, 1, 96.1, 0.03340},
	{42, 1, 99.9, 0.03350},
	{48, 1, 103.3, 0.03360},
	{54, 1, 106.7, 0.03370},
	{60, 1, 110.0, 0.03380},
}

var hazGirls = []ReferenceRow{
	{0, 1, 49.1, 0.03790},
	{1, 1, 53.7, 0.03540},
	{2, 1, 57.1, 0.03403},
	{3, 1, 59.8, 0.03310},
	{4, 1, 62.1, 0.03243},
	{5, 1, 64.0, 0.03194},
	{6, 1, 65.7, 0.03156},
	{7, 1, 67.3, 0.03126},
	{8, 1, 68.7, 0.03104},
	{9, 1, 70.1, 0.03089},
	{10, 1, 71.5, 0.03080},
	{11, 1, 72.8, 0.03075},
	{12, 1, 74.0, 0.03074},
	{18, 1, 80.7, 0.03100},
	{24, 1, 86.4, 0.03160},
	{30, 1, 91.2, 0.03210},
	{36, 1, 95.1, 0.03250},
	{42, 1, 98.8, 0.03280},
	{48, 1, 102.3, 0.03300},
	{54, 1, 105.6, 0.03320},
	{60, 1, 108.9, 0.03340},
}

// ===== WEIGHT-FOR-AGE (kg) =====

var wazBoys = []ReferenceRow{
	{0, 0.3487, 3.3, 0.14602},
	{1, 0.2297, 4.5, 0.13395},
	{2, 0.1970, 5.6, 0.12385},
	{3, 0.1738, 6.4, 0.11727},
	{4, 0.1553, 7.0, 0.11316},
	{5, 0.1395, 7.5, 0.11080},
	{6, 0.1257, 7.9, 0.10958},
	{7, 0.1134, 8.3, 0.10902},
	{8, 0.1021, 8.6, 0.10882},
	{9, 0.0917, 8.9, 0.10881},
	{10, 0.0820, 9.2, 0.10891},
	{11, 0.0730, 9.4, 0.10906},
	{12, 0.0644, 9.6, 0.10925},
	{18, 0.0212, 10.9, 0.11080},
	{24, -0.0011, 12.2, 0.11200},
	{30, -0.0168, 13.3, 0.11310},
	{36, -0.0275, 14.3, 0.11410},
	{42, -0.0345, 15.3, 0.11510},
	{48, -0.0388, 16.3, 0.11600},
	{54, -0.0412, 17.3, 0.11690},
	{60, -0.0422, 18.3, 0.11770},
}

var wazGirls = []ReferenceRow{
	{0, 0.3809, 3.2, 0.14171},
	{1, 0.1714, 4.2, 0.13724},
	{2, 0.0962, 5.1, 0.13000},
	{3, 0.0402, 5.8, 0.12619},
	{4, -0.0050, 6.4, 0.12402},
	{5, -0.0423, 6.9, 0.12274},
	{6, -0.0739, 7.3, 0.12204},
	{7, -0.1014, 7.6, 0.12178},
	{8, -0.1258, 7.9, 0.12181},
	{9, -0.1478, 8.2, 0.12199},
	{10, -0.1679, 8.5, 0.12223},
	{11, -0.1865, 8.7, 0.12247},
	{12, -0.2039, 8.9, 0.12268},
	{18, -0.2714, 10.2, 0.12450},
	{24, -0.3096, 11.5, 0.12600},
	{30, -0.3314, 12.7, 0.12750},
	{36, -0.3421, 13.9, 0.12900},
	{42, -0.3456, 15.0, 0.13050},
	{48, -0.3442, 16.1, 0.13200},
	{54, -0.3395, 17.2, 0.13350},
	{60, -0.3325, 18.2, 0.13500},
}
