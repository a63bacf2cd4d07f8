/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package pregnancy

import "errors"

var (
	ErrMotherAgeOutOfRange = errors.New("mother age must be between 10 and 60 years")
	ErrWeeksOutOfRange     = errors.New("pregnancy weeks must be between 1 and 42")
	ErrHeightOutOfRange    = errors.New("mother height must be between 100 and 220 cm")
	ErrWeightOutOfRange    = errors.New("weight must be between 25 and 200 kg")
	ErrANCVisitsOutOfRange = errors.New("antenatal care visits must be between 0 and 50")
)
