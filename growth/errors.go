/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package growth

import "errors"

var (
	ErrUnknownSex       = errors.New("unknown sex")
	ErrAgeOutOfRange    = errors.New("age must be between 0 and 60 months")
	ErrHeightOutOfRange = errors.New("height must be between 40 and 150 cm")
	ErrWeightOutOfRange = errors.New("weight must be between 1 and 50 kg")
	ErrRecordNotFound   = errors.New("growth record not found")
	ErrNotFinite        = errors.New("measurement is not a finite number")
)
