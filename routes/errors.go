/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import "errors"

var (
	errMissingField     = errors.New("missing field")
	errInvalidNumber    = errors.New("invalid number")
	errInvalidRecordID  = errors.New("invalid record id")
	errUnknownAgeGroup  = errors.New("unknown age group")
	errInvalidJSONInput = errors.New("invalid request body")
)
