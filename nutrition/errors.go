/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package nutrition

import "errors"

var (
	ErrEmptyGuide       = errors.New("nutrition guide has no groups")
	ErrMissingGroupID   = errors.New("nutrition group is missing an id")
	ErrInvalidAgeBounds = errors.New("nutrition group age bounds are invalid")
)
