/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package utils

import "errors"

// ErrEmptyOrgDocument is returned when there is no org content to render.
var ErrEmptyOrgDocument = errors.New("org document is empty")
