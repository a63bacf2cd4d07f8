/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package templates

import "embed"

// Templates contains the page templates and the head/foot partials.
//
//go:embed *.html
var Templates embed.FS
