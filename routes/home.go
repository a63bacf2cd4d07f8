/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"

	"github.com/flamego/flamego"
	"github.com/flamego/template"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
)

// Home renders the landing page with a short summary of saved measurements.
func Home(c flamego.Context, t template.Template, data template.Data, store growth.HistoryStore) {
	records, err := store.List(c.Request().Context())
	if err != nil {
		webLogger.Warn("Failed to list growth records", "error", err)
	} else {
		data["RecordCount"] = len(records)
		if len(records) > 0 {
			data["LatestRecord"] = records[len(records)-1]
		}
	}

	data["IsHome"] = true
	data["PageTitle"] = "Tanggap Cinta Anak"
	t.HTML(http.StatusOK, "home")
}
