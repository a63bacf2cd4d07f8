/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"encoding/base64"
	"errors"
	"fmt"
	htmltemplate "html/template"
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
)

// ListHistory renders saved measurements with a Z-score chart.
func ListHistory(c flamego.Context, t template.Template, data template.Data, store growth.HistoryStore) {
	data["IsHistory"] = true
	data["PageTitle"] = "Growth history"

	records, err := store.List(c.Request().Context())
	if err != nil {
		webLogger.Error("Failed to list growth records", "error", err)
		data["Error"] = "Failed to load growth history"
		t.HTML(http.StatusInternalServerError, "history")

		return
	}

	data["Records"] = records

	chart, err := generateGrowthChart(records)
	if err != nil {
		webLogger.Warn("Failed to generate growth chart", "error", err)
	} else if chart != "" {
		data["Chart"] = htmltemplate.HTML(chart) //nolint:gosec // rendered by go-echarts from numeric data
	}

	t.HTML(http.StatusOK, "history")
}

// ViewHistoryRecord renders one saved measurement with a shareable QR code.
func ViewHistoryRecord(c flamego.Context, s session.Session, t template.Template, data template.Data, store growth.HistoryStore) {
	data["IsHistory"] = true
	data["PageTitle"] = "Growth record"

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		SetErrorFlash(s, "Invalid record")
		c.Redirect("/history", http.StatusSeeOther)

		return
	}

	rec, err := store.Get(c.Request().Context(), id)
	if err != nil {
		if !errors.Is(err, growth.ErrRecordNotFound) {
			webLogger.Error("Failed to load growth record", "id", id, "error", err)
		}

		SetErrorFlash(s, "Record not found")
		c.Redirect("/history", http.StatusSeeOther)

		return
	}

	data["Record"] = rec
	data["Stunting"] = rec.Stunting()
	data["IdealWeight"] = growth.IdealWeightRange(rec.AgeMonths, rec.Sex)
	data["WeightStatus"] = growth.ClassifyWeightStatus(rec.Weight, rec.AgeMonths, rec.Sex)

	qr, err := generateQRCodeBase64(recordSummary(*rec))
	if err != nil {
		webLogger.Warn("Failed to generate record QR code", "id", id, "error", err)
	} else {
		data["QRCode"] = qr
	}

	t.HTML(http.StatusOK, "history_record")
}

// DeleteHistoryRecord removes one saved measurement.
func DeleteHistoryRecord(c flamego.Context, s session.Session, store growth.HistoryStore) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		SetErrorFlash(s, "Invalid record")
		c.Redirect("/history", http.StatusSeeOther)

		return
	}

	if err := store.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, growth.ErrRecordNotFound) {
			SetErrorFlash(s, "Record not found")
		} else {
			webLogger.Error("Failed to delete growth record", "id", id, "error", err)
			SetErrorFlash(s, "Failed to delete record")
		}

		c.Redirect("/history", http.StatusSeeOther)

		return
	}

	SetSuccessFlash(s, "Record deleted")
	c.Redirect("/history", http.StatusSeeOther)
}

// ClearHistory removes every saved measurement.
func ClearHistory(c flamego.Context, s session.Session, store growth.HistoryStore) {
	if err := store.Clear(c.Request().Context()); err != nil {
		webLogger.Error("Failed to clear growth history", "error", err)
		SetErrorFlash(s, "Failed to clear history")
		c.Redirect("/history", http.StatusSeeOther)

		return
	}

	SetSuccessFlash(s, "History cleared")
	c.Redirect("/history", http.StatusSeeOther)
}

// recordSummary is the plain-text payload encoded in a record's QR code.
func recordSummary(rec growth.Record) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Date: %s\n", rec.Date.Format(chartDateLayout))
	fmt.Fprintf(&b, "Age: %.1f months\n", rec.AgeMonths)
	fmt.Fprintf(&b, "Sex: %s\n", rec.Sex)
	fmt.Fprintf(&b, "Height: %.1f cm\n", rec.Height)
	fmt.Fprintf(&b, "Weight: %.1f kg\n", rec.Weight)
	fmt.Fprintf(&b, "HAZ: %.2f\n", rec.HAZ)
	fmt.Fprintf(&b, "WAZ: %.2f\n", rec.WAZ)
	fmt.Fprintf(&b, "WHZ: %.2f\n", rec.WHZ)
	fmt.Fprintf(&b, "Status: %s", rec.Status)

	return b.String()
}

func generateQRCodeBase64(value string) (string, error) {
	png, err := qrcode.Encode(value, qrcode.Medium, 256)
	if err != nil {
		return "", fmt.Errorf("failed to generate qr code: %w", err)
	}

	return base64.StdEncoding.EncodeToString(png), nil
}
