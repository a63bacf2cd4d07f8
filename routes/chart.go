/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"bytes"
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/budistudiobank-hash/tanggap-cinta-anak/growth"
)

const chartDateLayout = "2006-01-02"

// generateGrowthChart renders HAZ, WAZ and WHZ over time as an HTML fragment.
// Returns an empty string when there is nothing to plot.
func generateGrowthChart(records []growth.Record) (string, error) {
	if len(records) == 0 {
		return "", nil
	}

	xAxis := make([]string, 0, len(records))
	haz := make([]opts.LineData, 0, len(records))
	waz := make([]opts.LineData, 0, len(records))
	whz := make([]opts.LineData, 0, len(records))

	for _, rec := range records {
		xAxis = append(xAxis, rec.Date.Format(chartDateLayout))
		haz = append(haz, opts.LineData{Value: chartValue(rec.HAZ)})
		waz = append(waz, opts.LineData{Value: chartValue(rec.WAZ)})
		whz = append(whz, opts.LineData{Value: chartValue(rec.WHZ)})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: "Growth Z-scores",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
			Top:  "bottom",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Z-score",
		}),
	)

	// Stunting cut-offs at -2 and -3 SD.
	thresholds := func(s *charts.SingleSeries) {
		s.MarkLines = &opts.MarkLines{
			Data: []interface{}{
				opts.MarkLineNameYAxisItem{Name: "-2 SD", YAxis: -2},
				opts.MarkLineNameYAxisItem{Name: "-3 SD", YAxis: -3},
			},
			MarkLineStyle: opts.MarkLineStyle{
				Symbol: []string{"none", "none"},
				LineStyle: &opts.LineStyle{
					Color: "rgba(200, 60, 60, 0.6)",
					Type:  "dashed",
					Width: 1.5,
				},
			},
		}
	}

	lineOpts := charts.WithLineChartOpts(opts.LineChart{
		Smooth:     opts.Bool(false),
		ShowSymbol: opts.Bool(true),
	})

	line.SetXAxis(xAxis).
		AddSeries("HAZ", haz, lineOpts, thresholds).
		AddSeries("WAZ", waz, lineOpts).
		AddSeries("WHZ", whz, lineOpts)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		return "", fmt.Errorf("failed to render growth chart: %w", err)
	}

	return buf.String(), nil
}

// chartValue rounds to two decimals and drops non-finite points.
func chartValue(v float64) interface{} {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}

	return math.Round(v*100) / 100
}
