// Package chart renders simulation results as interactive HTML charts.
package chart

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"sip-planner/domain"
)

const (
	Title = "SIP Investment Growth with Annual Increase"

	SeriesPortfolio    = "Portfolio Value"
	SeriesInvested     = "Total Invested"
	SeriesContribution = "Monthly SIP Amount"
)

// New builds a dual-axis line chart: amounts on the left axis, the monthly SIP on the right.
func New(result domain.SimulationResult) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: Title,
			Width:     "100%",
			Height:    "520px",
		}),
		charts.WithTitleOpts(opts.Title{Title: Title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "bottom"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Years", Type: "category"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Amount", Type: "value"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "inside"}),
	)
	line.ExtendYAxis(opts.YAxis{
		Name: SeriesContribution,
		Type: "value",
	})

	line.SetXAxis(XAxis(result)).
		AddSeries(SeriesPortfolio, lineData(result.Portfolio),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)})).
		AddSeries(SeriesInvested, lineData(result.Invested),
			charts.WithLineChartOpts(opts.LineChart{ShowSymbol: opts.Bool(false)})).
		AddSeries(SeriesContribution, lineData(result.Contribution),
			charts.WithLineChartOpts(opts.LineChart{YAxisIndex: 1, ShowSymbol: opts.Bool(false)}),
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed", Color: "red"}))

	return line
}

// Render writes the chart as a standalone HTML page.
func Render(w io.Writer, result domain.SimulationResult) error {
	return New(result).Render(w)
}

// XAxis labels every month index with the elapsed years.
func XAxis(result domain.SimulationResult) []string {
	labels := make([]string, len(result.Portfolio))
	for i := range labels {
		labels[i] = strconv.FormatFloat(result.YearsAt(i), 'f', 2, 64)
	}
	return labels
}

func lineData(values []float64) []opts.LineData {
	data := make([]opts.LineData, len(values))
	for i, v := range values {
		data[i] = opts.LineData{Value: v}
	}
	return data
}
