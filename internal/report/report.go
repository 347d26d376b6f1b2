// Package report renders batch quality assessments as a self-contained
// HTML page of echarts plots: the per-frame aggregate against its
// acceptance floor, and the four metric series that explain it.
package report

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/fathom-robotics/depthgate/internal/depth"
)

// Frame is one assessed frame in report order.
type Frame struct {
	Label     string // usually the source file name
	Score     float64
	Breakdown depth.Breakdown
	Accepted  bool
}

// Write renders the report HTML for the given frames and thresholds.
func Write(w io.Writer, frames []Frame, th depth.Thresholds) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to report")
	}

	labels := make([]string, len(frames))
	accepted := 0
	for i, f := range frames {
		labels[i] = f.Label
		if f.Accepted {
			accepted++
		}
	}

	page := components.NewPage()
	page.PageTitle = "Depth Frame Quality Report"
	page.AddCharts(
		scoreChart(labels, frames, th, accepted),
		metricChart(labels, frames, th),
	)
	return page.Render(w)
}

func scoreChart(labels []string, frames []Frame, th depth.Thresholds, accepted int) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Aggregate quality per frame",
			Subtitle: fmt.Sprintf("accepted %d/%d, quality floor %.2f", accepted, len(frames), th.MinQuality),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1, Name: "score"}),
	)

	data := make([]opts.BarData, len(frames))
	for i, f := range frames {
		color := "#c23531" // rejected
		if f.Accepted {
			color = "#2f9e44"
		}
		data[i] = opts.BarData{Value: f.Score, ItemStyle: &opts.ItemStyle{Color: color}}
	}
	bar.SetXAxis(labels).AddSeries("score", data)
	return bar
}

func metricChart(labels []string, frames []Frame, th depth.Thresholds) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "100%", Height: "480px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Metric breakdown per frame",
			Subtitle: fmt.Sprintf("coverage floor %.2f, smoothness floor %.2f", th.MinCoverage, th.MinSmoothness),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 1, Name: "score"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	series := []struct {
		name string
		pick func(depth.Breakdown) float64
	}{
		{"coverage", func(b depth.Breakdown) float64 { return b.Coverage }},
		{"smoothness", func(b depth.Breakdown) float64 { return b.Smoothness }},
		{"edge_quality", func(b depth.Breakdown) float64 { return b.EdgeQuality }},
		{"noise_level", func(b depth.Breakdown) float64 { return b.NoiseLevel }},
	}

	line.SetXAxis(labels)
	for _, s := range series {
		data := make([]opts.LineData, len(frames))
		for i, f := range frames {
			data[i] = opts.LineData{Value: s.pick(f.Breakdown)}
		}
		line.AddSeries(s.name, data)
	}
	return line
}
