// Package chart makes quickly generating graphs easy: it renders value
// series and sampled functions to PNG line graphs, wrapping go-chart. It is a
// convenience layer over the rest of the library, which has no dependency on
// it.
package chart

import (
	"fmt"
	"os"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/Areteos/arete-utilities/logger"
)

// LineInfo describes one plotted series of y values. A zero Color leaves the
// renderer's per-series palette in charge, and a zero Weight uses the default
// stroke width. Series with an empty Name are left out of the legend.
type LineInfo struct {
	Name   string
	Values []float64
	Color  drawing.Color
	Weight float64
}

// FunctionInfo describes a function to plot by sampling it over the graph's
// domain. Color and Weight behave as in LineInfo.
type FunctionInfo struct {
	Name     string
	Function func(float64) float64
	Color    drawing.Color
	Weight   float64
}

// Options control graph decoration.
type Options struct {
	// Logarithmic plots the y axis on a log scale.
	Logarithmic bool
	XAxisLabel  string
	YAxisLabel  string
	ShowLegend  bool
}

// DrawLineGraph renders the given series against shared x values and writes
// the graph as a PNG to outputPath. Every series must have exactly one value
// per x value.
func DrawLineGraph(title string, series []LineInfo, xValues []float64, opts Options, outputPath string) error {
	graph := chart.Chart{
		Title: title,
		XAxis: chart.XAxis{Name: opts.XAxisLabel},
		YAxis: chart.YAxis{Name: opts.YAxisLabel},
	}
	if opts.Logarithmic {
		graph.YAxis.Range = &chart.LogarithmicRange{}
	}

	for _, info := range series {
		if len(info.Values) != len(xValues) {
			return fmt.Errorf("chart: series %q has %d values for %d x values", info.Name, len(info.Values), len(xValues))
		}
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    info.Name,
			XValues: xValues,
			YValues: info.Values,
			Style: chart.Style{
				StrokeColor: info.Color,
				StrokeWidth: info.Weight,
			},
		})
	}

	if opts.ShowLegend {
		graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	}

	return render(graph, outputPath)
}

// DrawSimpleLineGraph renders a single unnamed series against its indices
// with no decoration, and writes the PNG to outputPath.
func DrawSimpleLineGraph(title string, values []float64, outputPath string) error {
	xValues := make([]float64, len(values))
	for i := range xValues {
		xValues[i] = float64(i)
	}
	return DrawLineGraph(title, []LineInfo{{Values: values}}, xValues, Options{}, outputPath)
}

// DrawFunctionGraph samples each function at intervals+1 evenly spaced
// points across [minimum, maximum], renders the resulting series, and writes
// the PNG to outputPath.
func DrawFunctionGraph(title string, functions []FunctionInfo, minimum, maximum float64, intervals int, opts Options, outputPath string) error {
	domainRange := maximum - minimum
	xValues := make([]float64, intervals+1)
	for i := range xValues {
		xValues[i] = minimum + float64(i)*(domainRange/float64(intervals))
	}

	series := make([]LineInfo, 0, len(functions))
	for _, info := range functions {
		values := make([]float64, len(xValues))
		for i, x := range xValues {
			values[i] = info.Function(x)
		}
		series = append(series, LineInfo{
			Name:   info.Name,
			Values: values,
			Color:  info.Color,
			Weight: info.Weight,
		})
	}

	return DrawLineGraph(title, series, xValues, opts, outputPath)
}

func render(graph chart.Chart, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("chart: %w", err)
	}
	defer file.Close()

	if err := graph.Render(chart.PNG, file); err != nil {
		return fmt.Errorf("chart: rendering %s: %w", outputPath, err)
	}
	logger.Get("chart").Info("rendered graph", logger.Fields(
		"path", outputPath,
		"series", len(graph.Series),
	))
	return nil
}
