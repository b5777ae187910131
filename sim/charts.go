package main

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

//
// ===== charts =====
//

func renderBarChart(path, title, yLabel string, labels []string, values []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(24))
	if err != nil {
		return err
	}
	p.Add(bars)
	p.NominalX(labels...)

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

// errorBarData pairs bar heights with symmetric ±1 SD error bars.
type errorBarData struct {
	plotter.XYs
	plotter.YErrors
}

func renderErrorBarChart(path, title, yLabel string, labels []string, values, stds []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	bars, err := plotter.NewBarChart(plotter.Values(values), vg.Points(24))
	if err != nil {
		return err
	}
	p.Add(bars)

	data := errorBarData{
		XYs:     make(plotter.XYs, len(values)),
		YErrors: make(plotter.YErrors, len(values)),
	}
	for i, v := range values {
		data.XYs[i] = plotter.XY{X: float64(i), Y: v}
		data.YErrors[i] = struct{ Low, High float64 }{Low: stds[i], High: stds[i]}
	}
	errBars, err := plotter.NewYErrorBars(data)
	if err != nil {
		return err
	}
	p.Add(errBars)
	p.NominalX(labels...)

	return p.Save(10*vg.Inch, 5*vg.Inch, path)
}

func renderLineChart(path, title, yLabel string, labels []string, values []float64) error {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel

	xys := make(plotter.XYs, len(values))
	for i, v := range values {
		xys[i] = plotter.XY{X: float64(i), Y: v}
	}
	if err := plotutil.AddLinePoints(p, xys); err != nil {
		return err
	}
	p.NominalX(labels...)

	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}

// renderCharts writes the three summary PNGs. complexityOrder is the
// hand-declared display ordering, not a measured property.
func renderCharts(dir string, bots []BotSummary, complexityOrder []string) error {
	labels := make([]string, len(bots))
	winRates := make([]float64, len(bots))
	avgDiffs := make([]float64, len(bots))
	stdDiffs := make([]float64, len(bots))
	byLabel := make(map[string]BotSummary, len(bots))
	for i, b := range bots {
		labels[i] = b.Label
		winRates[i] = b.WinRate
		avgDiffs[i] = b.AvgDiff
		stdDiffs[i] = b.StdDiff
		byLabel[b.Label] = b
	}

	if err := renderBarChart(
		filepath.Join(dir, "win_rate_per_bot.png"),
		"Win Rate per Bot", "Win Rate", labels, winRates,
	); err != nil {
		return fmt.Errorf("win rate chart: %w", err)
	}

	if err := renderErrorBarChart(
		filepath.Join(dir, "avg_point_diff_per_bot.png"),
		"Average Point Differential per Bot (±1 SD)", "Average Point Differential",
		labels, avgDiffs, stdDiffs,
	); err != nil {
		return fmt.Errorf("point diff chart: %w", err)
	}

	complexityRates := make([]float64, len(complexityOrder))
	for i, label := range complexityOrder {
		b, ok := byLabel[label]
		if !ok {
			return fmt.Errorf("complexity order names unknown bot %q", label)
		}
		complexityRates[i] = b.WinRate
	}
	if err := renderLineChart(
		filepath.Join(dir, "win_rate_by_complexity.png"),
		"Win Rate by Bot Complexity", "Win Rate", complexityOrder, complexityRates,
	); err != nil {
		return fmt.Errorf("complexity chart: %w", err)
	}
	return nil
}
