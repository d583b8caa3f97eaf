// Package report draws charts of a planet run: the calibration search and the
// temperature distribution.
package report

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"planetgen/internal/calibrate"
	"planetgen/internal/habitability"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrNoData is returned when there is nothing to chart.
var ErrNoData = errors.New("report: no data")

var (
	sampleColor = color.RGBA{R: 90, G: 110, B: 200, A: 180}
	bestColor   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	coldColor   = color.RGBA{B: 255, A: 255}
	hotColor    = color.RGBA{R: 255, A: 255}
)

// CalibrationPlot scatters every evaluated rate against its fitness and
// marks the chosen rate.
func CalibrationPlot(res calibrate.Result) (*plot.Plot, error) {
	if len(res.Samples) == 0 {
		return nil, ErrNoData
	}
	pts := make(plotter.XYs, len(res.Samples))
	for i, s := range res.Samples {
		pts[i] = plotter.XY{X: s.Rate, Y: s.Fitness}
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Rate calibration (%d candidates)", len(res.Samples))
	p.X.Label.Text = "Rate"
	p.Y.Label.Text = "Band fitness"
	p.Y.Min = 0
	p.Y.Max = 1

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = sampleColor
	scatter.GlyphStyle.Radius = vg.Points(1.5)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)
	p.Legend.Add("candidate", scatter)

	best, err := plotter.NewScatter(plotter.XYs{{X: res.Rate, Y: res.Fitness}})
	if err != nil {
		return nil, err
	}
	best.GlyphStyle.Color = bestColor
	best.GlyphStyle.Radius = vg.Points(4)
	best.GlyphStyle.Shape = draw.CrossGlyph{}
	p.Add(best)
	p.Legend.Add(fmt.Sprintf("chosen %.1f", res.Rate), best)

	p.Legend.Top = true
	p.Legend.Left = false
	p.Legend.XOffs = -10
	p.Legend.YOffs = -10
	return p, nil
}

// HeatHistogram bins the calibrated temperatures in kelvin and marks the
// habitable bounds. Non-finite temperatures are skipped.
func HeatHistogram(kelvin []float64, bins int) (*plot.Plot, error) {
	values := make(plotter.Values, 0, len(kelvin))
	for _, k := range kelvin {
		if math.IsNaN(k) || math.IsInf(k, 0) {
			continue
		}
		values = append(values, k)
	}
	if len(values) == 0 {
		return nil, ErrNoData
	}
	if bins <= 0 {
		bins = 64
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Surface temperature (%d cells)", len(values))
	p.X.Label.Text = "Temperature (K)"
	p.Y.Label.Text = "Cells"

	hist, err := plotter.NewHist(values, bins)
	if err != nil {
		return nil, err
	}
	hist.FillColor = sampleColor
	p.Add(hist)

	top := 0.0
	for _, b := range hist.Bins {
		top = math.Max(top, b.Weight)
	}
	for _, bound := range []struct {
		kelvin float64
		label  string
		col    color.Color
	}{
		{habitability.LowTemp, "freezing", coldColor},
		{habitability.HighTemp, "boiling", hotColor},
	} {
		line, err := plotter.NewLine(plotter.XYs{{X: bound.kelvin, Y: 0}, {X: bound.kelvin, Y: top}})
		if err != nil {
			return nil, err
		}
		line.Color = bound.col
		line.Width = vg.Points(1)
		line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		p.Add(line)
		p.Legend.Add(bound.label, line)
	}
	p.Legend.Top = true
	return p, nil
}

// SavePNG writes p to path. The format follows the file extension.
func SavePNG(p *plot.Plot, path string) error {
	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save plot %s: %w", path, err)
	}
	return nil
}
