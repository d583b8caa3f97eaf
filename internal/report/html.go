package report

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"planetgen/internal/calibrate"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// CalibrationHTML renders an interactive scatter of the calibration samples
// to w.
func CalibrationHTML(w io.Writer, title string, res calibrate.Result) error {
	if len(res.Samples) == 0 {
		return ErrNoData
	}
	data := make([]opts.ScatterData, 0, len(res.Samples))
	for _, s := range res.Samples {
		data = append(data, opts.ScatterData{Value: []interface{}{s.Rate, s.Fitness}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1000px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Rate calibration", Subtitle: fmt.Sprintf("%s candidates=%d chosen=%.3f fitness=%.3f", title, len(data), res.Rate, res.Fitness)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "rate", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "fitness", Min: 0, Max: 1, NameLocation: "middle", NameGap: 30}),
	)
	scatter.AddSeries("candidates", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 4}))
	scatter.AddSeries("chosen", []opts.ScatterData{{Value: []interface{}{res.Rate, res.Fitness}}},
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 14}))

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		return fmt.Errorf("render calibration chart: %w", err)
	}
	_, err := w.Write(buf.Bytes())
	return err
}

// WriteCalibrationHTML renders the calibration chart into a file at path.
func WriteCalibrationHTML(path, title string, res calibrate.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := CalibrationHTML(f, title, res); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
