package web

import (
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type LineSeries struct {
	Name   string
	Values []float64
}

// InteractiveLine writes a self-contained HTML page with an echarts line
// chart. Clicking a legend entry toggles its series, which is the
// browser-side equivalent of the checkbox-driven multi-line chart.
func InteractiveLine(w io.Writer, title string, keys []float64, series []LineSeries) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(true),
		}),
	)
	xs := make([]string, len(keys))
	for i, k := range keys {
		xs[i] = strconv.FormatFloat(k, 'f', -1, 64)
	}
	line.SetXAxis(xs)
	for _, s := range series {
		data := make([]opts.LineData, len(s.Values))
		for i, v := range s.Values {
			data[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, data)
	}
	return line.Render(w)
}
