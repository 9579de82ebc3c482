// Package raster renders the computed encodings to PNG through
// wcharczuk/go-chart, as the alternative backend to the SVG canvas.
package raster

import (
	"io"
	"math"
	"strings"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/tabviz/chartkit"
)

type Series struct {
	Name string
	XS   []float64
	YS   []float64
}

func LinePNG(w io.Writer, title string, width, height int, series ...Series) error {
	graph := chart.Chart{
		Title:  title,
		Width:  width,
		Height: height,
	}
	for i, s := range series {
		graph.Series = append(graph.Series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: s.XS,
			YValues: s.YS,
			Style: chart.Style{
				StrokeColor: paletteColor(i),
			},
		})
	}
	return graph.Render(chart.PNG, w)
}

func PiePNG(w io.Writer, title string, width, height int, wedges []chartkit.Wedge) error {
	pie := chart.PieChart{
		Title:  title,
		Width:  width,
		Height: height,
	}
	for _, wd := range wedges {
		if math.IsNaN(wd.Value) || wd.Value <= 0 {
			continue
		}
		pie.Values = append(pie.Values, chart.Value{
			Value: wd.Value,
			Label: wd.Label,
		})
	}
	return pie.Render(chart.PNG, w)
}

func paletteColor(i int) drawing.Color {
	hex := chartkit.Category10.Color(i)
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}
