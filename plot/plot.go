// Package plot composes the pipeline of the chart variants: load a
// delimited source, coerce the named fields, derive the encoding scales
// and hand the result to a renderer. Every call recomputes everything;
// nothing persists between renders.
package plot

import (
	"github.com/tabviz/chartkit"
	"github.com/tabviz/chartkit/dataset"
	"github.com/tabviz/chartkit/internal/logger"
)

const (
	defaultWidth  = 600
	defaultHeight = 400
	defaultTicks  = 5
)

var defaultMargin = chartkit.Padding{
	Top:    40,
	Right:  40,
	Bottom: 40,
	Left:   40,
}

// Options is the per-call display surface: mount id, dimensions, margin
// and axis visibility. There is no other configuration channel.
type Options struct {
	Mount  string
	Width  float64
	Height float64
	Margin chartkit.Padding
	XAxis  bool
	YAxis  bool
	Ticks  int
}

func (o *Options) setDefaults() {
	if o.Width <= 0 {
		o.Width = defaultWidth
	}
	if o.Height <= 0 {
		o.Height = defaultHeight
	}
	if o.Margin == (chartkit.Padding{}) {
		o.Margin = defaultMargin
	}
	if o.Ticks <= 0 {
		o.Ticks = defaultTicks
	}
}

func (o Options) innerWidth() float64 {
	return o.Width - o.Margin.Horizontal()
}

func (o Options) innerHeight() float64 {
	return o.Height - o.Margin.Vertical()
}

type Plotter struct {
	Loader  *dataset.Loader
	Log     *logger.Logger
	Policy  dataset.Coercion
	Palette chartkit.Palette
}

func New() *Plotter {
	return &Plotter{
		Loader:  dataset.NewLoader(),
		Log:     logger.FromEnv("plot"),
		Policy:  dataset.CoerceDrop,
		Palette: chartkit.Category10,
	}
}

// lineScales builds the shared scale pair of the line variants: x spans
// the observed [min, max] of the key field, y the [0, max] magnitude of
// the value samples so zero stays visible.
func lineScales(xs, ys []float64, opt Options) (chartkit.Scaler[float64], chartkit.Scaler[float64]) {
	x := chartkit.NumberScaler(chartkit.ObservedDomain(xs), chartkit.NewRange(0, opt.innerWidth()))
	y := chartkit.NumberScaler(chartkit.MagnitudeDomain(ys), chartkit.NewRange(opt.innerHeight(), 0))
	return x, y
}

func lineChart(opt Options, x chartkit.Scaler[float64], y chartkit.Scaler[float64]) chartkit.Chart[float64, float64] {
	ch := chartkit.Chart[float64, float64]{
		ID:      opt.Mount,
		Width:   opt.Width,
		Height:  opt.Height,
		Padding: opt.Margin,
	}
	if opt.XAxis {
		ch.Bottom = chartkit.NumberAxis{
			Orientation:    chartkit.OrientBottom,
			Ticks:          opt.Ticks,
			Scaler:         x,
			WithInnerTicks: true,
			WithLabelTicks: true,
		}
	}
	if opt.YAxis {
		ch.Left = chartkit.NumberAxis{
			Orientation:    chartkit.OrientLeft,
			Ticks:          opt.Ticks,
			Scaler:         y,
			WithInnerTicks: true,
			WithLabelTicks: true,
			WithOuterTicks: true,
		}
	}
	return ch
}

// pieScales centers the pie in the drawing area; the scales only carry the
// area dimensions to the renderer.
func pieScales(labels []string, values []float64, opt Options) (chartkit.Scaler[string], chartkit.Scaler[float64]) {
	x := chartkit.StringScaler(labels, chartkit.NewRange(0, opt.innerWidth()))
	y := chartkit.NumberScaler(chartkit.MagnitudeDomain(values), chartkit.NewRange(0, opt.innerHeight()))
	return x, y
}

func (o Options) radius() float64 {
	r := o.innerWidth()
	if h := o.innerHeight(); h < r {
		r = h
	}
	return r / 2
}
