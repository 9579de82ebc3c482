package plot

import (
	"context"
	"fmt"
	"io"

	"github.com/tabviz/chartkit"
	"github.com/tabviz/chartkit/dataset"
)

// Line renders a single-series line chart from two numeric columns of the
// source. On load failure it logs and returns the error without touching
// the writer.
func (p *Plotter) Line(ctx context.Context, w io.Writer, source, xfield, yfield string, opt Options) error {
	opt.setDefaults()
	frame, err := p.Loader.Load(ctx, source)
	if err != nil {
		p.Log.Errorf("line %s: %s", source, err)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var (
		rows     = frame.Numbers(p.Policy, xfield, yfield)
		xs       = dataset.Column(rows, xfield)
		ys       = dataset.Column(rows, yfield)
		xsc, ysc = lineScales(xs, ys, opt)
	)
	serie := chartkit.Serie[float64, float64]{
		Title: yfield,
		Color: p.Palette.Color(0),
		X:     xsc,
		Y:     ysc,
		Renderer: chartkit.LineRenderer[float64, float64]{
			SkipMissing: true,
		},
	}
	for i := range xs {
		serie.Points = append(serie.Points, chartkit.NumberPoint(xs[i], ys[i]))
	}
	ch := lineChart(opt, xsc, ysc)
	return ch.Render(w, serie)
}

// SeriesSpec names one line of a multi-series chart: the label shown to
// the user, the stroke color and the source column holding the values. It
// replaces the original hard-wired checkbox lookups; whoever owns the
// toggle UI passes a visibility query alongside.
type SeriesSpec struct {
	Label string
	Color string
	Field string
}

// MultiLine renders several series over one shared scale pair. visible is
// consulted fresh for every series on every call, so visibility is a pure
// function of the caller's current UI state; scales always derive from
// all series so toggling never shifts the encoding.
func (p *Plotter) MultiLine(ctx context.Context, w io.Writer, source, keyField string, specs []SeriesSpec, visible func(string) bool, opt Options) error {
	opt.setDefaults()
	if len(specs) == 0 {
		return fmt.Errorf("multiline %s: no series given", source)
	}
	frame, err := p.Loader.Load(ctx, source)
	if err != nil {
		p.Log.Errorf("multiline %s: %s", source, err)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	series, xsc, ysc := p.multiSeries(frame, keyField, specs, opt)

	ch := lineChart(opt, xsc, ysc)
	for i, spec := range specs {
		ch.Legend = append(ch.Legend, chartkit.LegendItem{
			Label: spec.Label,
			Color: p.specColor(spec, i),
		})
	}
	var shown []chartkit.Serie[float64, float64]
	for i, s := range series {
		if visible != nil && !visible(specs[i].Label) {
			continue
		}
		shown = append(shown, s)
	}
	return ch.Render(w, shown...)
}

// RenderSeries renders exactly one series of a multi-series chart, axes
// and legend omitted. A toggle handler calls this to refresh a single
// path; identical inputs give identical output bytes.
func (p *Plotter) RenderSeries(ctx context.Context, w io.Writer, source, keyField string, specs []SeriesSpec, label string, opt Options) error {
	opt.setDefaults()
	frame, err := p.Loader.Load(ctx, source)
	if err != nil {
		p.Log.Errorf("series %s %s: %s", source, label, err)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	series, _, _ := p.multiSeries(frame, keyField, specs, opt)
	for i, spec := range specs {
		if spec.Label != label {
			continue
		}
		ch := chartkit.Chart[float64, float64]{
			ID:      opt.Mount,
			Width:   opt.Width,
			Height:  opt.Height,
			Padding: opt.Margin,
		}
		return ch.Render(w, series[i])
	}
	return fmt.Errorf("series %s: no series labelled %q", source, label)
}

func (p *Plotter) multiSeries(frame dataset.Frame, keyField string, specs []SeriesSpec, opt Options) ([]chartkit.Serie[float64, float64], chartkit.Scaler[float64], chartkit.Scaler[float64]) {
	fields := make([]string, 0, len(specs)+1)
	fields = append(fields, keyField)
	for _, s := range specs {
		fields = append(fields, s.Field)
	}
	var (
		rows = frame.Numbers(p.Policy, fields...)
		xs   = dataset.Column(rows, keyField)
		pool []float64
	)
	for _, s := range specs {
		pool = append(pool, dataset.Column(rows, s.Field)...)
	}
	xsc, ysc := lineScales(xs, pool, opt)

	series := make([]chartkit.Serie[float64, float64], len(specs))
	for i, spec := range specs {
		serie := chartkit.Serie[float64, float64]{
			Title: spec.Label,
			Color: p.specColor(spec, i),
			X:     xsc,
			Y:     ysc,
			Renderer: chartkit.LineRenderer[float64, float64]{
				SkipMissing: true,
			},
		}
		ys := dataset.Column(rows, spec.Field)
		for j := range xs {
			serie.Points = append(serie.Points, chartkit.NumberPoint(xs[j], ys[j]))
		}
		series[i] = serie
	}
	return series, xsc, ysc
}

func (p *Plotter) specColor(spec SeriesSpec, i int) string {
	if spec.Color != "" {
		return spec.Color
	}
	return p.Palette.Color(i)
}
