package plot

import (
	"context"
	"io"

	"github.com/tabviz/chartkit"
	"github.com/tabviz/chartkit/dataset"
)

// Pie renders one slice per record, the slice value taken from a single
// numeric column, with a legend listing every record.
func (p *Plotter) Pie(ctx context.Context, w io.Writer, source, labelField, valueField string, opt Options) error {
	opt.setDefaults()
	frame, err := p.Loader.Load(ctx, source)
	if err != nil {
		p.Log.Errorf("pie %s: %s", source, err)
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var (
		rows   = frame.Numbers(p.Policy, valueField)
		labels = dataset.Labels(rows, labelField)
		values = dataset.Column(rows, valueField)
	)
	return p.renderPie(w, labels, values, true, false, opt)
}

// ColumnPie sums each of the given numeric columns across all rows into
// one slice per column. Slice labels are emitted with the slice-label
// class so the host page reveals them on hover only. A load failure is
// surfaced as a visible inline message in the mount instead of a chart.
func (p *Plotter) ColumnPie(ctx context.Context, w io.Writer, source string, fields []string, opt Options) error {
	opt.setDefaults()
	frame, err := p.Loader.Load(ctx, source)
	if err != nil {
		p.Log.Errorf("columnpie %s: %s", source, err)
		ch := chartkit.Chart[string, float64]{
			ID:     opt.Mount,
			Width:  opt.Width,
			Height: opt.Height,
		}
		if rerr := ch.RenderFailure(w, err); rerr != nil {
			return rerr
		}
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	var (
		rows   = frame.Numbers(p.Policy, fields...)
		totals = dataset.Sum(rows, fields...)
		values = make([]float64, len(fields))
	)
	for i, name := range fields {
		values[i] = totals[name]
	}
	return p.renderPie(w, fields, values, false, true, opt)
}

func (p *Plotter) renderPie(w io.Writer, labels []string, values []float64, withLegend, hoverLabels bool, opt Options) error {
	xsc, ysc := pieScales(labels, values, opt)
	serie := chartkit.Serie[string, float64]{
		Title: opt.Mount,
		X:     xsc,
		Y:     ysc,
		Renderer: chartkit.PieRenderer[string, float64]{
			Fill:        p.Palette,
			OuterRadius: opt.radius(),
			WithLabels:  hoverLabels,
			LabelClass:  "slice-label",
		},
	}
	for i := range labels {
		serie.Points = append(serie.Points, chartkit.CategoryPoint(labels[i], values[i]))
	}
	ch := chartkit.Chart[string, float64]{
		ID:      opt.Mount,
		Width:   opt.Width,
		Height:  opt.Height,
		Padding: opt.Margin,
	}
	if withLegend {
		for i, label := range labels {
			ch.Legend = append(ch.Legend, chartkit.LegendItem{
				Label: label,
				Color: p.Palette.Color(i),
			})
		}
	}
	return ch.Render(w, serie)
}
