package chartkit

import (
	"math"

	"github.com/midbel/slices"
)

type TextPosition int

const (
	TextBefore TextPosition = 1 << iota
	TextAfter
)

type Renderer[T, U ScalerConstraint] interface {
	Render(Canvas, Serie[T, U])
}

// LineOps maps the points of a serie onto pixel coordinates and connects
// them with straight segments, in source order. Sorting by key is the
// caller's job. Points whose scaled y is NaN lift the pen when skipMissing
// is set and are dropped from the path otherwise.
func LineOps[T, U ScalerConstraint](serie Serie[T, U], skipMissing bool) []PathOp {
	var (
		ops []PathOp
		pen bool
		nan bool
	)
	for _, pt := range serie.Points {
		pos := NewPos(serie.X.Scale(pt.X), serie.Y.Scale(pt.Y))
		if math.IsNaN(pos.X) || math.IsNaN(pos.Y) {
			nan = true
			continue
		}
		if !pen || (nan && skipMissing) {
			ops = append(ops, MoveTo(pos))
			pen = true
		} else {
			ops = append(ops, LineTo(pos))
		}
		nan = false
	}
	return ops
}

type LineRenderer[T, U ScalerConstraint] struct {
	Color       string
	Width       float64
	Fill        bool
	WithPoints  bool
	SkipMissing bool
	Text        TextPosition
}

func (r LineRenderer[T, U]) Render(c Canvas, serie Serie[T, U]) {
	color := r.Color
	if color == "" {
		color = serie.Color
	}
	grp := c.Group(serie.Title, NewPos(0, 0), "line")
	ops := LineOps(serie, r.SkipMissing)
	if len(ops) == 0 {
		return
	}
	style := Style{
		Stroke:      color,
		StrokeWidth: r.Width,
	}
	if r.Fill {
		last := ops[len(ops)-1].To
		ops = append(ops, LineTo(NewPos(last.X, serie.Y.Min())))
		style.Fill = color
		style.FillOpacity = 0.5
	}
	grp.Path(ops, style)
	if r.WithPoints {
		for _, op := range ops {
			if op.Kind != OpMove && op.Kind != OpLine {
				continue
			}
			grp.Path(circleOps(op.To, 2), Style{Fill: color})
		}
	}
	switch r.Text {
	case TextBefore:
		pt := slices.Fst(serie.Points)
		at := NewPos(serie.X.Scale(pt.X)-FontSize*0.4, serie.Y.Scale(pt.Y))
		grp.Text(serie.Title, at, TextStyle{Size: FontSize, Anchor: "end", Baseline: "middle"})
	case TextAfter:
		pt := slices.Lst(serie.Points)
		at := NewPos(serie.X.Scale(pt.X)+FontSize*0.4, serie.Y.Scale(pt.Y))
		grp.Text(serie.Title, at, TextStyle{Size: FontSize, Anchor: "start", Baseline: "middle"})
	default:
	}
}

type PieRenderer[T ~string, U ~float64] struct {
	Fill        Palette
	InnerRadius float64
	OuterRadius float64
	LabelRadius float64
	WithLabels  bool
	LabelClass  string
}

func (r PieRenderer[T, U]) Render(c Canvas, serie Serie[T, U]) {
	var (
		labels = make([]string, len(serie.Points))
		values = make([]float64, len(serie.Points))
	)
	for i, pt := range serie.Points {
		labels[i] = string(pt.X)
		values[i] = float64(pt.Y)
	}
	var (
		center = NewPos(serie.X.Max()/2, serie.Y.Max()/2)
		wedges = Wedges(labels, values)
		grp    = c.Group(serie.Title, center, "pie")
	)
	for i, w := range wedges {
		slice := grp.Group("", NewPos(0, 0), "slice")
		slice.Path(wedgeOps(w, r.InnerRadius, r.OuterRadius), Style{
			Fill: r.Fill.Color(i),
		})
		if r.WithLabels && w.Sweep > 0 {
			class := r.LabelClass
			if class == "" {
				class = "slice-label"
			}
			lab := slice.Group("", NewPos(0, 0), class)
			lab.Text(w.Label, PosOnCircle(w.Centroid, r.labelRadius()), TextStyle{
				Size:     FontSize,
				Anchor:   "middle",
				Baseline: "middle",
			})
		}
	}
}

func (r PieRenderer[T, U]) labelRadius() float64 {
	if r.LabelRadius > 0 {
		return r.LabelRadius
	}
	return (r.InnerRadius + r.OuterRadius) / 2
}
