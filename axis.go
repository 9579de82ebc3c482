package chartkit

import (
	"strconv"
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Axis draws itself into an already positioned group. length is the extent
// along the axis, size the depth of the drawing area behind it (used for
// grid ticks).
type Axis interface {
	Draw(c Canvas, length, size float64)
}

type NumberAxis struct {
	Orientation
	Ticks          int
	Scaler         Scaler[float64]
	Domain         []float64
	Format         func(float64) string
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
}

func (a NumberAxis) Draw(c Canvas, length, size float64) {
	c.Path(domainLine(a.Orientation, length), Style{Stroke: "black"})

	var (
		data   = a.Domain
		format = a.Format
	)
	if len(data) == 0 {
		data = a.Scaler.Values(a.Ticks)
	}
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', 2, 64)
		}
	}
	for i, f := range data {
		var (
			pos = a.Scaler.Scale(f)
			at  = NewPos(pos, 0)
		)
		if a.Vertical() {
			at = NewPos(0, pos)
		}
		grp := c.Group("", at)
		if a.WithInnerTicks {
			grp.Path(lineTick(a.Orientation, 0, FontSize*0.8), Style{Stroke: "black"})
		}
		if a.WithLabelTicks {
			str, at, style := tickText(a.Orientation, format(f), 0)
			grp.Text(str, at, style)
		}
		if a.WithOuterTicks && i < len(data)-1 {
			grp.Path(lineTick(a.Orientation, 0, -size), Style{
				Stroke:        "black",
				StrokeOpacity: 0.05,
			})
		}
	}
}

type CategoryAxis struct {
	Orientation
	Scaler         Scaler[string]
	Domain         []string
	WithInnerTicks bool
	WithLabelTicks bool
}

func (a CategoryAxis) Draw(c Canvas, length, size float64) {
	c.Path(domainLine(a.Orientation, length), Style{Stroke: "black"})

	var (
		align = a.Scaler.Space() / 2
		data  = a.Domain
	)
	if len(data) == 0 {
		data = a.Scaler.Values(0)
	}
	for _, s := range data {
		var (
			pos = a.Scaler.Scale(s)
			at  = NewPos(pos, 0)
		)
		if a.Vertical() {
			at = NewPos(0, pos)
		}
		grp := c.Group("", at)
		if a.WithInnerTicks {
			grp.Path(lineTick(a.Orientation, align, FontSize*0.8), Style{Stroke: "black"})
		}
		if a.WithLabelTicks {
			str, at, style := tickText(a.Orientation, s, align)
			grp.Text(str, at, style)
		}
	}
}

func domainLine(orient Orientation, length float64) []PathOp {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	return []PathOp{
		MoveTo(NewPos(0, 0)),
		LineTo(NewPos(x, y)),
	}
}

func lineTick(orient Orientation, offset, size float64) []PathOp {
	var (
		pos1 = NewPos(offset, 0)
		pos2 = NewPos(offset, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
		pos1.X, pos1.Y = 0, offset
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	return []PathOp{
		MoveTo(pos1),
		LineTo(pos2),
	}
}

func tickText(orient Orientation, str string, offset float64) (string, Pos, TextStyle) {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = offset, FontSize * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	style := TextStyle{
		Size:     FontSize,
		Anchor:   anchor,
		Baseline: base,
	}
	return str, NewPos(x, y), style
}
