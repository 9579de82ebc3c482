package chartkit

import (
	"math"
)

const FontSize = 12.0

type Pos struct {
	X float64
	Y float64
}

func NewPos(x, y float64) Pos {
	return Pos{
		X: x,
		Y: y,
	}
}

// PosOnCircle gives the point at the given angle (radians, measured from
// the positive x axis) on a circle of the given radius around the origin.
func PosOnCircle(angle, radius float64) Pos {
	return NewPos(radius*math.Cos(angle), radius*math.Sin(angle))
}

type OpKind int

const (
	OpMove OpKind = iota
	OpLine
	OpArc
	OpClose
)

// PathOp is one step of a path description. Arcs are circular, drawn from
// the previous position to To with the given radius.
type PathOp struct {
	Kind   OpKind
	To     Pos
	Radius float64
	Large  bool
	Sweep  bool
}

func MoveTo(p Pos) PathOp {
	return PathOp{Kind: OpMove, To: p}
}

func LineTo(p Pos) PathOp {
	return PathOp{Kind: OpLine, To: p}
}

func ArcTo(p Pos, radius float64, large, sweep bool) PathOp {
	return PathOp{
		Kind:   OpArc,
		To:     p,
		Radius: radius,
		Large:  large,
		Sweep:  sweep,
	}
}

func ClosePath() PathOp {
	return PathOp{Kind: OpClose}
}

// circleOps draws a full circle around at as two half arcs, since a single
// arc back to its own start point collapses to nothing.
func circleOps(at Pos, radius float64) []PathOp {
	var (
		west = NewPos(at.X-radius, at.Y)
		east = NewPos(at.X+radius, at.Y)
	)
	return []PathOp{
		MoveTo(west),
		ArcTo(east, radius, false, true),
		ArcTo(west, radius, false, true),
		ClosePath(),
	}
}

type Style struct {
	Stroke        string
	StrokeWidth   float64
	StrokeOpacity float64
	Fill          string
	FillOpacity   float64
}

type TextStyle struct {
	Size     float64
	Anchor   string
	Baseline string
}

type LegendItem struct {
	Label string
	Color string
}

// Canvas is the drawing surface the renderers target. Only Canvas
// implementations touch a display library; everything upstream of it is
// plain geometry.
type Canvas interface {
	Group(id string, at Pos, class ...string) Canvas
	Path(ops []PathOp, style Style)
	Text(str string, at Pos, style TextStyle)
	Legend(items []LegendItem, at Pos)
}
