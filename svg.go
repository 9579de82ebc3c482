package chartkit

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

// SVGCanvas renders the canvas operations through midbel/svg. It is the
// default backend; see the raster package for the PNG one.
type SVGCanvas struct {
	width  float64
	height float64
	node
}

func NewSVGCanvas(id string, width, height float64) *SVGCanvas {
	c := SVGCanvas{
		width:  width,
		height: height,
	}
	c.group.Id = id
	return &c
}

func (c *SVGCanvas) Render(w io.Writer) error {
	el := svg.NewSVG()
	el.Dim = svg.NewDim(c.width, c.height)
	el.OmitProlog = true
	el.Append(c.element())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

// node is one svg group in the making. Children are materialized late so
// that elements appended after a subgroup was handed out still end up
// inside it.
type node struct {
	group svg.Group
	items []any
}

func (n *node) Group(id string, at Pos, class ...string) Canvas {
	k := node{}
	k.group.Id = id
	k.group.Class = class
	k.group.Transform = svg.Translate(at.X, at.Y)
	n.items = append(n.items, &k)
	return &k
}

func (n *node) Path(ops []PathOp, style Style) {
	if len(ops) == 0 {
		return
	}
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	if style.Stroke != "" {
		width := style.StrokeWidth
		if width <= 0 {
			width = 1
		}
		pat.Stroke = svg.NewStroke(style.Stroke, width)
		if style.StrokeOpacity > 0 {
			pat.Stroke.Opacity = style.StrokeOpacity
		}
	}
	if style.Fill != "" {
		pat.Fill = svg.NewFill(style.Fill)
		if style.FillOpacity > 0 {
			pat.Fill.Opacity = style.FillOpacity
		}
	} else {
		pat.Fill = svg.NewFill("none")
	}
	for _, op := range ops {
		switch op.Kind {
		case OpMove:
			pat.AbsMoveTo(svg.NewPos(op.To.X, op.To.Y))
		case OpLine:
			pat.AbsLineTo(svg.NewPos(op.To.X, op.To.Y))
		case OpArc:
			pat.AbsArcTo(svg.NewPos(op.To.X, op.To.Y), op.Radius, op.Radius, 0, op.Large, op.Sweep)
		case OpClose:
			pat.ClosePath()
		}
	}
	n.items = append(n.items, pat.AsElement())
}

func (n *node) Text(str string, at Pos, style TextStyle) {
	size := style.Size
	if size <= 0 {
		size = FontSize
	}
	txt := svg.NewText(str)
	txt.Pos = svg.NewPos(at.X, at.Y)
	txt.Font = svg.NewFont(size)
	if style.Anchor != "" {
		txt.Anchor = style.Anchor
	}
	if style.Baseline != "" {
		txt.Baseline = style.Baseline
	}
	n.items = append(n.items, txt.AsElement())
}

func (n *node) Legend(items []LegendItem, at Pos) {
	var (
		offset = FontSize * 1.4
		grp    svg.Group
	)
	grp.Class = append(grp.Class, "legend")
	grp.Transform = svg.Translate(at.X, at.Y)
	for i, it := range items {
		var g svg.Group
		g.Transform = svg.Translate(0, float64(i)*offset)

		li := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(20, 0))
		li.Stroke = svg.NewStroke(it.Color, 2)

		tx := svg.NewText(it.Label)
		tx.Pos = svg.NewPos(30, 0)
		tx.Font = svg.NewFont(FontSize)
		tx.Baseline = "middle"

		g.Append(li.AsElement())
		g.Append(tx.AsElement())
		grp.Append(g.AsElement())
	}
	n.items = append(n.items, grp.AsElement())
}

func (n *node) element() svg.Element {
	g := n.group
	for _, it := range n.items {
		switch e := it.(type) {
		case svg.Element:
			g.Append(e)
		case *node:
			g.Append(e.element())
		}
	}
	return g.AsElement()
}
