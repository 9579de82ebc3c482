package chartkit

import (
	"io"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Chart ties series, axes and a legend to one drawing surface. ID becomes
// the id of the root group, which is what a host page addresses when it
// mounts the output. Everything is recomputed on every Render call; a
// Chart value keeps no state between calls.
type Chart[T, U ScalerConstraint] struct {
	ID     string
	Title  string
	Width  float64
	Height float64

	Padding

	Left   Axis
	Right  Axis
	Top    Axis
	Bottom Axis

	Legend []LegendItem
}

func (c Chart[T, U]) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart[T, U]) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

func (c Chart[T, U]) Render(w io.Writer, series ...Serie[T, U]) error {
	cv := NewSVGCanvas(c.ID, c.Width, c.Height)
	c.drawAxis(cv)
	area := cv.Group("", NewPos(c.Padding.Left, c.Padding.Top), "area")
	for _, s := range series {
		if s.Renderer == nil {
			continue
		}
		s.Renderer.Render(area, s)
	}
	if len(c.Legend) > 0 {
		at := NewPos(c.Width-c.Padding.Right-legendWidth(c.Legend), c.Padding.Top+FontSize)
		cv.Legend(c.Legend, at)
	}
	return cv.Render(w)
}

// RenderFailure writes a visible failure indication in place of the chart
// so a load error never leaves the mount blank.
func (c Chart[T, U]) RenderFailure(w io.Writer, err error) error {
	cv := NewSVGCanvas(c.ID, c.Width, c.Height)
	grp := cv.Group("", NewPos(c.Width/2, c.Height/2), "load-error")
	grp.Text("data load failed: "+err.Error(), NewPos(0, 0), TextStyle{
		Size:     FontSize,
		Anchor:   "middle",
		Baseline: "middle",
	})
	return cv.Render(w)
}

func legendWidth(items []LegendItem) float64 {
	var width float64
	for _, it := range items {
		if n := float64(len(it.Label)); n > width {
			width = n
		}
	}
	// swatch plus a rough glyph estimate, as the legend is not measured
	return 30 + width*FontSize*0.6
}

func (c Chart[T, U]) drawAxis(cv *SVGCanvas) {
	grp := cv.Group("axis", NewPos(0, 0))
	if c.Left != nil {
		g := grp.Group("", NewPos(c.Padding.Left, c.Padding.Top))
		c.Left.Draw(g, c.DrawingHeight(), c.DrawingWidth())
	}
	if c.Right != nil {
		g := grp.Group("", NewPos(c.Width-c.Padding.Right, c.Padding.Top))
		c.Right.Draw(g, c.DrawingHeight(), c.DrawingWidth())
	}
	if c.Top != nil {
		g := grp.Group("", NewPos(c.Padding.Left, c.Padding.Top))
		c.Top.Draw(g, c.DrawingWidth(), c.DrawingHeight())
	}
	if c.Bottom != nil {
		g := grp.Group("", NewPos(c.Padding.Left, c.Height-c.Padding.Bottom))
		c.Bottom.Draw(g, c.DrawingWidth(), c.DrawingHeight())
	}
}
