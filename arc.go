package chartkit

import (
	"math"
)

const fullTurn = 2 * math.Pi

// Wedge is one circular sector of a pie. Angles are radians measured from
// the positive x axis; Centroid is the angular middle of the span and is
// where the slice label anchors.
type Wedge struct {
	Label    string
	Value    float64
	Start    float64
	Sweep    float64
	Centroid float64
}

func (w Wedge) End() float64 {
	return w.Start + w.Sweep
}

// Wedges assigns each value an angular span proportional to its share of
// the total, in sequence order starting at angle 0. The spans partition a
// full turn. Zero values keep their slot in order with an empty span, so
// slice colors and legend rows stay aligned with the input. NaN and
// negative values count as zero.
func Wedges(labels []string, values []float64) []Wedge {
	var total float64
	for _, v := range values {
		if share(v) > 0 {
			total += v
		}
	}
	var (
		all   = make([]Wedge, 0, len(values))
		angle float64
	)
	for i, v := range values {
		var label string
		if i < len(labels) {
			label = labels[i]
		}
		var sweep float64
		if total > 0 {
			sweep = share(v) / total * fullTurn
		}
		all = append(all, Wedge{
			Label:    label,
			Value:    v,
			Start:    angle,
			Sweep:    sweep,
			Centroid: angle + sweep/2,
		})
		angle += sweep
	}
	return all
}

func share(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// wedgeOps builds the sector path between the inner and outer radius. An
// inner radius of zero gives a plain pie slice, anything larger a donut
// segment. A span covering the whole circle degenerates into two half
// arcs.
func wedgeOps(w Wedge, inner, outer float64) []PathOp {
	if w.Sweep <= 0 {
		return nil
	}
	if w.Sweep >= fullTurn-1e-9 {
		ops := circleOps(NewPos(0, 0), outer)
		if inner > 0 {
			// opposite winding so the inner circle punches a hole
			var (
				west = NewPos(-inner, 0)
				east = NewPos(inner, 0)
			)
			ops = append(ops,
				MoveTo(west),
				ArcTo(east, inner, false, false),
				ArcTo(west, inner, false, false),
				ClosePath(),
			)
		}
		return ops
	}
	var (
		large = w.Sweep > math.Pi
		ops   []PathOp
	)
	ops = append(ops, MoveTo(PosOnCircle(w.Start, outer)))
	ops = append(ops, ArcTo(PosOnCircle(w.End(), outer), outer, large, true))
	if inner > 0 {
		ops = append(ops, LineTo(PosOnCircle(w.End(), inner)))
		ops = append(ops, ArcTo(PosOnCircle(w.Start, inner), inner, large, false))
	} else {
		ops = append(ops, LineTo(NewPos(0, 0)))
	}
	ops = append(ops, ClosePath())
	return ops
}
