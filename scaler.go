package chartkit

import (
	"math"
)

type ScalerConstraint interface {
	~float64 | ~string
}

type Domain interface {
	Diff(float64) float64
	Extend() float64
	Values(int) []float64
}

type numberDomain struct {
	fst float64
	lst float64
}

// FixedDomain builds a domain from explicit bounds.
func FixedDomain(f, t float64) Domain {
	if f == t {
		t = f + 1
	}
	return numberDomain{
		fst: f,
		lst: t,
	}
}

// ObservedDomain builds a [min, max] domain from the given samples. NaN
// samples are skipped so a lax coercion policy can not skew the bounds.
func ObservedDomain(samples []float64) Domain {
	var (
		lo    = math.Inf(1)
		hi    = math.Inf(-1)
		found bool
	)
	for _, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		found = true
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	if !found {
		return FixedDomain(0, 1)
	}
	return FixedDomain(lo, hi)
}

// MagnitudeDomain builds a [0, max] domain from the given samples so that
// zero stays visible on magnitude axes. NaN samples are skipped.
func MagnitudeDomain(samples []float64) Domain {
	var hi float64
	for _, v := range samples {
		if math.IsNaN(v) {
			continue
		}
		if v > hi {
			hi = v
		}
	}
	return FixedDomain(0, hi)
}

func (n numberDomain) Diff(v float64) float64 {
	return v - n.fst
}

func (n numberDomain) Extend() float64 {
	return n.lst - n.fst
}

func (n numberDomain) Values(c int) []float64 {
	var (
		all  = make([]float64, c)
		step = n.Extend() / float64(c)
	)
	for i := 0; i < c; i++ {
		all[i] = n.fst + float64(i)*step
	}
	all = append(all, n.lst)
	return all
}

type Range struct {
	F float64
	T float64
}

func NewRange(f, t float64) Range {
	return Range{
		F: f,
		T: t,
	}
}

func (r Range) Len() float64 {
	return r.T - r.F
}

func (r Range) Max() float64 {
	return r.T
}

func (r Range) Min() float64 {
	return r.F
}

type Scaler[T ScalerConstraint] interface {
	Scale(T) float64
	Space() float64
	Values(int) []T
	Max() float64
	Min() float64
}

type numberScaler struct {
	Range
	Domain
}

func NumberScaler(dom Domain, rg Range) Scaler[float64] {
	return numberScaler{
		Range:  rg,
		Domain: dom,
	}
}

// Scale maps v linearly onto the pixel range. A reversed range (F > T)
// flips the orientation, which is how magnitude axes keep zero at the
// bottom of the drawing area.
func (n numberScaler) Scale(v float64) float64 {
	return n.F + n.Diff(v)*n.Space()
}

func (n numberScaler) Space() float64 {
	return n.Len() / n.Extend()
}

type stringScaler struct {
	Range
	Strings []string
}

func StringScaler(str []string, rg Range) Scaler[string] {
	return stringScaler{
		Range:   rg,
		Strings: str,
	}
}

func (s stringScaler) Scale(v string) float64 {
	var x int
	for i := range s.Strings {
		if s.Strings[i] == v {
			x = i
			break
		}
	}
	return s.F + float64(x)*s.Space()
}

func (s stringScaler) Space() float64 {
	if len(s.Strings) == 0 {
		return 0
	}
	return s.Len() / float64(len(s.Strings))
}

func (s stringScaler) Values(c int) []string {
	if c > 0 && c < len(s.Strings) {
		return s.Strings[:c]
	}
	return s.Strings
}
