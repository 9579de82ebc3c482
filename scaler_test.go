package chartkit

import (
	"math"
	"testing"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMagnitudeScale(t *testing.T) {
	sc := NumberScaler(MagnitudeDomain([]float64{10, 30, 20}), NewRange(200, 0))
	if got := sc.Scale(30); !almost(got, 0) {
		t.Errorf("max should map to the far bound, got %f", got)
	}
	if got := sc.Scale(0); !almost(got, 200) {
		t.Errorf("zero should map to the near bound, got %f", got)
	}
	if got := sc.Scale(15); !almost(got, 100) {
		t.Errorf("midpoint should map halfway, got %f", got)
	}
}

func TestObservedDomain(t *testing.T) {
	dom := ObservedDomain([]float64{5, math.NaN(), 2, 9})
	if got := dom.Diff(2); !almost(got, 0) {
		t.Errorf("min should anchor the domain, got diff %f", got)
	}
	if got := dom.Extend(); !almost(got, 7) {
		t.Errorf("extent should be max-min, got %f", got)
	}
}

func TestObservedDomainDegenerate(t *testing.T) {
	dom := ObservedDomain([]float64{math.NaN(), math.NaN()})
	if got := dom.Extend(); got == 0 {
		t.Error("empty observation must not produce a zero extent")
	}
	dom = ObservedDomain([]float64{4, 4})
	if got := dom.Extend(); got == 0 {
		t.Error("flat observation must not produce a zero extent")
	}
}

func TestStringScaler(t *testing.T) {
	sc := StringScaler([]string{"a", "b", "c", "d"}, NewRange(0, 400))
	if got := sc.Space(); !almost(got, 100) {
		t.Fatalf("band width: got %f", got)
	}
	if got := sc.Scale("c"); !almost(got, 200) {
		t.Errorf("band position: got %f", got)
	}
}

func TestNumberScalerValues(t *testing.T) {
	sc := NumberScaler(FixedDomain(0, 10), NewRange(0, 100))
	vs := sc.Values(5)
	if len(vs) != 6 {
		t.Fatalf("expected %d tick values, got %d", 6, len(vs))
	}
	if !almost(vs[0], 0) || !almost(vs[len(vs)-1], 10) {
		t.Errorf("tick values should span the domain, got %v", vs)
	}
}
