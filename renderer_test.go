package chartkit

import (
	"math"
	"testing"
)

func testSerie(points ...Point[float64, float64]) Serie[float64, float64] {
	return Serie[float64, float64]{
		X:      NumberScaler(FixedDomain(0, 10), NewRange(0, 100)),
		Y:      NumberScaler(FixedDomain(0, 10), NewRange(100, 0)),
		Points: points,
	}
}

func TestLineOpsOrderPreserving(t *testing.T) {
	var (
		fwd = testSerie(NumberPoint(1, 1), NumberPoint(2, 2), NumberPoint(3, 3))
		rev = testSerie(NumberPoint(3, 3), NumberPoint(2, 2), NumberPoint(1, 1))
	)
	a := LineOps(fwd, false)
	b := LineOps(rev, false)
	if len(a) != len(b) {
		t.Fatalf("op counts differ: %d vs %d", len(a), len(b))
	}
	var same = true
	for i := range a {
		if a[i] != b[i] {
			same = false
		}
	}
	if same {
		t.Error("reordering the input must change the path")
	}
}

func TestLineOpsSkipMissing(t *testing.T) {
	serie := testSerie(NumberPoint(1, 1), NumberPoint(2, math.NaN()), NumberPoint(3, 3))

	ops := LineOps(serie, false)
	if len(ops) != 2 {
		t.Fatalf("NaN point should be dropped, got %d ops", len(ops))
	}
	if ops[1].Kind != OpLine {
		t.Error("without skipMissing the pen stays down")
	}

	ops = LineOps(serie, true)
	if len(ops) != 2 {
		t.Fatalf("NaN point should be dropped, got %d ops", len(ops))
	}
	if ops[1].Kind != OpMove {
		t.Error("with skipMissing the pen lifts after a gap")
	}
}

func TestLineOpsStartsWithMove(t *testing.T) {
	serie := testSerie(NumberPoint(1, 1), NumberPoint(2, 2))
	ops := LineOps(serie, false)
	if len(ops) == 0 || ops[0].Kind != OpMove {
		t.Fatal("a path starts with a move")
	}
}
