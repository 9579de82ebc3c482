package plot

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tabviz/chartkit/dataset"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func writeSource(t *testing.T, body string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "source.csv")
	if err := os.WriteFile(file, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestLineEncoding(t *testing.T) {
	frame, err := dataset.Decode(strings.NewReader("week,amount\n1,10\n2,30\n3,20\n"))
	if err != nil {
		t.Fatal(err)
	}
	var (
		opt Options
		p   = New()
	)
	opt.setDefaults()
	var (
		rows     = frame.Numbers(p.Policy, "week", "amount")
		xs       = dataset.Column(rows, "week")
		ys       = dataset.Column(rows, "amount")
		xsc, ysc = lineScales(xs, ys, opt)
	)
	// x spans the observed keys
	if got := xsc.Scale(1); !almost(got, 0) {
		t.Errorf("first key should sit on the left edge, got %f", got)
	}
	if got := xsc.Scale(3); !almost(got, opt.innerWidth()) {
		t.Errorf("last key should sit on the right edge, got %f", got)
	}
	// y domain is [0, 30]
	if got := ysc.Scale(30); !almost(got, 0) {
		t.Errorf("max amount should sit on top, got %f", got)
	}
	if got := ysc.Scale(0); !almost(got, opt.innerHeight()) {
		t.Errorf("zero should sit on the bottom, got %f", got)
	}
	if got := ysc.Scale(10); !almost(got, opt.innerHeight()*2/3) {
		t.Errorf("amount 10 should sit a third of the way up, got %f", got)
	}
}

func TestLineRender(t *testing.T) {
	source := writeSource(t, "week,amount\n1,10\n2,30\n3,20\n")
	var buf bytes.Buffer
	err := New().Line(context.Background(), &buf, source, "week", "amount", Options{Mount: "weekly"})
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("render produced no output")
	}
}

func TestLineLoadFailure(t *testing.T) {
	var buf bytes.Buffer
	err := New().Line(context.Background(), &buf, filepath.Join(t.TempDir(), "missing.csv"), "week", "amount", Options{})
	if err == nil {
		t.Fatal("missing source should fail the render")
	}
	if buf.Len() != 0 {
		t.Error("line variant leaves the mount untouched on failure")
	}
}

const revenue = "week,online,retail\n1,120,80\n2,150,90\n3,170,60\n"

func revenueSpecs() []SeriesSpec {
	return []SeriesSpec{
		{Label: "online", Field: "online"},
		{Label: "retail", Field: "retail"},
	}
}

func TestMultiLineVisibility(t *testing.T) {
	var (
		source = writeSource(t, revenue)
		ctx    = context.Background()
		p      = New()
		opt    = Options{Mount: "revenue"}
	)
	var all, hidden bytes.Buffer
	if err := p.MultiLine(ctx, &all, source, "week", revenueSpecs(), nil, opt); err != nil {
		t.Fatal(err)
	}
	off := func(label string) bool { return label != "retail" }
	if err := p.MultiLine(ctx, &hidden, source, "week", revenueSpecs(), off, opt); err != nil {
		t.Fatal(err)
	}
	if bytes.Equal(all.Bytes(), hidden.Bytes()) {
		t.Error("hiding a series must change the output")
	}
}

func TestToggleRestoresPath(t *testing.T) {
	var (
		source = writeSource(t, revenue)
		ctx    = context.Background()
		p      = New()
		opt    = Options{Mount: "revenue"}
	)
	var fst, snd bytes.Buffer
	if err := p.RenderSeries(ctx, &fst, source, "week", revenueSpecs(), "retail", opt); err != nil {
		t.Fatal(err)
	}
	if err := p.RenderSeries(ctx, &snd, source, "week", revenueSpecs(), "retail", opt); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(fst.Bytes(), snd.Bytes()) {
		t.Error("toggling a series off and on must restore the exact path")
	}
}

func TestRenderSeriesUnknownLabel(t *testing.T) {
	source := writeSource(t, revenue)
	var buf bytes.Buffer
	err := New().RenderSeries(context.Background(), &buf, source, "week", revenueSpecs(), "wholesale", Options{})
	if err == nil {
		t.Error("an unknown series label is an error")
	}
}

func TestPieRender(t *testing.T) {
	source := writeSource(t, "cause,deaths\ninfection,110\naccident,75\n")
	var buf bytes.Buffer
	err := New().Pie(context.Background(), &buf, source, "cause", "deaths", Options{Mount: "deaths"})
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("render produced no output")
	}
}

func TestColumnPieAggregation(t *testing.T) {
	frame, err := dataset.Decode(strings.NewReader("a,b\n1,3\n2,1\n"))
	if err != nil {
		t.Fatal(err)
	}
	rows := frame.Numbers(dataset.CoerceDrop, "a", "b")
	totals := dataset.Sum(rows, "a", "b")
	if totals["a"] != 3 || totals["b"] != 4 {
		t.Errorf("expected a=3 b=4, got a=%f b=%f", totals["a"], totals["b"])
	}
}

func TestColumnPieRender(t *testing.T) {
	source := writeSource(t, "a,b\n1,3\n2,1\n")
	var buf bytes.Buffer
	err := New().ColumnPie(context.Background(), &buf, source, []string{"a", "b"}, Options{Mount: "share"})
	if err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("render produced no output")
	}
}

func TestColumnPieFailureMessage(t *testing.T) {
	var buf bytes.Buffer
	err := New().ColumnPie(context.Background(), &buf, filepath.Join(t.TempDir(), "missing.csv"), []string{"a"}, Options{Mount: "share"})
	if err == nil {
		t.Fatal("missing source should fail the render")
	}
	if buf.Len() == 0 {
		t.Error("the aggregated variant surfaces the failure in the mount")
	}
}

func TestMalformedRowDoesNotPanic(t *testing.T) {
	source := writeSource(t, "week,amount\n1,10\n2,oops\n3,20\n")
	var buf bytes.Buffer
	if err := New().Line(context.Background(), &buf, source, "week", "amount", Options{}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("render produced no output")
	}
}
