package dataset

import (
	"math"
	"strings"
	"testing"
)

const sample = `week,amount,note
1,10,ok
2,oops,bad cell
3,20,ok
`

func sampleFrame(t *testing.T) Frame {
	t.Helper()
	f, err := Decode(strings.NewReader(sample))
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestNumbersDrop(t *testing.T) {
	rows := sampleFrame(t).Numbers(CoerceDrop, "week", "amount")
	if len(rows) != 2 {
		t.Fatalf("malformed row should be dropped, got %d rows", len(rows))
	}
	if rows[1].Values["amount"] != 20 {
		t.Errorf("row order should survive coercion, got %f", rows[1].Values["amount"])
	}
}

func TestNumbersZero(t *testing.T) {
	rows := sampleFrame(t).Numbers(CoerceZero, "week", "amount")
	if len(rows) != 3 {
		t.Fatalf("zero policy keeps every row, got %d", len(rows))
	}
	if rows[1].Values["amount"] != 0 {
		t.Errorf("malformed cell should be zero-filled, got %f", rows[1].Values["amount"])
	}
}

func TestNumbersKeep(t *testing.T) {
	rows := sampleFrame(t).Numbers(CoerceKeep, "week", "amount")
	if len(rows) != 3 {
		t.Fatalf("keep policy keeps every row, got %d", len(rows))
	}
	if !math.IsNaN(rows[1].Values["amount"]) {
		t.Error("malformed cell should propagate the NaN sentinel")
	}
}

func TestNumbersMissingField(t *testing.T) {
	rows := sampleFrame(t).Numbers(CoerceDrop, "week", "absent")
	if len(rows) != 0 {
		t.Errorf("a missing column never parses, got %d rows", len(rows))
	}
}

func TestSumIdempotent(t *testing.T) {
	f, err := Decode(strings.NewReader("a,b\n1,3\n2,1\n"))
	if err != nil {
		t.Fatal(err)
	}
	rows := f.Numbers(CoerceDrop, "a", "b")
	fst := Sum(rows, "a", "b")
	snd := Sum(rows, "a", "b")
	if fst["a"] != 3 || fst["b"] != 4 {
		t.Errorf("expected a=3 b=4, got a=%f b=%f", fst["a"], fst["b"])
	}
	if fst["a"] != snd["a"] || fst["b"] != snd["b"] {
		t.Error("summing the same rows twice must give identical totals")
	}
}

func TestSumSkipsNaN(t *testing.T) {
	rows := sampleFrame(t).Numbers(CoerceKeep, "amount")
	totals := Sum(rows, "amount")
	if got := totals["amount"]; got != 30 {
		t.Errorf("NaN must not poison the total, got %f", got)
	}
}

func TestColumnOrder(t *testing.T) {
	rows := sampleFrame(t).Numbers(CoerceDrop, "week", "amount")
	weeks := Column(rows, "week")
	if len(weeks) != 2 || weeks[0] != 1 || weeks[1] != 3 {
		t.Errorf("column should preserve row order, got %v", weeks)
	}
	notes := Labels(rows, "note")
	if len(notes) != 2 || notes[0] != "ok" {
		t.Errorf("labels should preserve row order, got %v", notes)
	}
}
