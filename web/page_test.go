package web

import (
	"bytes"
	"strings"
	"testing"
)

func TestSVGPage(t *testing.T) {
	var buf bytes.Buffer
	err := SVGPage(&buf, "Revenue share", []byte(`<svg><g class="slice"></g></svg>`))
	if err != nil {
		t.Fatal(err)
	}
	page := buf.String()
	if !strings.Contains(page, "Revenue share") {
		t.Error("page should carry the title")
	}
	if !strings.Contains(page, `<g class="slice">`) {
		t.Error("the svg must be inlined unescaped")
	}
	if !strings.Contains(page, ".slice:hover .slice-label") {
		t.Error("page should ship the hover rule for slice labels")
	}
}

func TestInteractiveLine(t *testing.T) {
	var buf bytes.Buffer
	series := []LineSeries{
		{Name: "online", Values: []float64{120, 150, 170}},
		{Name: "retail", Values: []float64{80, 90, 60}},
	}
	if err := InteractiveLine(&buf, "Revenue", []float64{1, 2, 3}, series); err != nil {
		t.Fatal(err)
	}
	page := buf.String()
	if !strings.Contains(page, "online") || !strings.Contains(page, "retail") {
		t.Error("page should name every series")
	}
}
