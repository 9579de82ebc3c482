package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Warn, &buf)
	lg.Infof("dropped")
	lg.Warnf("kept")
	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Error("messages below the level must be dropped")
	}
	if !strings.Contains(out, "kept") {
		t.Error("messages at the level must be written")
	}
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	lg := New(Info, &buf)
	lg.json = true
	lg.component = "test"
	lg.Errorf("boom %d", 42)

	var e entry
	if err := json.Unmarshal(buf.Bytes(), &e); err != nil {
		t.Fatalf("output is not json: %v", err)
	}
	if e.Level != "ERROR" || e.Message != "boom 42" || e.Component != "test" {
		t.Errorf("unexpected entry: %+v", e)
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != Debug {
		t.Error("debug should parse")
	}
	if ParseLevel("nonsense") != Info {
		t.Error("unknown levels default to info")
	}
}
