package config

import (
	"context"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	s, err := Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if s.Addr == "" || s.DocsDir == "" {
		t.Errorf("defaults should fill the settings, got %+v", s)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CHARTKIT_ADDR", ":9999")
	t.Setenv("CHARTKIT_DOCS", "site")
	s, err := Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if s.Addr != ":9999" || s.DocsDir != "site" {
		t.Errorf("environment should override defaults, got %+v", s)
	}
}
