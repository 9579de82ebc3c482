// Package config holds the environment-driven settings of the commands.
// The library itself is configured through function parameters only.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Settings struct {
	// Address the static server listens on.
	Addr string `env:"CHARTKIT_ADDR,default=:8080"`
	// Directory served as the site root (pages, scripts, CSV assets).
	DocsDir string `env:"CHARTKIT_DOCS,default=docs"`

	LogLevel  string `env:"LOG_LEVEL,default=info"`
	LogFormat string `env:"LOG_FORMAT,default=text"`
}

func Load(ctx context.Context) (*Settings, error) {
	var s Settings
	if err := envconfig.Process(ctx, &s); err != nil {
		return nil, fmt.Errorf("process settings: %w", err)
	}
	return &s, nil
}
