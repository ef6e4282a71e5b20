// Package config loads service configuration from the environment.
// Every setting has a default suitable for local development against the
// Spanner emulator; CATALOG_* variables override them.
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "CATALOG_"

// Config is the full service configuration.
type Config struct {
	HTTPAddr        string   `koanf:"http_addr"`
	SpannerDatabase string   `koanf:"spanner_database"`
	LogLevel        string   `koanf:"log_level"`
	Locales         []string `koanf:"locales"`
	RateLimitRPS    float64  `koanf:"rate_limit_rps"`
	RateLimitBurst  int      `koanf:"rate_limit_burst"`
}

func defaults() Config {
	return Config{
		HTTPAddr:        ":8080",
		SpannerDatabase: "projects/test-project/instances/emulator-instance/databases/catalog-db",
		LogLevel:        "info",
		Locales:         []string{"en_US", "de_DE"},
		RateLimitRPS:    50,
		RateLimitBurst:  100,
	}
}

// Load merges defaults with CATALOG_* environment variables.
// CATALOG_LOCALES accepts a comma-separated list.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			key = strings.ToLower(strings.TrimPrefix(key, envPrefix))
			if key == "locales" {
				parts := strings.Split(value, ",")
				out := make([]string, 0, len(parts))
				for _, p := range parts {
					if p = strings.TrimSpace(p); p != "" {
						out = append(out, p)
					}
				}
				return key, out
			}
			return key, value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	if cfg.SpannerDatabase == "" {
		return nil, fmt.Errorf("config: spanner_database is required")
	}
	if len(cfg.Locales) == 0 {
		return nil, fmt.Errorf("config: at least one locale is required")
	}
	return &cfg, nil
}
