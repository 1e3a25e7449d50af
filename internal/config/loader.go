package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, an optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if PHOTOCOACH_CONFIG is set
//  3. env (prefix PHOTOCOACH_, e.g. PHOTOCOACH_ORACLE.PROVIDER)
func Load() (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("PHOTOCOACH_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	// PHOTOCOACH_ADDR -> addr, PHOTOCOACH_ORACLE.API_KEY -> oracle.api_key.
	// Underscores within a key are preserved to match the koanf tags.
	envProvider := env.Provider("PHOTOCOACH_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "photocoach_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validate(cfg *Config) error {
	if cfg.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if cfg.MaxPhotos <= 0 {
		return errors.New("max_photos must be positive")
	}
	if cfg.MaxSelection <= 0 {
		return errors.New("max_selection must be positive")
	}
	if cfg.MaxBodyBytes <= 0 {
		return errors.New("max_body_bytes must be positive")
	}
	switch cfg.Oracle.Provider {
	case "", "stub", "openai", "anthropic", "gemini":
	default:
		return errors.New("unknown oracle provider: " + cfg.Oracle.Provider)
	}
	if cfg.Oracle.Provider != "" && cfg.Oracle.Provider != "stub" && cfg.Oracle.APIKey == "" {
		return errors.New("oracle api_key required for provider " + cfg.Oracle.Provider)
	}
	return nil
}
