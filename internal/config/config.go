// Package config defines service configuration and its layered loading:
// defaults, optional YAML file, then environment variables.
package config

import (
	"github.com/profilepilot/photo-coach/internal/oracle"
	"github.com/profilepilot/photo-coach/internal/scoring"
)

// Config contains process configuration.
type Config struct {
	// Addr is the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MaxBodyBytes caps the analyze request payload (base64 images inflate
	// uploads by a third, so this is generous).
	MaxBodyBytes int64 `koanf:"max_body_bytes"`

	// MaxPhotos bounds how many images one request may carry.
	MaxPhotos int `koanf:"max_photos"`

	// MaxSelection is the profile display capacity.
	MaxSelection int `koanf:"max_selection"`

	// MaxImageWidth is the downscale bound before oracle submission.
	MaxImageWidth int `koanf:"max_image_width"`

	// RequestsPerMinute is the per-IP rate limit.
	RequestsPerMinute int `koanf:"requests_per_minute"`

	// AllowedOrigins configures CORS.
	AllowedOrigins []string `koanf:"allowed_origins"`

	// Oracle selects and authenticates the vision/feedback provider.
	Oracle oracle.Config `koanf:"oracle"`

	// Ranges declares the numeric scales the configured oracle generation
	// reports features in.
	Ranges scoring.FeatureRanges `koanf:"ranges"`
}

// New returns the default configuration: stub oracle, current-generation
// feature ranges, local listen address.
func New() *Config {
	return &Config{
		Addr:              ":8080",
		LogLevel:          "info",
		MaxBodyBytes:      15 << 20,
		MaxPhotos:         12,
		MaxSelection:      scoring.MaxSelection,
		MaxImageWidth:     640,
		RequestsPerMinute: 60,
		AllowedOrigins:    []string{"http://localhost:3000", "http://localhost:5173"},
		Oracle:            oracle.Config{Provider: "stub"},
		Ranges:            scoring.DefaultRanges(),
	}
}
