// Package config loads geoinfer settings.
//
// Sources are layered, later ones winning: built-in defaults, an optional YAML
// file (geoinfer.yaml, or the file named by CONFIG_PATH), then environment
// variables (GEO_* and LOG_*). Command-line flags are applied by the caller on
// top of the returned Config.
package config

import (
	"newsgeo/internal/geo"
	"newsgeo/internal/logging"
	"newsgeo/internal/validation"
)

// Config is the complete geoinfer configuration.
type Config struct {
	Matcher MatcherConfig `koanf:"matcher"`
	Catalog CatalogConfig `koanf:"catalog"`
	Batch   BatchConfig   `koanf:"batch"`
	Metrics MetricsConfig `koanf:"metrics"`
	Logging LoggingConfig `koanf:"logging"`
}

// MatcherConfig tunes the district matcher.
type MatcherConfig struct {
	FuzzyThreshold   float64 `koanf:"fuzzy_threshold" validate:"gt=0,lte=1"`
	MediumThreshold  float64 `koanf:"medium_threshold" validate:"gtefield=FuzzyThreshold,lte=1"`
	MinTokenLength   int     `koanf:"min_token_length" validate:"gte=1"`
	PerfectMatchExit bool    `koanf:"perfect_match_exit"`
	PatternCacheSize int64   `koanf:"pattern_cache_size" validate:"gte=0"`
}

// CatalogConfig lists the catalog files to load, in order.
type CatalogConfig struct {
	Paths []string `koanf:"paths"`
}

// BatchConfig controls the JSONL resolver.
type BatchConfig struct {
	Workers int `koanf:"workers" validate:"gte=1,lte=256"`
}

// MetricsConfig controls metrics export. An empty path disables the textfile.
type MetricsConfig struct {
	TextfilePath string `koanf:"textfile_path"`
}

// LoggingConfig mirrors logging.Config.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn warning error disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

func defaultConfig() *Config {
	return &Config{
		Matcher: MatcherConfig{
			FuzzyThreshold:   geo.DefaultFuzzyThreshold,
			MediumThreshold:  geo.DefaultMediumThreshold,
			MinTokenLength:   geo.DefaultMinTokenLength,
			PatternCacheSize: geo.DefaultPatternCacheSize,
		},
		Batch: BatchConfig{Workers: 4},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Validate checks every field against its constraints.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return verr
	}

	return nil
}

// Options converts the matcher settings to matcher options.
func (m MatcherConfig) Options() []geo.Option {
	return []geo.Option{
		geo.WithFuzzyThreshold(m.FuzzyThreshold),
		geo.WithMediumThreshold(m.MediumThreshold),
		geo.WithMinTokenLength(m.MinTokenLength),
		geo.WithPerfectMatchExit(m.PerfectMatchExit),
		geo.WithPatternCacheSize(m.PatternCacheSize),
	}
}

// Logging returns the settings for logging.Init.
func (l LoggingConfig) Logging() logging.Config {
	cfg := logging.DefaultConfig()
	cfg.Level = l.Level
	cfg.Format = l.Format
	cfg.Caller = l.Caller

	return cfg
}
