package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists the config files searched, in order.
var DefaultConfigPaths = []string{
	"geoinfer.yaml",
	"geoinfer.yml",
	"/etc/geoinfer/geoinfer.yaml",
}

// ConfigPathEnvVar overrides the config file search.
const ConfigPathEnvVar = "CONFIG_PATH"

// envMappings maps lowercased environment variable names to config keys.
// Variables not listed here are ignored.
var envMappings = map[string]string{
	"geo_fuzzy_threshold":    "matcher.fuzzy_threshold",
	"geo_medium_threshold":   "matcher.medium_threshold",
	"geo_min_token_length":   "matcher.min_token_length",
	"geo_perfect_match_exit": "matcher.perfect_match_exit",
	"geo_pattern_cache_size": "matcher.pattern_cache_size",
	"geo_catalog":            "catalog.paths",
	"geo_workers":            "batch.workers",
	"geo_metrics_textfile":   "metrics.textfile_path",
	"log_level":              "logging.level",
	"log_format":             "logging.format",
	"log_caller":             "logging.caller",
}

// sliceConfigPaths are keys that accept a comma-separated string from the environment.
var sliceConfigPaths = []string{
	"catalog.paths",
}

// Load builds the configuration from defaults, the config file and the
// environment. An explicit path must exist; an empty path searches
// CONFIG_PATH and DefaultConfigPaths.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = findConfigFile()
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	for _, p := range DefaultConfigPaths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return ""
}

// processSliceFields splits comma-separated string values of slice keys.
func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		s, ok := k.Get(path).(string)
		if !ok {
			continue
		}

		parts := SplitList(s)
		if len(parts) == 0 {
			continue
		}

		if err := k.Set(path, parts); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}

	return nil
}

// SplitList splits a comma-separated list, dropping blanks.
func SplitList(s string) []string {
	var out []string

	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}

	return out
}

func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
