// Package config loads vtkcheck configuration via viper. Configuration
// is looked up in .vtkcheck/config.{yaml,json,toml} under the working
// directory, then the user home directory, with VTKCHECK_* environment
// variables taking precedence over file values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config represents the complete vtkcheck configuration.
type Config struct {
	Catalog CatalogConfig `json:"catalog" mapstructure:"catalog"`
	Fuzzy   FuzzyConfig   `json:"fuzzy" mapstructure:"fuzzy"`
	Rules   RulesConfig   `json:"rules" mapstructure:"rules"`
	Logging LoggingConfig `json:"logging" mapstructure:"logging"`
}

// CatalogConfig controls catalog loading.
type CatalogConfig struct {
	// Path to the catalog: .jsonl, .jsonl.gz, .jsonl.zst or a compiled .db
	Path string `json:"path" mapstructure:"path"`
	// Lenient skips malformed catalog lines with a warning instead of
	// failing the whole load. Default is fail-fast.
	Lenient bool `json:"lenient" mapstructure:"lenient"`
}

// FuzzyConfig bounds the suggestion search.
type FuzzyConfig struct {
	MaxSuggestions int `json:"maxSuggestions" mapstructure:"maxSuggestions"`
	MaxDistance    int `json:"maxDistance" mapstructure:"maxDistance"`
}

// RulesConfig points at an optional TOML ruleset override.
type RulesConfig struct {
	Path string `json:"path" mapstructure:"path"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	Level  string `json:"level" mapstructure:"level"`
	Format string `json:"format" mapstructure:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Catalog: CatalogConfig{
			Path: "vtk-python-docs.jsonl",
		},
		Fuzzy: FuzzyConfig{
			MaxSuggestions: 3,
			MaxDistance:    3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration. If explicitPath is non-empty that file is
// required; otherwise the search path is consulted and missing config
// files fall back to defaults.
func Load(explicitPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("VTKCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if explicitPath != "" {
		v.SetConfigFile(explicitPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", explicitPath, err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".vtkcheck")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".vtkcheck"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errorsAs(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
			// No config file: defaults plus env vars.
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	def := DefaultConfig()
	v.SetDefault("catalog.path", def.Catalog.Path)
	v.SetDefault("catalog.lenient", def.Catalog.Lenient)
	v.SetDefault("fuzzy.maxSuggestions", def.Fuzzy.MaxSuggestions)
	v.SetDefault("fuzzy.maxDistance", def.Fuzzy.MaxDistance)
	v.SetDefault("rules.path", "")
	v.SetDefault("logging.level", def.Logging.Level)
	v.SetDefault("logging.format", def.Logging.Format)
}

// errorsAs is a tiny indirection so the viper error type assertion reads
// cleanly above.
func errorsAs(err error, target *viper.ConfigFileNotFoundError) bool {
	if e, ok := err.(viper.ConfigFileNotFoundError); ok {
		*target = e
		return true
	}
	return false
}
