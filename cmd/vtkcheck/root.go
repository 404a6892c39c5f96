package main

import (
	"fmt"
	"log/slog"

	"vtkcheck/internal/catalog"
	"vtkcheck/internal/config"
	"vtkcheck/internal/logging"
	"vtkcheck/internal/rules"
	"vtkcheck/internal/validate"
	"vtkcheck/internal/version"

	"github.com/spf13/cobra"
)

var (
	// configFlag is the CLI --config flag value
	configFlag string
	// catalogFlag overrides the configured catalog path
	catalogFlag string
	// logLevelFlag overrides the configured log level
	logLevelFlag string
	// formatFlag selects the output format for query commands
	formatFlag string
)

var rootCmd = &cobra.Command{
	Use:   "vtkcheck",
	Short: "vtkcheck - static VTK API validator for Python code",
	Long: `vtkcheck statically validates Python code against the VTK API catalog.
It parses code without executing it, checks imports, class names, and method
calls against an immutable API index, and suggests the closest valid name
for anything it does not recognize.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("vtkcheck version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "",
		"Path to config file (default: .vtkcheck/config.{yaml,json,toml})")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "",
		"Path to the API catalog (.jsonl, .jsonl.gz, .jsonl.zst, or compiled .db)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "",
		"Log level: debug, info, warn, or error")
	rootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text",
		"Output format: text, json, or yaml")
}

// loadConfig resolves the effective configuration.
// Precedence: CLI flag > VTKCHECK_* env var > config file > defaults.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return nil, err
	}
	if catalogFlag != "" {
		cfg.Catalog.Path = catalogFlag
	}
	if logLevelFlag != "" {
		cfg.Logging.Level = logLevelFlag
	}
	return cfg, nil
}

// newLogger builds the CLI logger from config. Logs go to stderr so
// stdout stays clean for command output.
func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: logging.Format(cfg.Logging.Format),
	})
}

// loadIndex loads the catalog named by the config.
func loadIndex(cfg *config.Config, logger *slog.Logger) (*catalog.Index, error) {
	idx, err := catalog.LoadFile(cfg.Catalog.Path, catalog.LoadOptions{
		Lenient: cfg.Catalog.Lenient,
		Logger:  logger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", cfg.Catalog.Path, err)
	}
	logger.Debug("Catalog loaded",
		"path", cfg.Catalog.Path,
		"classes", idx.NumClasses(),
		"modules", idx.NumModules(),
	)
	return idx, nil
}

// loadRuleset returns the configured ruleset, or the built-in default
// when no override file is configured.
func loadRuleset(cfg *config.Config) (*rules.Ruleset, error) {
	if cfg.Rules.Path == "" {
		return rules.Default(), nil
	}
	rs, err := rules.LoadFile(cfg.Rules.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load ruleset %s: %w", cfg.Rules.Path, err)
	}
	return rs, nil
}

// newValidator wires the full validation pipeline from config.
func newValidator(cfg *config.Config, logger *slog.Logger) (*validate.Validator, error) {
	idx, err := loadIndex(cfg, logger)
	if err != nil {
		return nil, err
	}
	rs, err := loadRuleset(cfg)
	if err != nil {
		return nil, err
	}
	return validate.New(idx, validate.Options{
		Rules:          rs,
		MaxSuggestions: cfg.Fuzzy.MaxSuggestions,
		MaxDistance:    cfg.Fuzzy.MaxDistance,
		Logger:         logger,
	}), nil
}
