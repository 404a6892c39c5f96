package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"vtkcheck/internal/rules"

	"github.com/spf13/cobra"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect or scaffold the import ruleset",
}

var rulesShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective import ruleset",
	RunE:  runRulesShow,
}

var rulesInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default ruleset to a TOML file",
	Long: `Write the built-in ruleset to a TOML file for customization. Point
rules.path in the config file at it to override the defaults.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRulesInit,
}

func init() {
	rulesCmd.AddCommand(rulesShowCmd)
	rulesCmd.AddCommand(rulesInitCmd)
	rootCmd.AddCommand(rulesCmd)
}

func runRulesShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	rs, err := loadRuleset(cfg)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Monolithic modules: %s\n", strings.Join(rs.MonolithicModules, ", ")))
	b.WriteString(fmt.Sprintf("Aggregate modules:  %s\n", strings.Join(rs.AggregateModules, ", ")))
	b.WriteString(fmt.Sprintf("Backend modules:    %s\n", strings.Join(rs.BackendModules, ", ")))
	b.WriteString(fmt.Sprintf("Module prefix:      %s\n", rs.ModulePrefix))
	b.WriteString(fmt.Sprintf("Class prefix:       %s", rs.ClassPrefix))
	return emit(rs, b.String())
}

func runRulesInit(cmd *cobra.Command, args []string) error {
	path := ".vtkcheck/rules.toml"
	if len(args) == 1 {
		path = args[0]
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	if err := rules.WriteDefault(path); err != nil {
		return err
	}
	logger.Info("Ruleset written", "path", path)
	fmt.Printf("Wrote default ruleset to %s\n", path)
	return nil
}
