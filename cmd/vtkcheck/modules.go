package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules [name]",
	Short: "List VTK modules, or the classes in one module",
	Long: `With no argument, list all modules in the catalog. With a module
name, list the classes that module provides.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runModules,
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}

func runModules(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	idx, err := loadIndex(cfg, logger)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		names := idx.ModuleNames()
		var b strings.Builder
		b.WriteString(fmt.Sprintf("%d modules\n", len(names)))
		for _, name := range names {
			b.WriteString(fmt.Sprintf("  %s (%d classes)\n", name, len(idx.ClassesInModule(name))))
		}
		return emit(names, strings.TrimRight(b.String(), "\n"))
	}

	module := args[0]
	if !idx.HasModule(module) {
		return fmt.Errorf("module %q not found in catalog", module)
	}
	classes := idx.ClassesInModule(module)
	resp := map[string]interface{}{
		"module":  module,
		"classes": classes,
		"count":   len(classes),
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%d classes)\n", module, len(classes)))
	for _, c := range classes {
		b.WriteString(fmt.Sprintf("  %s\n", c))
	}
	return emit(resp, strings.TrimRight(b.String(), "\n"))
}
