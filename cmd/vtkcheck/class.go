package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var classCmd = &cobra.Command{
	Use:   "class <name>",
	Short: "Show module, description, and methods of a VTK class",
	Args:  cobra.ExactArgs(1),
	RunE:  runClass,
}

func init() {
	rootCmd.AddCommand(classCmd)
}

func runClass(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	idx, err := loadIndex(cfg, logger)
	if err != nil {
		return err
	}

	name := args[0]
	entry, found := idx.FindClass(name)
	if !found {
		return fmt.Errorf("class %q not found in catalog", name)
	}

	methods := idx.ClassMethods(name)
	resp := map[string]interface{}{
		"class":   entry.Name,
		"module":  entry.Module,
		"doc":     entry.Summary(),
		"methods": methods,
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n", entry.Name))
	b.WriteString(fmt.Sprintf("  Module: %s\n", entry.Module))
	if doc := entry.Summary(); doc != "" {
		b.WriteString(fmt.Sprintf("  Doc: %s\n", doc))
	}
	b.WriteString(fmt.Sprintf("  Methods (%d):\n", len(methods)))
	for _, m := range methods {
		b.WriteString(fmt.Sprintf("    %s\n", m))
	}
	return emit(resp, strings.TrimRight(b.String(), "\n"))
}
