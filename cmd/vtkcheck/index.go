package main

import (
	"fmt"
	"strings"

	"vtkcheck/internal/catalog"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Compile the JSONL catalog into a SQLite database",
	Long: `Compile the JSONL API catalog into a SQLite database.

The compiled database loads faster than the JSONL catalog and embeds the
catalog fingerprint, so later loads can detect a stale compile. Point
--catalog (or the config file) at the compiled .db to use it.`,
	RunE: runIndex,
}

var indexOut string

func init() {
	rootCmd.AddCommand(indexCmd)
	indexCmd.Flags().StringVarP(&indexOut, "out", "o", "vtk-api.db", "Output database path")
}

func runIndex(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	idx, err := loadIndex(cfg, logger)
	if err != nil {
		return err
	}

	if err := catalog.BuildStore(indexOut, idx, logger); err != nil {
		return fmt.Errorf("failed to build database: %w", err)
	}

	resp := map[string]interface{}{
		"output":      indexOut,
		"classes":     idx.NumClasses(),
		"modules":     idx.NumModules(),
		"fingerprint": idx.Fingerprint(),
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Compiled %d classes in %d modules to %s\n", idx.NumClasses(), idx.NumModules(), indexOut))
	b.WriteString(fmt.Sprintf("Fingerprint: %s", idx.Fingerprint()))
	return emit(resp, b.String())
}
