package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search VTK classes by name substring",
	Args:  cobra.ExactArgs(1),
	RunE:  runSearch,
}

var searchLimit int

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "Maximum number of results")
}

func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	idx, err := loadIndex(cfg, logger)
	if err != nil {
		return err
	}

	query := args[0]
	results := idx.SearchClasses(query, searchLimit)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Found %d classes matching %q\n", len(results), query))
	for i, r := range results {
		b.WriteString(fmt.Sprintf("%d. %s (%s)\n", i+1, r.Name, r.Module))
		if r.Description != "" {
			b.WriteString(fmt.Sprintf("   %s\n", r.Description))
		}
	}
	return emit(results, strings.TrimRight(b.String(), "\n"))
}
