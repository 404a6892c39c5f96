package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var checkImportCmd = &cobra.Command{
	Use:   "check-import <statement>",
	Short: "Validate a single Python import statement",
	Long: `Validate one import statement against the VTK API catalog.

Examples:
  vtkcheck check-import "import vtk"
  vtkcheck check-import "from vtkmodules.vtkCommonDataModel import vtkPolyData"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheckImport,
}

func init() {
	rootCmd.AddCommand(checkImportCmd)
}

func runCheckImport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	validator, err := newValidator(cfg, logger)
	if err != nil {
		return err
	}

	statement := strings.Join(args, " ")
	check := validator.ValidateImport(cmd.Context(), statement)

	var b strings.Builder
	if check.Valid {
		b.WriteString(fmt.Sprintf("OK: %s", statement))
	} else {
		b.WriteString(fmt.Sprintf("Invalid: %s", check.Message))
		if check.Suggestion != "" {
			b.WriteString(fmt.Sprintf("\nSuggestion: %s", check.Suggestion))
		}
	}
	return emit(check, b.String())
}
