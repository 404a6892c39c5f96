package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a Python file against the VTK API",
	Long: `Validate Python source code against the VTK API catalog.

Reads the given file, or stdin when no file (or "-") is given. The code
is parsed statically and never executed. Reported errors cover unknown
imports, unknown classes, unknown methods, and method calls on variables
that were never bound to a VTK class.

Exits with status 1 when validation errors are found.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	source, err := readSource(args)
	if err != nil {
		return err
	}

	validator, err := newValidator(cfg, logger)
	if err != nil {
		return err
	}

	result := validator.Validate(cmd.Context(), string(source))
	if err := emit(result, result.Format()); err != nil {
		return err
	}

	if !result.Valid {
		os.Exit(1)
	}
	return nil
}

func readSource(args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		source, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return source, nil
	}
	source, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return source, nil
}
