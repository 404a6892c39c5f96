package main

import (
	"os"

	"vtkcheck/internal/logging"
	"vtkcheck/internal/mcp"
	"vtkcheck/internal/version"

	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the MCP server over stdio",
	Long: `Start the Model Context Protocol (MCP) server.

The server communicates over stdio using JSON-RPC 2.0 and exposes the
following tools:
  - vtk_validate_code: Validate a Python snippet against the VTK API
  - vtk_validate_import: Validate a single import statement
  - vtk_get_class_info: Get module, description, and methods of a class
  - vtk_search_classes: Search classes by name substring
  - vtk_get_module_classes: List classes in a module
  - vtk_get_method_info: Look up one method of a class

This command is typically invoked by MCP clients and not directly by
users.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// Logs must go to stderr: stdout carries the protocol stream.
	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: logging.JSONFormat,
		Output: os.Stderr,
	})

	validator, err := newValidator(cfg, logger)
	if err != nil {
		return err
	}

	server := mcp.NewServer(version.Version, validator, logger)
	if err := server.Start(); err != nil {
		logger.Error("MCP server error", "error", err.Error())
		return err
	}
	return nil
}
