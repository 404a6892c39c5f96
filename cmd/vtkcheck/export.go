package main

import (
	"fmt"

	"vtkcheck/internal/export"
	"vtkcheck/internal/version"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as a SCIP index",
	Long: `Export the API catalog as a SCIP (Sourcegraph Code Intelligence
Protocol) index. The resulting file can be consumed by editors and code
navigation tools that understand SCIP.`,
	RunE: runExport,
}

var exportOut string

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "vtk-api.scip", "Output SCIP index path")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)

	idx, err := loadIndex(cfg, logger)
	if err != nil {
		return err
	}

	if err := export.WriteSCIP(idx, exportOut, version.Version); err != nil {
		return err
	}

	resp := map[string]interface{}{
		"output":  exportOut,
		"classes": idx.NumClasses(),
		"modules": idx.NumModules(),
	}
	text := fmt.Sprintf("Exported %d classes in %d modules to %s", idx.NumClasses(), idx.NumModules(), exportOut)
	return emit(resp, text)
}
