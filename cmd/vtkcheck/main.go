package main

import (
	"os"

	"vtkcheck/internal/logging"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger := logging.New(logging.Config{Level: "info", Format: logging.TextFormat})
		logger.Error("Command execution failed", "error", err.Error())
		os.Exit(1)
	}
}
