package main

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// emit writes resp to stdout in the format selected by --format. The
// text rendering is supplied per command; json and yaml are generic.
func emit(resp interface{}, text string) error {
	switch OutputFormat(formatFlag) {
	case FormatText:
		fmt.Println(text)
		return nil
	case FormatJSON:
		data, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	case FormatYAML:
		data, err := yaml.Marshal(resp)
		if err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		fmt.Print(string(data))
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", formatFlag)
	}
}
