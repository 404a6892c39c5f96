package validate

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic.
type Kind string

const (
	// KindSyntax is fatal for the request; it is always the sole diagnostic.
	KindSyntax Kind = "syntax_error"
	// KindImport marks an import the catalog cannot account for.
	KindImport Kind = "unknown_import"
	// KindClass marks an instantiation of a class the catalog lacks.
	KindClass Kind = "unknown_class"
	// KindMethod marks a call to a method the class does not have.
	KindMethod Kind = "unknown_method"
	// KindVariable marks a method call on a never-instantiated variable.
	KindVariable Kind = "unknown_variable"
)

// Error is one diagnostic. Diagnostics are values, not Go errors: the
// engine never raises a fault for malformed input code.
type Error struct {
	Kind       Kind   `json:"kind"`
	Message    string `json:"message"`
	Line       int    `json:"line,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Result is the ordered diagnostic list for one validation request.
type Result struct {
	Valid  bool    `json:"isValid"`
	Errors []Error `json:"errors"`
}

// Format renders a human-readable report.
func (r *Result) Format() string {
	if len(r.Errors) == 0 {
		return "No errors found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d error(s) found:\n", len(r.Errors))
	for i, e := range r.Errors {
		fmt.Fprintf(&b, "%d. [%s] %s", i+1, strings.ToUpper(string(e.Kind)), e.Message)
		if e.Line > 0 {
			fmt.Fprintf(&b, " (line %d)", e.Line)
		}
		if e.Suggestion != "" {
			fmt.Fprintf(&b, "\n   Did you mean: %s", e.Suggestion)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ImportCheck is the verdict for a single import statement, used by the
// vtk_validate_import tool.
type ImportCheck struct {
	Valid      bool   `json:"valid"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}
