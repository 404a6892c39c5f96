// Package validate implements the validation pipeline: extraction, type
// tracking, and the import/class/method validators, orchestrated into a
// single deterministic result per source snippet.
//
// The pipeline stages are fixed: Parse -> Extract -> TypeBind ->
// ValidateImports -> ValidateClasses -> ValidateMethods -> Aggregate.
// Parse/extract failure is terminal and yields exactly one syntax
// diagnostic; every other stage runs to completion and only appends.
package validate

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"vtkcheck/internal/catalog"
	"vtkcheck/internal/extract"
	"vtkcheck/internal/rules"
)

// Options configure a Validator.
type Options struct {
	Rules          *rules.Ruleset
	MaxSuggestions int
	MaxDistance    int
	Logger         *slog.Logger
}

// Validator runs the full validation pipeline against one immutable
// catalog index. Safe for concurrent use: all state below is read-only
// after construction and each request carries its own bindings.
type Validator struct {
	index     *catalog.Index
	rules     *rules.Ruleset
	extractor *extract.Extractor
	imports   *ImportValidator
	classes   *ClassValidator
	methods   *MethodValidator
	logger    *slog.Logger
}

// New creates a validator over the given index.
func New(index *catalog.Index, opts Options) *Validator {
	rs := opts.Rules
	if rs == nil {
		rs = rules.Default()
	}
	maxSugg := opts.MaxSuggestions
	if maxSugg <= 0 {
		maxSugg = 3
	}
	maxDist := opts.MaxDistance
	if maxDist <= 0 {
		maxDist = 3
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Validator{
		index:     index,
		rules:     rs,
		extractor: extract.New(rs),
		imports:   NewImportValidator(index, rs, maxSugg, maxDist),
		classes:   NewClassValidator(index, maxSugg, maxDist),
		methods:   NewMethodValidator(index, maxSugg, maxDist),
		logger:    logger,
	}
}

// Validate runs the pipeline on one source snippet. Malformed input code
// is a diagnostic, never a fault: the only error conditions surfaced as
// diagnostics are in the result itself.
func (v *Validator) Validate(ctx context.Context, source string) *Result {
	code, err := v.extractor.Extract(ctx, []byte(source))
	if err != nil {
		var syntaxErr *extract.SyntaxError
		line := 0
		if errors.As(err, &syntaxErr) {
			line = syntaxErr.Line
		}
		v.logger.Debug("Validation aborted on parse failure", "line", line)
		return &Result{
			Valid: false,
			Errors: []Error{{
				Kind:    KindSyntax,
				Message: "Code could not be parsed: " + err.Error(),
				Line:    line,
			}},
		}
	}

	bindings := Bind(code)

	var diags []Error
	diags = append(diags, v.imports.Validate(code.Imports)...)
	diags = append(diags, v.classes.Validate(code.Instantiations, bindings)...)
	diags = append(diags, v.methods.Validate(code.Calls, bindings)...)

	v.logger.Debug("Validation complete",
		"imports", len(code.Imports),
		"instantiations", len(code.Instantiations),
		"calls", len(code.Calls),
		"diagnostics", len(diags),
	)

	return &Result{Valid: len(diags) == 0, Errors: diags}
}

// ValidateImport checks a single import statement, the entry point for
// the vtk_validate_import tool.
func (v *Validator) ValidateImport(ctx context.Context, statement string) ImportCheck {
	code, err := v.extractor.Extract(ctx, []byte(statement))
	if err != nil || len(code.Imports) == 0 {
		return ImportCheck{Valid: false, Message: "Could not parse import statement"}
	}

	// A single statement can still normalize to several imports
	// ("from m import A, B"); the first failure wins.
	var last ImportCheck
	for _, imp := range code.Imports {
		last = v.imports.Check(imp)
		if !last.Valid {
			return last
		}
	}
	return last
}

// Index exposes the underlying catalog for read-only lookup tools.
func (v *Validator) Index() *catalog.Index {
	return v.index
}
