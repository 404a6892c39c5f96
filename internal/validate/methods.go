package validate

import (
	"fmt"
	"strings"

	"vtkcheck/internal/catalog"
	"vtkcheck/internal/extract"
	"vtkcheck/internal/fuzzy"
)

// MethodValidator checks method calls against the class each receiver
// variable was constructed from.
type MethodValidator struct {
	index          *catalog.Index
	maxSuggestions int
	maxDistance    int
}

// NewMethodValidator creates a method validator.
func NewMethodValidator(index *catalog.Index, maxSuggestions, maxDistance int) *MethodValidator {
	return &MethodValidator{
		index:          index,
		maxSuggestions: maxSuggestions,
		maxDistance:    maxDistance,
	}
}

// Validate checks every method call against the tracker bindings.
func (v *MethodValidator) Validate(calls []extract.MethodCall, bindings *Bindings) []Error {
	var errs []Error
	for _, call := range calls {
		// Attribute access on an imported module is a namespace lookup,
		// not a method call on a tracked object.
		if bindings.IsModuleRef(call.Variable) {
			continue
		}

		class, bound := bindings.Class(call.Variable)
		if !bound {
			errs = append(errs, Error{
				Kind: KindVariable,
				Message: fmt.Sprintf("Variable '%s' is used before any instantiation was seen; cannot check method '%s'",
					call.Variable, call.Method),
				Line: call.Line,
			})
			continue
		}

		// An unknown class was already reported by the class validator;
		// a second diagnostic for every call on it would be noise.
		if _, ok := v.index.FindClass(class); !ok {
			continue
		}

		if _, ok := v.index.FindMethod(class, call.Method); ok {
			continue
		}

		e := Error{
			Kind:    KindMethod,
			Message: fmt.Sprintf("Method '%s' not found on class '%s'", call.Method, class),
			Line:    call.Line,
		}
		if sugg := v.suggestMethod(class, call.Method); sugg != "" {
			e.Suggestion = sugg
			e.Message += fmt.Sprintf(". Did you mean '%s'?", sugg)
		}
		errs = append(errs, e)
	}
	return errs
}

// suggestMethod proposes the nearest method of the specific class:
// case-insensitive exact match first, then bounded edit distance, then a
// unique-prefix match. Scoping to the class keeps the suggestion
// relevant; the global method list is never consulted.
func (v *MethodValidator) suggestMethod(class, method string) string {
	methods := v.index.ClassMethods(class)
	if len(methods) == 0 {
		return ""
	}

	lower := strings.ToLower(method)
	for _, m := range methods {
		if strings.ToLower(m) == lower {
			return m
		}
	}

	if sugg := fuzzy.Suggest(method, methods, v.maxSuggestions, v.maxDistance); len(sugg) > 0 {
		return sugg[0]
	}

	var prefixed string
	for _, m := range methods {
		if strings.HasPrefix(m, method) {
			if prefixed != "" {
				return "" // ambiguous prefix, no useful suggestion
			}
			prefixed = m
		}
	}
	return prefixed
}
