package validate

import (
	"fmt"

	"vtkcheck/internal/catalog"
	"vtkcheck/internal/extract"
	"vtkcheck/internal/fuzzy"
)

// ClassValidator checks instantiations against the catalog. It runs
// independently of import diagnostics: class existence and import
// correctness are orthogonal.
type ClassValidator struct {
	index          *catalog.Index
	maxSuggestions int
	maxDistance    int
}

// NewClassValidator creates a class validator.
func NewClassValidator(index *catalog.Index, maxSuggestions, maxDistance int) *ClassValidator {
	return &ClassValidator{
		index:          index,
		maxSuggestions: maxSuggestions,
		maxDistance:    maxDistance,
	}
}

// Validate checks every instantiation, resolving imported aliases first.
func (v *ClassValidator) Validate(insts []extract.Instantiation, bindings *Bindings) []Error {
	var errs []Error
	for _, inst := range insts {
		class := bindings.Resolve(inst.Class)
		if _, ok := v.index.FindClass(class); ok {
			continue
		}

		e := Error{
			Kind:    KindClass,
			Message: fmt.Sprintf("Class '%s' not found in VTK API", class),
			Line:    inst.Line,
		}
		if sugg := fuzzy.Suggest(class, v.index.AllClassNames(), v.maxSuggestions, v.maxDistance); len(sugg) > 0 {
			e.Suggestion = sugg[0]
			e.Message += fmt.Sprintf(". Did you mean '%s'? Apply the smallest change that fixes the name.", sugg[0])
		}
		errs = append(errs, e)
	}
	return errs
}
