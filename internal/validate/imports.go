package validate

import (
	"fmt"

	"vtkcheck/internal/catalog"
	"vtkcheck/internal/extract"
	"vtkcheck/internal/fuzzy"
	"vtkcheck/internal/rules"
)

// ImportValidator checks import statements against the catalog and the
// import ruleset. It never stops at the first error.
type ImportValidator struct {
	index          *catalog.Index
	rules          *rules.Ruleset
	maxSuggestions int
	maxDistance    int
}

// NewImportValidator creates an import validator.
func NewImportValidator(index *catalog.Index, rs *rules.Ruleset, maxSuggestions, maxDistance int) *ImportValidator {
	return &ImportValidator{
		index:          index,
		rules:          rs,
		maxSuggestions: maxSuggestions,
		maxDistance:    maxDistance,
	}
}

// Validate checks every import and returns the accumulated diagnostics.
func (v *ImportValidator) Validate(imports []extract.Import) []Error {
	var errs []Error
	for _, imp := range imports {
		check := v.Check(imp)
		if check.Valid {
			continue
		}
		errs = append(errs, Error{
			Kind:       KindImport,
			Message:    check.Message,
			Line:       imp.Line,
			Suggestion: check.Suggestion,
		})
	}
	return errs
}

// Check produces the verdict for one import. Non-VTK imports are always
// valid: this tool is only responsible for the catalog's surface.
func (v *ImportValidator) Check(imp extract.Import) ImportCheck {
	if !v.rules.Applies(imp.Module) {
		return ImportCheck{Valid: true, Message: fmt.Sprintf("Non-VTK import '%s' (not checked)", imp.Module)}
	}

	if imp.Name == "" {
		return v.checkModuleImport(imp)
	}
	return v.checkFromImport(imp)
}

func (v *ImportValidator) checkModuleImport(imp extract.Import) ImportCheck {
	switch {
	case v.rules.IsMonolithic(imp.Module):
		return ImportCheck{Valid: true, Message: "Monolithic import (loads the entire VTK API)"}
	case v.rules.IsAggregate(imp.Module):
		return ImportCheck{Valid: true, Message: "Modular aggregate import (re-exports all classes)"}
	case v.rules.IsBackend(imp.Module):
		return ImportCheck{Valid: true, Message: fmt.Sprintf("Backend module import '%s' (side-effect import required at runtime)", imp.Module)}
	case v.index.HasModule(imp.Module):
		return ImportCheck{
			Valid: false,
			Message: fmt.Sprintf(
				"Module '%s' should not be imported directly; use the from-import form: from %s import <Class>",
				imp.Module, imp.Module),
		}
	default:
		check := ImportCheck{
			Valid:   false,
			Message: fmt.Sprintf("Unknown VTK module '%s'", imp.Module),
		}
		if sugg := fuzzy.Suggest(imp.Module, v.index.ModuleNames(), v.maxSuggestions, v.maxDistance); len(sugg) > 0 {
			check.Suggestion = sugg[0]
			check.Message += fmt.Sprintf(". Did you mean '%s'?", sugg[0])
		}
		return check
	}
}

func (v *ImportValidator) checkFromImport(imp extract.Import) ImportCheck {
	if imp.Name == "*" {
		if v.rules.IsAggregate(imp.Module) || v.rules.IsMonolithic(imp.Module) || v.index.HasModule(imp.Module) {
			return ImportCheck{Valid: true, Message: fmt.Sprintf("Wildcard import from '%s'", imp.Module)}
		}
		return ImportCheck{Valid: false, Message: fmt.Sprintf("Unknown VTK module '%s'", imp.Module)}
	}

	entry, ok := v.index.FindClass(imp.Name)
	if !ok {
		// Suggestions come from class names only: the broken token is
		// the class, whatever the module looks like.
		check := ImportCheck{
			Valid:   false,
			Message: fmt.Sprintf("Class '%s' not found in VTK API", imp.Name),
		}
		if sugg := fuzzy.Suggest(imp.Name, v.index.AllClassNames(), v.maxSuggestions, v.maxDistance); len(sugg) > 0 {
			check.Suggestion = sugg[0]
			check.Message += fmt.Sprintf(". Did you mean '%s'?", sugg[0])
		}
		return check
	}

	if v.rules.IsAggregate(imp.Module) || v.rules.IsMonolithic(imp.Module) {
		return ImportCheck{Valid: true, Message: fmt.Sprintf("Valid import of '%s'", imp.Name)}
	}
	if entry.Module == imp.Module {
		return ImportCheck{Valid: true, Message: fmt.Sprintf("Valid import of '%s' from '%s'", imp.Name, imp.Module)}
	}

	return ImportCheck{
		Valid: false,
		Message: fmt.Sprintf("Incorrect module for '%s': it lives in '%s', not '%s'",
			imp.Name, entry.Module, imp.Module),
		Suggestion: entry.Module,
	}
}
