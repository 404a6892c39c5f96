package validate

import "vtkcheck/internal/extract"

// Bindings is the type tracker state: variable name to the class it was
// last constructed from. The scan is linear and last-write-wins; control
// flow is deliberately ignored, so a variable rebound inside a branch is
// treated as always rebound after that point.
type Bindings struct {
	vars         map[string]string
	classAliases map[string]string
	moduleRefs   map[string]struct{}
}

// Bind processes imports first (to resolve aliases), then instantiations
// in source order.
func Bind(code *extract.Code) *Bindings {
	b := &Bindings{
		vars:         make(map[string]string),
		classAliases: make(map[string]string),
		moduleRefs:   make(map[string]struct{}),
	}

	for _, imp := range code.Imports {
		if imp.Name == "" || imp.Name == "*" {
			// Whole-module import: the alias (or the bare module name)
			// becomes an attribute base, not a class binding.
			if imp.Alias != "" {
				b.moduleRefs[imp.Alias] = struct{}{}
			} else {
				b.moduleRefs[imp.Module] = struct{}{}
			}
			continue
		}
		if imp.Alias != "" {
			b.classAliases[imp.Alias] = imp.Name
		}
	}

	for _, inst := range code.Instantiations {
		b.vars[inst.Variable] = b.Resolve(inst.Class)
	}

	return b
}

// Resolve maps an imported alias back to the real class name. Names that
// are not aliases resolve to themselves.
func (b *Bindings) Resolve(name string) string {
	if real, ok := b.classAliases[name]; ok {
		return real
	}
	return name
}

// Class returns the current binding for a variable.
func (b *Bindings) Class(variable string) (string, bool) {
	class, ok := b.vars[variable]
	return class, ok
}

// IsModuleRef reports whether an identifier names an imported module (or
// its alias). Attribute calls on module refs are namespace accesses, not
// method calls on tracked objects.
func (b *Bindings) IsModuleRef(name string) bool {
	_, ok := b.moduleRefs[name]
	return ok
}
