// Package rules holds the import ruleset: which VTK module spellings are
// acceptable as plain imports and how class-like identifiers are
// recognized. The defaults match current VTK packaging; a rules.toml
// file can override them for older or vendored builds.
package rules

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	gotoml "github.com/pelletier/go-toml/v2"
)

// Ruleset describes import validation policy.
type Ruleset struct {
	// MonolithicModules are modules importable as a whole ("import vtk").
	MonolithicModules []string `toml:"monolithic_modules"`
	// AggregateModules re-export every class ("import vtkmodules.all as vtk").
	AggregateModules []string `toml:"aggregate_modules"`
	// BackendModules must be imported for side effects even though no
	// class is referenced from them (rendering/interaction backends).
	BackendModules []string `toml:"backend_modules"`
	// ModulePrefix marks imports this tool is responsible for; anything
	// else (os, sys, numpy) is ignored.
	ModulePrefix string `toml:"module_prefix"`
	// ClassPrefix marks identifiers treated as catalog classes even when
	// they do not start with an uppercase letter.
	ClassPrefix string `toml:"class_prefix"`
}

// Default returns the ruleset for stock VTK 9 packaging.
func Default() *Ruleset {
	return &Ruleset{
		MonolithicModules: []string{"vtk"},
		AggregateModules:  []string{"vtkmodules.all"},
		BackendModules: []string{
			"vtkmodules.vtkRenderingOpenGL2",
			"vtkmodules.vtkInteractionStyle",
			"vtkmodules.vtkRenderingFreeType",
			"vtkmodules.vtkRenderingVolumeOpenGL2",
		},
		ModulePrefix: "vtk",
		ClassPrefix:  "vtk",
	}
}

// LoadFile reads a ruleset from a TOML file. Fields omitted from the
// file keep their default values.
func LoadFile(path string) (*Ruleset, error) {
	rs := Default()
	if _, err := toml.DecodeFile(path, rs); err != nil {
		return nil, fmt.Errorf("failed to load ruleset %s: %w", path, err)
	}
	return rs, nil
}

// WriteDefault writes the default ruleset to path so users have a
// template to edit.
func WriteDefault(path string) error {
	data, err := gotoml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to encode default ruleset: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write ruleset: %w", err)
	}
	return nil
}

// Applies reports whether a module import falls under this tool's
// responsibility at all.
func (r *Ruleset) Applies(module string) bool {
	return module == r.ModulePrefix || strings.HasPrefix(module, r.ModulePrefix)
}

// IsMonolithic reports whether module may be imported as a whole.
func (r *Ruleset) IsMonolithic(module string) bool {
	return contains(r.MonolithicModules, module)
}

// IsAggregate reports whether module re-exports the full class surface.
func (r *Ruleset) IsAggregate(module string) bool {
	return contains(r.AggregateModules, module)
}

// IsBackend reports whether module is an allowed side-effect import.
func (r *Ruleset) IsBackend(module string) bool {
	return contains(r.BackendModules, module)
}

// ClassLike reports whether an identifier should be treated as a class
// reference: uppercase-initial names and names carrying the class
// prefix. Plain function calls ("some_function()") fail both tests and
// are never tracked as instantiations.
func (r *Ruleset) ClassLike(name string) bool {
	if name == "" {
		return false
	}
	if name[0] >= 'A' && name[0] <= 'Z' {
		return true
	}
	return r.ClassPrefix != "" && strings.HasPrefix(name, r.ClassPrefix)
}

// PrefixClass is the stricter class test used where the syntactic
// context is ambiguous (attribute calls): the name must carry the class
// prefix. Falls back to the uppercase rule when no prefix is configured.
func (r *Ruleset) PrefixClass(name string) bool {
	if r.ClassPrefix == "" {
		return name != "" && name[0] >= 'A' && name[0] <= 'Z'
	}
	return strings.HasPrefix(name, r.ClassPrefix)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
