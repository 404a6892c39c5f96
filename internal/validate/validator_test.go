package validate

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"vtkcheck/internal/catalog"
)

func newTestValidator(t *testing.T) *Validator {
	t.Helper()

	records := []catalog.Record{
		{
			Module:  "vtkmodules.vtkCommonDataModel",
			Class:   "vtkPolyData",
			Methods: []string{"GetNumberOfCells", "GetNumberOfPoints", "SetPoints", "SetVerts"},
			Doc:     "Concrete dataset representing vertices, lines, polygons.",
		},
		{
			Module:  "vtkmodules.vtkCommonCore",
			Class:   "vtkPoints",
			Methods: []string{"GetNumberOfPoints", "InsertNextPoint", "SetNumberOfPoints"},
		},
		{
			Module:  "vtkmodules.vtkRenderingCore",
			Class:   "vtkRenderer",
			Methods: []string{"AddActor", "ResetCamera", "SetBackground"},
		},
		{
			Module:  "vtkmodules.vtkRenderingCore",
			Class:   "vtkActor",
			Methods: []string{"GetProperty", "SetMapper"},
		},
		{
			Module:  "vtkmodules.vtkRenderingCore",
			Class:   "vtkPolyDataMapper",
			Methods: []string{"SetInputConnection", "SetInputData"},
		},
	}
	idx, err := catalog.New(records)
	if err != nil {
		t.Fatalf("failed to build test index: %v", err)
	}
	return New(idx, Options{})
}

func TestValidateCleanProgram(t *testing.T) {
	v := newTestValidator(t)

	source := `import numpy as np
from vtkmodules.vtkCommonDataModel import vtkPolyData
from vtkmodules.vtkCommonCore import vtkPoints

points = vtkPoints()
points.InsertNextPoint(0.0, 0.0, 0.0)
data = vtkPolyData()
data.SetPoints(points)
count = data.GetNumberOfPoints()
`
	result := v.Validate(context.Background(), source)
	if !result.Valid {
		t.Fatalf("expected valid, got errors: %+v", result.Errors)
	}
	if got := result.Format(); got != "No errors found." {
		t.Errorf("Format() = %q", got)
	}
}

func TestValidateMisspelledClass(t *testing.T) {
	v := newTestValidator(t)

	result := v.Validate(context.Background(), "p = vtkPolyDat()\n")
	if result.Valid {
		t.Fatal("expected invalid")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %+v, want exactly one", result.Errors)
	}
	e := result.Errors[0]
	if e.Kind != KindClass {
		t.Errorf("kind = %q, want %q", e.Kind, KindClass)
	}
	if e.Suggestion != "vtkPolyData" {
		t.Errorf("suggestion = %q, want vtkPolyData", e.Suggestion)
	}
	if e.Line != 1 {
		t.Errorf("line = %d, want 1", e.Line)
	}
}

func TestValidateMisspelledMethod(t *testing.T) {
	v := newTestValidator(t)

	source := `data = vtkPolyData()
data.SetPiont(points)
`
	result := v.Validate(context.Background(), source)
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %+v, want exactly one", result.Errors)
	}
	e := result.Errors[0]
	if e.Kind != KindMethod {
		t.Errorf("kind = %q, want %q", e.Kind, KindMethod)
	}
	if e.Suggestion != "SetPoints" {
		t.Errorf("suggestion = %q, want SetPoints", e.Suggestion)
	}
	if e.Line != 2 {
		t.Errorf("line = %d, want 2", e.Line)
	}
}

func TestValidateMethodSuggestionScopedToClass(t *testing.T) {
	v := newTestValidator(t)

	// vtkRenderer has no method near SetPoints; the suggestion must not
	// leak in from another class.
	source := `r = vtkRenderer()
r.SetPoints(p)
`
	result := v.Validate(context.Background(), source)
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %+v", result.Errors)
	}
	if result.Errors[0].Suggestion != "" {
		t.Errorf("suggestion = %q, want none", result.Errors[0].Suggestion)
	}
}

func TestValidateMethodCaseInsensitiveSuggestion(t *testing.T) {
	v := newTestValidator(t)

	source := `data = vtkPolyData()
data.setpoints(points)
`
	result := v.Validate(context.Background(), source)
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %+v", result.Errors)
	}
	if result.Errors[0].Suggestion != "SetPoints" {
		t.Errorf("suggestion = %q, want SetPoints", result.Errors[0].Suggestion)
	}
}

func TestValidateMethodUniquePrefixSuggestion(t *testing.T) {
	v := newTestValidator(t)

	source := `p = vtkPoints()
p.SetNumber(5)
`
	result := v.Validate(context.Background(), source)
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %+v", result.Errors)
	}
	if result.Errors[0].Suggestion != "SetNumberOfPoints" {
		t.Errorf("suggestion = %q, want SetNumberOfPoints", result.Errors[0].Suggestion)
	}
}

func TestValidateUnknownVariable(t *testing.T) {
	v := newTestValidator(t)

	result := v.Validate(context.Background(), "q.Render()\n")
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %+v, want exactly one", result.Errors)
	}
	e := result.Errors[0]
	if e.Kind != KindVariable {
		t.Errorf("kind = %q, want %q", e.Kind, KindVariable)
	}
	if !strings.Contains(e.Message, "'q'") {
		t.Errorf("message should name the variable: %q", e.Message)
	}
}

func TestValidateUnknownClassSuppressesMethodErrors(t *testing.T) {
	v := newTestValidator(t)

	// The unknown class is reported once; calls on the variable bound to
	// it are not reported again.
	source := `p = vtkPolyDat()
p.SetPoints(x)
p.SetVerts(y)
`
	result := v.Validate(context.Background(), source)
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %+v, want exactly one", result.Errors)
	}
	if result.Errors[0].Kind != KindClass {
		t.Errorf("kind = %q, want %q", result.Errors[0].Kind, KindClass)
	}
}

func TestValidateLastWriteWins(t *testing.T) {
	v := newTestValidator(t)

	source := `p = vtkPolyData()
p = vtkRenderer()
p.AddActor(actor)
p.SetPoints(points)
`
	result := v.Validate(context.Background(), source)
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %+v, want exactly one", result.Errors)
	}
	e := result.Errors[0]
	if e.Kind != KindMethod {
		t.Errorf("kind = %q, want %q", e.Kind, KindMethod)
	}
	if !strings.Contains(e.Message, "vtkRenderer") {
		t.Errorf("rebinding should check against vtkRenderer: %q", e.Message)
	}
	if e.Line != 4 {
		t.Errorf("line = %d, want 4", e.Line)
	}
}

func TestValidateMonolithicImportAndAttributeForm(t *testing.T) {
	v := newTestValidator(t)

	source := `import vtk

r = vtk.vtkRenderer()
r.AddActor(a)
`
	result := v.Validate(context.Background(), source)
	if !result.Valid {
		t.Fatalf("expected valid, got errors: %+v", result.Errors)
	}
}

func TestValidateAggregateAliasModuleRef(t *testing.T) {
	v := newTestValidator(t)

	// Attribute access on the aliased module namespace is not a method
	// call on a tracked variable.
	source := `import vtkmodules.all as vtk

r = vtk.vtkRenderer()
r.ResetCamera()
`
	result := v.Validate(context.Background(), source)
	if !result.Valid {
		t.Fatalf("expected valid, got errors: %+v", result.Errors)
	}
}

func TestValidateImportedAlias(t *testing.T) {
	v := newTestValidator(t)

	source := `from vtkmodules.vtkCommonDataModel import vtkPolyData as PD

p = PD()
p.SetPoints(pts)
`
	result := v.Validate(context.Background(), source)
	if !result.Valid {
		t.Fatalf("expected valid, got errors: %+v", result.Errors)
	}
}

func TestValidateSyntaxErrorIsSoleDiagnostic(t *testing.T) {
	v := newTestValidator(t)

	source := `import vtkmodules.vtkBogus
def broken(:
`
	result := v.Validate(context.Background(), source)
	if result.Valid {
		t.Fatal("expected invalid")
	}
	if len(result.Errors) != 1 {
		t.Fatalf("errors = %+v, want exactly the syntax error", result.Errors)
	}
	if result.Errors[0].Kind != KindSyntax {
		t.Errorf("kind = %q, want %q", result.Errors[0].Kind, KindSyntax)
	}
}

func TestValidateDeterministic(t *testing.T) {
	v := newTestValidator(t)

	source := `import vtkmodules.vtkCommonDataModl
p = vtkPolyDat()
p2 = vtkPolyData()
p2.SetPiont(x)
q.Render()
`
	first := v.Validate(context.Background(), source)
	second := v.Validate(context.Background(), source)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("results differ between runs:\n%+v\n%+v", first, second)
	}
	if first.Valid {
		t.Fatal("expected invalid")
	}

	// Pipeline order: imports, then classes, then methods/variables.
	kinds := make([]Kind, len(first.Errors))
	for i, e := range first.Errors {
		kinds[i] = e.Kind
	}
	want := []Kind{KindImport, KindClass, KindMethod, KindVariable}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("kinds = %v, want %v", kinds, want)
	}
}

func TestValidateNonVTKCodeIgnored(t *testing.T) {
	v := newTestValidator(t)

	source := `import os
import numpy as np

arr = np.zeros(3)
path = os.path.join("a", "b")
`
	result := v.Validate(context.Background(), source)
	if !result.Valid {
		t.Fatalf("non-VTK code should pass untouched, got errors: %+v", result.Errors)
	}
}

func TestResultFormat(t *testing.T) {
	r := &Result{
		Valid: false,
		Errors: []Error{
			{Kind: KindClass, Message: "Class 'vtkPolyDat' not found in VTK API", Line: 3, Suggestion: "vtkPolyData"},
			{Kind: KindVariable, Message: "Variable 'q' is used before any instantiation was seen"},
		},
	}
	got := r.Format()
	if !strings.Contains(got, "2 error(s) found:") {
		t.Errorf("Format() missing count header: %q", got)
	}
	if !strings.Contains(got, "[UNKNOWN_CLASS]") {
		t.Errorf("Format() missing kind tag: %q", got)
	}
	if !strings.Contains(got, "(line 3)") {
		t.Errorf("Format() missing line: %q", got)
	}
	if !strings.Contains(got, "Did you mean: vtkPolyData") {
		t.Errorf("Format() missing suggestion: %q", got)
	}
}
