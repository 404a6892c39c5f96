package extract

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func extractSource(t *testing.T, source string) *Code {
	t.Helper()
	code, err := New(nil).Extract(context.Background(), []byte(source))
	if err != nil {
		t.Fatalf("Extract failed: %v", err)
	}
	return code
}

func TestExtractImports(t *testing.T) {
	source := `import vtk
import numpy as np
from vtkmodules.vtkCommonDataModel import vtkPolyData
from vtkmodules.vtkRenderingCore import vtkActor as Actor, vtkRenderer
from vtkmodules.all import *
`
	code := extractSource(t, source)

	want := []Import{
		{Module: "vtk", Line: 1},
		{Module: "numpy", Alias: "np", Line: 2},
		{Module: "vtkmodules.vtkCommonDataModel", Name: "vtkPolyData", Line: 3},
		{Module: "vtkmodules.vtkRenderingCore", Name: "vtkActor", Alias: "Actor", Line: 4},
		{Module: "vtkmodules.vtkRenderingCore", Name: "vtkRenderer", Line: 4},
		{Module: "vtkmodules.all", Name: "*", Line: 5},
	}
	if !reflect.DeepEqual(code.Imports, want) {
		t.Errorf("Imports = %+v, want %+v", code.Imports, want)
	}
}

func TestExtractSkipsRelativeImports(t *testing.T) {
	code := extractSource(t, "from . import helpers\nfrom .util import thing\n")
	if len(code.Imports) != 0 {
		t.Errorf("relative imports should be skipped, got %+v", code.Imports)
	}
}

func TestExtractInstantiations(t *testing.T) {
	source := `points = vtkPoints()
data = vtk.vtkPolyData()
helper = make_helper()
`
	code := extractSource(t, source)

	want := []Instantiation{
		{Variable: "points", Class: "vtkPoints", Line: 1},
		{Variable: "data", Class: "vtkPolyData", Base: "vtk", Line: 2},
	}
	if !reflect.DeepEqual(code.Instantiations, want) {
		t.Errorf("Instantiations = %+v, want %+v", code.Instantiations, want)
	}
}

func TestExtractAttributeConstructorNotDoubleCounted(t *testing.T) {
	// vtk.vtkPolyData() is recorded as an instantiation; it must not also
	// surface as a method call on "vtk".
	code := extractSource(t, "data = vtk.vtkPolyData()\n")

	if len(code.Instantiations) != 1 {
		t.Fatalf("Instantiations = %+v", code.Instantiations)
	}
	if len(code.Calls) != 0 {
		t.Errorf("Calls = %+v, want none", code.Calls)
	}
}

func TestExtractMethodCalls(t *testing.T) {
	source := `data = vtkPolyData()
data.SetPoints(points)
count = data.GetNumberOfPoints()
`
	code := extractSource(t, source)

	want := []MethodCall{
		{Variable: "data", Method: "SetPoints", Line: 2},
		{Variable: "data", Method: "GetNumberOfPoints", Line: 3},
	}
	if !reflect.DeepEqual(code.Calls, want) {
		t.Errorf("Calls = %+v, want %+v", code.Calls, want)
	}
}

func TestExtractNestedCallArguments(t *testing.T) {
	code := extractSource(t, "mapper.SetInputConnection(reader.GetOutputPort())\n")

	want := []MethodCall{
		{Variable: "mapper", Method: "SetInputConnection", Line: 1},
		{Variable: "reader", Method: "GetOutputPort", Line: 1},
	}
	if !reflect.DeepEqual(code.Calls, want) {
		t.Errorf("Calls = %+v, want %+v", code.Calls, want)
	}
}

func TestExtractSkipsNonClassAssignments(t *testing.T) {
	source := `x = 1
name = "vtkPolyData"
result = compute(x)
self.actor = vtkActor()
`
	code := extractSource(t, source)
	if len(code.Instantiations) != 0 {
		t.Errorf("Instantiations = %+v, want none", code.Instantiations)
	}
}

func TestExtractSyntaxError(t *testing.T) {
	_, err := New(nil).Extract(context.Background(), []byte("def broken(:\n"))
	if err == nil {
		t.Fatal("Extract should fail on unparseable source")
	}

	var syntaxErr *SyntaxError
	if !errors.As(err, &syntaxErr) {
		t.Fatalf("error should be a SyntaxError, got %T", err)
	}
	if syntaxErr.Line < 1 {
		t.Errorf("SyntaxError.Line = %d, want >= 1", syntaxErr.Line)
	}
}

func TestExtractEmptySource(t *testing.T) {
	code := extractSource(t, "")
	if len(code.Imports)+len(code.Instantiations)+len(code.Calls) != 0 {
		t.Errorf("empty source should extract nothing, got %+v", code)
	}
}
