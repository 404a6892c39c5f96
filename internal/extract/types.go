package extract

// Import is one normalized import statement.
//
//	import vtk                  -> {Module: "vtk"}
//	import vtkmodules.all as v  -> {Module: "vtkmodules.all", Alias: "v"}
//	from m import A as B        -> {Module: "m", Name: "A", Alias: "B"}
type Import struct {
	Module string `json:"module"`
	Name   string `json:"name,omitempty"`
	Alias  string `json:"alias,omitempty"`
	Line   int    `json:"line"`
}

// Instantiation is a simple-shape constructor call: v = ClassName(...)
// or v = alias.ClassName(...).
type Instantiation struct {
	Variable string `json:"variable"`
	Class    string `json:"class"`
	Base     string `json:"base,omitempty"` // alias before the dot, if any
	Line     int    `json:"line"`
}

// MethodCall is a simple-shape method call: v.Method(...).
type MethodCall struct {
	Variable string `json:"variable"`
	Method   string `json:"method"`
	Line     int    `json:"line"`
}

// Code is the structural summary of one source snippet, in source order.
// Shapes the extractor does not recognize (attribute chains, calls on
// call results, container-typed assignments) produce no entries and are
// invisible to the validators; that is a documented limitation, not a
// failure.
type Code struct {
	Imports        []Import        `json:"imports"`
	Instantiations []Instantiation `json:"instantiations"`
	Calls          []MethodCall    `json:"calls"`
}
