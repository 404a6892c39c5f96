package mcp

// Tool describes one tool in tools/list.
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// toolDefinitions returns the definitions for all registered tools.
func (s *Server) toolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "vtk_validate_code",
			Description: "Statically validate a Python snippet against the VTK API: unknown imports, classes, methods, and variables, each with a nearest-match suggestion",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"code": map[string]interface{}{
						"type":        "string",
						"description": "Python source code to validate",
					},
				},
				"required": []string{"code"},
			},
		},
		{
			Name:        "vtk_validate_import",
			Description: "Validate a single VTK import statement and suggest corrections",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"import_statement": map[string]interface{}{
						"type":        "string",
						"description": "Python import statement to validate",
					},
				},
				"required": []string{"import_statement"},
			},
		},
		{
			Name:        "vtk_get_class_info",
			Description: "Get information about a VTK class: module path, description, and methods",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"class_name": map[string]interface{}{
						"type":        "string",
						"description": "VTK class name (e.g. 'vtkPolyDataMapper')",
					},
				},
				"required": []string{"class_name"},
			},
		},
		{
			Name:        "vtk_search_classes",
			Description: "Search for VTK classes by name substring",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"query": map[string]interface{}{
						"type":        "string",
						"description": "Search term (e.g. 'reader', 'mapper', 'actor')",
					},
					"limit": map[string]interface{}{
						"type":        "integer",
						"default":     10,
						"description": "Maximum number of results",
					},
				},
				"required": []string{"query"},
			},
		},
		{
			Name:        "vtk_get_module_classes",
			Description: "List all VTK classes in a specific module",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"module": map[string]interface{}{
						"type":        "string",
						"description": "Module name (e.g. 'vtkmodules.vtkRenderingCore')",
					},
				},
				"required": []string{"module"},
			},
		},
		{
			Name:        "vtk_get_method_info",
			Description: "Check whether a class has a method and return its catalog entry",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"class_name": map[string]interface{}{
						"type":        "string",
						"description": "VTK class name",
					},
					"method_name": map[string]interface{}{
						"type":        "string",
						"description": "Method name",
					},
				},
				"required": []string{"class_name", "method_name"},
			},
		},
	}
}

// registerTools wires tool names to their handlers.
func (s *Server) registerTools() {
	s.tools["vtk_validate_code"] = s.toolValidateCode
	s.tools["vtk_validate_import"] = s.toolValidateImport
	s.tools["vtk_get_class_info"] = s.toolGetClassInfo
	s.tools["vtk_search_classes"] = s.toolSearchClasses
	s.tools["vtk_get_module_classes"] = s.toolGetModuleClasses
	s.tools["vtk_get_method_info"] = s.toolGetMethodInfo
}
