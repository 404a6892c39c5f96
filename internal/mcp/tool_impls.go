package mcp

import (
	"context"
	"fmt"
)

// toolValidateCode implements the vtk_validate_code tool.
func (s *Server) toolValidateCode(params map[string]interface{}) (interface{}, error) {
	code, ok := params["code"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'code' parameter")
	}

	result := s.validator.Validate(context.Background(), code)

	return map[string]interface{}{
		"isValid": result.Valid,
		"errors":  result.Errors,
		"report":  result.Format(),
	}, nil
}

// toolValidateImport implements the vtk_validate_import tool.
func (s *Server) toolValidateImport(params map[string]interface{}) (interface{}, error) {
	stmt, ok := params["import_statement"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'import_statement' parameter")
	}

	return s.validator.ValidateImport(context.Background(), stmt), nil
}

// toolGetClassInfo implements the vtk_get_class_info tool.
func (s *Server) toolGetClassInfo(params map[string]interface{}) (interface{}, error) {
	className, ok := params["class_name"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'class_name' parameter")
	}

	idx := s.validator.Index()
	entry, found := idx.FindClass(className)
	if !found {
		return map[string]interface{}{
			"error":      fmt.Sprintf("Class '%s' not found in VTK API", className),
			"class_name": className,
			"found":      false,
		}, nil
	}

	return map[string]interface{}{
		"class_name": entry.Name,
		"module":     entry.Module,
		"doc":        entry.Summary(),
		"methods":    idx.ClassMethods(className),
		"found":      true,
	}, nil
}

// toolSearchClasses implements the vtk_search_classes tool.
func (s *Server) toolSearchClasses(params map[string]interface{}) (interface{}, error) {
	query, ok := params["query"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'query' parameter")
	}

	limit := 10
	if raw, ok := params["limit"].(float64); ok && raw > 0 {
		limit = int(raw)
	}

	return s.validator.Index().SearchClasses(query, limit), nil
}

// toolGetModuleClasses implements the vtk_get_module_classes tool.
func (s *Server) toolGetModuleClasses(params map[string]interface{}) (interface{}, error) {
	module, ok := params["module"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'module' parameter")
	}

	classes := s.validator.Index().ClassesInModule(module)
	return map[string]interface{}{
		"module":  module,
		"classes": classes,
		"count":   len(classes),
	}, nil
}

// toolGetMethodInfo implements the vtk_get_method_info tool.
func (s *Server) toolGetMethodInfo(params map[string]interface{}) (interface{}, error) {
	className, ok := params["class_name"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'class_name' parameter")
	}
	methodName, ok := params["method_name"].(string)
	if !ok {
		return nil, fmt.Errorf("missing or invalid 'method_name' parameter")
	}

	entry, found := s.validator.Index().FindMethod(className, methodName)
	if !found {
		return map[string]interface{}{
			"error":       fmt.Sprintf("Method '%s' not found in class '%s'", methodName, className),
			"class_name":  className,
			"method_name": methodName,
			"found":       false,
		}, nil
	}

	return map[string]interface{}{
		"class_name":  entry.Class,
		"method_name": entry.Name,
		"qualified":   entry.QualifiedName,
		"module":      entry.Module,
		"found":       true,
	}, nil
}
