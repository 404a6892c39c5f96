// Package extract parses Python source with tree-sitter and collects the
// structural summary the validators consume: imports, simple
// instantiations, and simple method calls. Nothing is executed.
package extract

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"vtkcheck/internal/rules"
)

// SyntaxError reports source text that could not be parsed. It is fatal
// for the validation request that submitted the source.
type SyntaxError struct {
	Line int
}

func (e *SyntaxError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("syntax error near line %d", e.Line)
	}
	return "syntax error"
}

// Extractor walks parsed Python source. Safe for concurrent use: each
// Extract call creates its own tree-sitter parser.
type Extractor struct {
	rules *rules.Ruleset
}

// New creates an extractor using the given ruleset to decide which call
// targets look like catalog classes.
func New(rs *rules.Ruleset) *Extractor {
	if rs == nil {
		rs = rules.Default()
	}
	return &Extractor{rules: rs}
}

// Extract parses source and collects imports, instantiations, and method
// calls in source order. A tree containing parse errors fails the whole
// request with a SyntaxError; unrecognized-but-parseable shapes are
// silently skipped.
func (e *Extractor) Extract(ctx context.Context, source []byte) (*Code, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("parse failed: %w", err)
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, &SyntaxError{Line: firstErrorLine(root)}
	}

	w := &walker{
		rules:    e.rules,
		source:   source,
		code:     &Code{},
		consumed: make(map[uint32]struct{}),
	}
	w.walk(root)
	return w.code, nil
}

type walker struct {
	rules  *rules.Ruleset
	source []byte
	code   *Code
	// consumed holds start offsets of call nodes already recorded as
	// instantiations, so they are not double-counted as method calls.
	consumed map[uint32]struct{}
}

func (w *walker) walk(node *sitter.Node) {
	switch node.Type() {
	case "import_statement":
		w.collectImport(node)
	case "import_from_statement":
		w.collectFromImport(node)
	case "assignment":
		w.collectAssignment(node)
	case "call":
		w.collectCall(node)
	}

	for i := 0; i < int(node.ChildCount()); i++ {
		w.walk(node.Child(i))
	}
}

// collectImport handles "import a.b" and "import a.b as c".
func (w *walker) collectImport(node *sitter.Node) {
	line := lineOf(node)
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "dotted_name", "identifier":
			w.code.Imports = append(w.code.Imports, Import{
				Module: child.Content(w.source),
				Line:   line,
			})
		case "aliased_import":
			name := child.ChildByFieldName("name")
			alias := child.ChildByFieldName("alias")
			if name == nil {
				continue
			}
			imp := Import{Module: name.Content(w.source), Line: line}
			if alias != nil {
				imp.Alias = alias.Content(w.source)
			}
			w.code.Imports = append(w.code.Imports, imp)
		}
	}
}

// collectFromImport handles "from a.b import X, Y as Z", including the
// parenthesized multi-line form. Relative imports are never VTK and are
// skipped.
func (w *walker) collectFromImport(node *sitter.Node) {
	line := lineOf(node)

	moduleNode := node.ChildByFieldName("module_name")
	if moduleNode == nil || moduleNode.Type() == "relative_import" {
		return
	}
	module := moduleNode.Content(w.source)

	sawImportKeyword := false
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		if child.Type() == "import" {
			sawImportKeyword = true
			continue
		}
		if !sawImportKeyword {
			continue
		}
		switch child.Type() {
		case "dotted_name", "identifier":
			w.code.Imports = append(w.code.Imports, Import{
				Module: module,
				Name:   child.Content(w.source),
				Line:   line,
			})
		case "aliased_import":
			name := child.ChildByFieldName("name")
			alias := child.ChildByFieldName("alias")
			if name == nil {
				continue
			}
			imp := Import{Module: module, Name: name.Content(w.source), Line: line}
			if alias != nil {
				imp.Alias = alias.Content(w.source)
			}
			w.code.Imports = append(w.code.Imports, imp)
		case "wildcard_import":
			w.code.Imports = append(w.code.Imports, Import{
				Module: module,
				Name:   "*",
				Line:   line,
			})
		}
	}
}

// collectAssignment recognizes v = ClassName(...) and
// v = alias.ClassName(...). Any other assignment shape is skipped.
func (w *walker) collectAssignment(node *sitter.Node) {
	left := node.ChildByFieldName("left")
	right := node.ChildByFieldName("right")
	if left == nil || right == nil {
		return
	}
	if left.Type() != "identifier" || right.Type() != "call" {
		return
	}

	fn := right.ChildByFieldName("function")
	if fn == nil {
		return
	}

	variable := left.Content(w.source)
	line := lineOf(node)

	switch fn.Type() {
	case "identifier":
		class := fn.Content(w.source)
		if !w.rules.ClassLike(class) {
			return
		}
		w.code.Instantiations = append(w.code.Instantiations, Instantiation{
			Variable: variable,
			Class:    class,
			Line:     line,
		})
	case "attribute":
		obj := fn.ChildByFieldName("object")
		attr := fn.ChildByFieldName("attribute")
		if obj == nil || attr == nil || obj.Type() != "identifier" {
			return
		}
		class := attr.Content(w.source)
		// Attribute form is stricter: only prefix-matching names count,
		// so self.MakeActor() is not mistaken for a constructor.
		if !w.rules.PrefixClass(class) {
			return
		}
		w.code.Instantiations = append(w.code.Instantiations, Instantiation{
			Variable: variable,
			Class:    class,
			Base:     obj.Content(w.source),
			Line:     line,
		})
		w.consumed[right.StartByte()] = struct{}{}
	}
}

// collectCall recognizes v.Method(...) where v is a simple identifier.
func (w *walker) collectCall(node *sitter.Node) {
	if _, done := w.consumed[node.StartByte()]; done {
		return
	}

	fn := node.ChildByFieldName("function")
	if fn == nil || fn.Type() != "attribute" {
		return
	}
	obj := fn.ChildByFieldName("object")
	attr := fn.ChildByFieldName("attribute")
	if obj == nil || attr == nil || obj.Type() != "identifier" {
		return
	}

	w.code.Calls = append(w.code.Calls, MethodCall{
		Variable: obj.Content(w.source),
		Method:   attr.Content(w.source),
		Line:     lineOf(node),
	})
}

func lineOf(node *sitter.Node) int {
	return int(node.StartPoint().Row) + 1
}

// firstErrorLine walks the tree for the first ERROR or missing node.
func firstErrorLine(node *sitter.Node) int {
	if node.Type() == "ERROR" || node.IsMissing() {
		return lineOf(node)
	}
	for i := 0; i < int(node.ChildCount()); i++ {
		if line := firstErrorLine(node.Child(i)); line > 0 {
			return line
		}
	}
	return 0
}
