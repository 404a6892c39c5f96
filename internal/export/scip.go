// Package export writes the catalog as a SCIP index so editors and code
// intelligence tools can navigate the VTK API surface without loading
// the JSONL catalog themselves.
package export

import (
	"fmt"
	"os"
	"strings"

	scippb "github.com/sourcegraph/scip/bindings/go/scip"
	"google.golang.org/protobuf/proto"

	"vtkcheck/internal/catalog"
)

// WriteSCIP serializes the catalog index to a SCIP protobuf file. One
// SCIP document is emitted per VTK module; classes and methods become
// symbol information entries using scip-python symbol syntax.
func WriteSCIP(idx *catalog.Index, path, toolVersion string) error {
	out := &scippb.Index{
		Metadata: &scippb.Metadata{
			Version: scippb.ProtocolVersion_UnspecifiedProtocolVersion,
			ToolInfo: &scippb.ToolInfo{
				Name:    "vtkcheck",
				Version: toolVersion,
			},
			ProjectRoot:          "file:///vtk",
			TextDocumentEncoding: scippb.TextEncoding_UTF8,
		},
	}

	for _, module := range idx.ModuleNames() {
		doc := &scippb.Document{
			Language:     "python",
			RelativePath: strings.ReplaceAll(module, ".", "/") + ".py",
		}
		for _, className := range idx.ClassesInModule(module) {
			entry, ok := idx.FindClass(className)
			if !ok {
				continue
			}
			classSymbol := symbolForClass(module, className)
			info := &scippb.SymbolInformation{
				Symbol:      classSymbol,
				DisplayName: className,
				Kind:        scippb.SymbolInformation_Class,
			}
			if summary := entry.Summary(); summary != "" {
				info.Documentation = []string{summary}
			}
			doc.Symbols = append(doc.Symbols, info)

			for _, method := range idx.ClassMethods(className) {
				doc.Symbols = append(doc.Symbols, &scippb.SymbolInformation{
					Symbol:      classSymbol + method + "().",
					DisplayName: method,
					Kind:        scippb.SymbolInformation_Method,
				})
			}
		}
		out.Documents = append(out.Documents, doc)
	}

	data, err := proto.Marshal(out)
	if err != nil {
		return fmt.Errorf("failed to encode SCIP index: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write SCIP index: %w", err)
	}
	return nil
}

// symbolForClass builds a scip-python descriptor for a class. The
// trailing '#' marks a type descriptor per the SCIP symbol grammar.
func symbolForClass(module, className string) string {
	return fmt.Sprintf("scip-python python vtk . %s/%s#", module, className)
}
