// Package catalog owns the VTK API catalog: the immutable in-memory
// index every validator consults, the JSONL loader that builds it, and
// the compiled sqlite store produced by "vtkcheck index".
//
// The index is constructed once and never mutated afterwards, so it is
// safe for any number of concurrent validation requests without locking.
package catalog

import (
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// Kind discriminates catalog entries.
type Kind string

const (
	// KindModule is a VTK module (e.g. vtkmodules.vtkRenderingCore)
	KindModule Kind = "module"
	// KindClass is a VTK class
	KindClass Kind = "class"
	// KindMethod is a method of a VTK class
	KindMethod Kind = "method"
)

// Entry is one documented symbol. Immutable once loaded.
type Entry struct {
	Kind          Kind   `json:"kind"`
	Name          string `json:"name"`
	QualifiedName string `json:"qualifiedName"`
	Module        string `json:"module,omitempty"`
	Class         string `json:"class,omitempty"` // owning class, methods only
	Doc           string `json:"doc,omitempty"`
}

// Summary returns the first line of the entry documentation.
func (e *Entry) Summary() string {
	doc := strings.TrimSpace(e.Doc)
	if i := strings.IndexByte(doc, '\n'); i >= 0 {
		doc = doc[:i]
	}
	return doc
}

// Record is one catalog input line: a class, its module, and its method
// names.
type Record struct {
	Module  string   `json:"module"`
	Class   string   `json:"class"`
	Methods []string `json:"methods"`
	Doc     string   `json:"doc,omitempty"`
}

// ClassSummary is a search result row.
type ClassSummary struct {
	Name        string `json:"class_name"`
	Module      string `json:"module"`
	Description string `json:"description"`
}

// Index is the read-only lookup structure over the catalog.
type Index struct {
	records     []Record
	classes     map[string]*Entry
	methods     map[string]map[string]*Entry
	methodNames map[string][]string // class -> sorted method names
	modules     map[string][]string // module -> sorted class names
	classNames  []string
	moduleNames []string
	fingerprint string
}

// New builds an index from catalog records. A record with an empty class
// name is rejected; a class seen twice keeps the last record
// (re-exported classes appear once per module in some doc dumps).
func New(records []Record) (*Index, error) {
	idx := &Index{
		classes:     make(map[string]*Entry, len(records)),
		methods:     make(map[string]map[string]*Entry, len(records)),
		methodNames: make(map[string][]string, len(records)),
		modules:     make(map[string][]string),
	}

	byClass := make(map[string]Record, len(records))
	for i, rec := range records {
		if rec.Class == "" {
			return nil, fmt.Errorf("record %d: missing class name", i+1)
		}
		byClass[rec.Class] = rec
	}

	idx.records = make([]Record, 0, len(byClass))
	for _, rec := range byClass {
		idx.records = append(idx.records, rec)
	}
	sort.Slice(idx.records, func(i, j int) bool {
		return idx.records[i].Class < idx.records[j].Class
	})

	for _, rec := range idx.records {
		qualified := rec.Class
		if rec.Module != "" {
			qualified = rec.Module + "." + rec.Class
		}
		idx.classes[rec.Class] = &Entry{
			Kind:          KindClass,
			Name:          rec.Class,
			QualifiedName: qualified,
			Module:        rec.Module,
			Doc:           rec.Doc,
		}
		idx.classNames = append(idx.classNames, rec.Class)

		if rec.Module != "" {
			idx.modules[rec.Module] = append(idx.modules[rec.Module], rec.Class)
		}

		perClass := make(map[string]*Entry, len(rec.Methods))
		names := make([]string, 0, len(rec.Methods))
		for _, m := range rec.Methods {
			if m == "" {
				continue
			}
			if _, dup := perClass[m]; dup {
				continue
			}
			perClass[m] = &Entry{
				Kind:          KindMethod,
				Name:          m,
				QualifiedName: rec.Class + "." + m,
				Module:        rec.Module,
				Class:         rec.Class,
			}
			names = append(names, m)
		}
		sort.Strings(names)
		idx.methods[rec.Class] = perClass
		idx.methodNames[rec.Class] = names
	}

	idx.moduleNames = make([]string, 0, len(idx.modules))
	for m := range idx.modules {
		sort.Strings(idx.modules[m])
		idx.moduleNames = append(idx.moduleNames, m)
	}
	sort.Strings(idx.moduleNames)

	idx.fingerprint = fingerprint(idx.records)
	return idx, nil
}

// FindClass returns the class entry by exact name.
func (idx *Index) FindClass(name string) (*Entry, bool) {
	e, ok := idx.classes[name]
	return e, ok
}

// FindMethod returns the method entry by exact (class, method) pair.
func (idx *Index) FindMethod(className, methodName string) (*Entry, bool) {
	perClass, ok := idx.methods[className]
	if !ok {
		return nil, false
	}
	e, ok := perClass[methodName]
	return e, ok
}

// AllClassNames returns every class name in sorted order. The returned
// slice is shared; callers must not modify it.
func (idx *Index) AllClassNames() []string {
	return idx.classNames
}

// ClassMethods returns the sorted method names of a class, or nil when
// the class is unknown.
func (idx *Index) ClassMethods(className string) []string {
	return idx.methodNames[className]
}

// ClassesInModule returns the sorted class names of a module, or nil
// when the module is unknown.
func (idx *Index) ClassesInModule(module string) []string {
	return idx.modules[module]
}

// ModuleNames returns every module name in sorted order.
func (idx *Index) ModuleNames() []string {
	return idx.moduleNames
}

// HasModule reports whether the module appears in the catalog.
func (idx *Index) HasModule(module string) bool {
	_, ok := idx.modules[module]
	return ok
}

// ModuleOf returns the module a class belongs to.
func (idx *Index) ModuleOf(className string) (string, bool) {
	e, ok := idx.classes[className]
	if !ok || e.Module == "" {
		return "", false
	}
	return e.Module, true
}

// SearchClasses returns classes whose name contains the query,
// case-insensitively, ranked by match position then name.
func (idx *Index) SearchClasses(query string, limit int) []ClassSummary {
	if limit <= 0 {
		limit = 10
	}
	q := strings.ToLower(query)

	type hit struct {
		summary ClassSummary
		pos     int
	}
	var hits []hit
	for _, name := range idx.classNames {
		pos := strings.Index(strings.ToLower(name), q)
		if pos < 0 {
			continue
		}
		e := idx.classes[name]
		module := e.Module
		if module == "" {
			module = "Unknown"
		}
		hits = append(hits, hit{
			summary: ClassSummary{Name: name, Module: module, Description: e.Summary()},
			pos:     pos,
		})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].pos != hits[j].pos {
			return hits[i].pos < hits[j].pos
		}
		return hits[i].summary.Name < hits[j].summary.Name
	})

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]ClassSummary, len(hits))
	for i, h := range hits {
		out[i] = h.summary
	}
	return out
}

// NumClasses returns the number of classes in the index.
func (idx *Index) NumClasses() int {
	return len(idx.classNames)
}

// NumModules returns the number of modules in the index.
func (idx *Index) NumModules() int {
	return len(idx.moduleNames)
}

// Records returns the deduplicated catalog records in class order.
func (idx *Index) Records() []Record {
	return idx.records
}

// Fingerprint returns the hex blake2b digest of the catalog content. Two
// indexes built from the same records have the same fingerprint
// regardless of input format (jsonl, gzip, sqlite store).
func (idx *Index) Fingerprint() string {
	return idx.fingerprint
}

func fingerprint(records []Record) string {
	h, err := blake2b.New256(nil)
	if err != nil {
		// blake2b.New256 only fails with a bad key; nil key never fails.
		panic(err)
	}
	for _, rec := range records {
		h.Write([]byte(rec.Module))
		h.Write([]byte{0x1f})
		h.Write([]byte(rec.Class))
		h.Write([]byte{0x1f})
		for _, m := range rec.Methods {
			h.Write([]byte(m))
			h.Write([]byte{0x1e})
		}
		h.Write([]byte{0x1f})
		h.Write([]byte(rec.Doc))
		h.Write([]byte{0x0a})
	}
	return hex.EncodeToString(h.Sum(nil))
}
