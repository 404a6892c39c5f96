package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

func catalogJSONL(t *testing.T) string {
	t.Helper()
	var b strings.Builder
	for _, rec := range testRecords() {
		line, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("marshal record: %v", err)
		}
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func TestLoad(t *testing.T) {
	idx, err := Load(strings.NewReader(catalogJSONL(t)), LoadOptions{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if idx.NumClasses() != 4 {
		t.Errorf("NumClasses = %d, want 4", idx.NumClasses())
	}
	if _, ok := idx.FindMethod("vtkPoints", "InsertNextPoint"); !ok {
		t.Error("vtkPoints.InsertNextPoint should be loaded")
	}
}

func TestLoadSkipsBlankLines(t *testing.T) {
	input := "\n" + catalogJSONL(t) + "\n   \n"
	idx, err := Load(strings.NewReader(input), LoadOptions{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if idx.NumClasses() != 4 {
		t.Errorf("NumClasses = %d, want 4", idx.NumClasses())
	}
}

func TestLoadFailFast(t *testing.T) {
	input := `{"module":"vtkmodules.vtkCommonCore","class":"vtkPoints","methods":[]}
not json at all
`
	_, err := Load(strings.NewReader(input), LoadOptions{})
	if err == nil {
		t.Fatal("Load should fail on a malformed line")
	}

	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error should be a FormatError, got %T", err)
	}
	if ferr.Line != 2 {
		t.Errorf("FormatError.Line = %d, want 2", ferr.Line)
	}
}

func TestLoadRejectsMissingClassField(t *testing.T) {
	input := `{"module":"vtkmodules.vtkCommonCore","methods":["Foo"]}` + "\n"
	_, err := Load(strings.NewReader(input), LoadOptions{})
	var ferr *FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("error should be a FormatError, got %v", err)
	}
	if ferr.Line != 1 {
		t.Errorf("FormatError.Line = %d, want 1", ferr.Line)
	}
}

func TestLoadLenient(t *testing.T) {
	input := `{"module":"vtkmodules.vtkCommonCore","class":"vtkPoints","methods":["InsertNextPoint"]}
garbage
{"module":"vtkmodules.vtkRenderingCore","class":"vtkActor","methods":["SetMapper"]}
`
	idx, err := Load(strings.NewReader(input), LoadOptions{Lenient: true})
	if err != nil {
		t.Fatalf("lenient Load failed: %v", err)
	}
	if idx.NumClasses() != 2 {
		t.Errorf("NumClasses = %d, want 2", idx.NumClasses())
	}
}

func TestLoadFilePlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.jsonl")
	if err := os.WriteFile(path, []byte(catalogJSONL(t)), 0644); err != nil {
		t.Fatal(err)
	}

	idx, err := LoadFile(path, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if idx.NumClasses() != 4 {
		t.Errorf("NumClasses = %d, want 4", idx.NumClasses())
	}
}

func TestLoadFileGzip(t *testing.T) {
	plain, err := Load(strings.NewReader(catalogJSONL(t)), LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	path := filepath.Join(t.TempDir(), "catalog.jsonl.gz")
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	if _, err := gz.Write([]byte(catalogJSONL(t))); err != nil {
		t.Fatal(err)
	}
	if err := gz.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	idx, err := LoadFile(path, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if idx.Fingerprint() != plain.Fingerprint() {
		t.Error("gzip catalog should produce the same fingerprint as plain jsonl")
	}
}

func TestLoadFileZstd(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.jsonl.zst")

	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write([]byte(catalogJSONL(t))); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}

	idx, err := LoadFile(path, LoadOptions{})
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if idx.NumClasses() != 4 {
		t.Errorf("NumClasses = %d, want 4", idx.NumClasses())
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.jsonl"), LoadOptions{}); err == nil {
		t.Error("LoadFile should fail on a missing file")
	}
}
