package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir switches to dir for the duration of the test, restoring the
// original working directory on cleanup. (testing.T.Chdir needs Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	// Run from an empty directory so no search-path config is found.
	chdir(t, t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Catalog.Path != "vtk-python-docs.jsonl" {
		t.Errorf("catalog path = %q", cfg.Catalog.Path)
	}
	if cfg.Catalog.Lenient {
		t.Error("lenient should default to false")
	}
	if cfg.Fuzzy.MaxSuggestions != 3 || cfg.Fuzzy.MaxDistance != 3 {
		t.Errorf("fuzzy = %+v", cfg.Fuzzy)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `catalog:
  path: /data/catalog.jsonl.gz
  lenient: true
fuzzy:
  maxSuggestions: 5
  maxDistance: 2
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Catalog.Path != "/data/catalog.jsonl.gz" {
		t.Errorf("catalog path = %q", cfg.Catalog.Path)
	}
	if !cfg.Catalog.Lenient {
		t.Error("lenient should be true")
	}
	if cfg.Fuzzy.MaxSuggestions != 5 || cfg.Fuzzy.MaxDistance != 2 {
		t.Errorf("fuzzy = %+v", cfg.Fuzzy)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("log level = %q", cfg.Logging.Level)
	}
}

func TestLoadExplicitFileMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("explicit missing config should fail")
	}
}

func TestLoadSearchPath(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".vtkcheck"), 0755); err != nil {
		t.Fatal(err)
	}
	content := "catalog:\n  path: local.jsonl\n"
	if err := os.WriteFile(filepath.Join(dir, ".vtkcheck", "config.yaml"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Catalog.Path != "local.jsonl" {
		t.Errorf("catalog path = %q", cfg.Catalog.Path)
	}
}
