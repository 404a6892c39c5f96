package catalog

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// maxCatalogLine bounds a single catalog record. Full class docs for the
// largest VTK classes run to a few hundred KB.
const maxCatalogLine = 8 * 1024 * 1024

// FormatError reports a malformed catalog line. It aborts index
// construction unless lenient loading was requested.
type FormatError struct {
	Line int
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("catalog line %d: %v", e.Line, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// LoadOptions control catalog loading.
type LoadOptions struct {
	// Lenient skips malformed lines with a warning instead of failing
	// the whole load.
	Lenient bool
	Logger  *slog.Logger
}

// LoadFile loads a catalog from disk and builds the index. The format is
// chosen by extension: .jsonl (newline-delimited JSON), .jsonl.gz,
// .jsonl.zst, or .db (compiled sqlite store from "vtkcheck index").
func LoadFile(path string, opts LoadOptions) (*Index, error) {
	if strings.HasSuffix(path, ".db") {
		return OpenStore(path, opts.Logger)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer func() { _ = f.Close() }()

	var reader io.Reader = f
	switch {
	case strings.HasSuffix(path, ".gz"):
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip catalog: %w", err)
		}
		defer func() { _ = gz.Close() }()
		reader = gz
	case strings.HasSuffix(path, ".zst"):
		zr, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("failed to open zstd catalog: %w", err)
		}
		defer zr.Close()
		reader = zr
	}

	return Load(reader, opts)
}

// Load reads newline-delimited JSON records and builds the index. Each
// line must be a JSON object with at least a non-empty "class" field.
// The default is fail-fast: the first malformed line aborts the load
// with a FormatError naming the line.
func Load(r io.Reader, opts LoadOptions) (*Index, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxCatalogLine)

	var records []Record
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec Record
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			ferr := &FormatError{Line: lineNo, Err: fmt.Errorf("invalid JSON: %w", err)}
			if opts.Lenient {
				logger.Warn("Skipping malformed catalog line", "line", lineNo, "error", err.Error())
				continue
			}
			return nil, ferr
		}
		if rec.Class == "" {
			ferr := &FormatError{Line: lineNo, Err: fmt.Errorf("missing required field 'class'")}
			if opts.Lenient {
				logger.Warn("Skipping catalog line without class", "line", lineNo)
				continue
			}
			return nil, ferr
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	idx, err := New(records)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded VTK API catalog",
		"classes", idx.NumClasses(),
		"modules", idx.NumModules(),
	)
	return idx, nil
}
