package catalog

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"os"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Schema version of the compiled catalog store.
const storeSchemaVersion = 1

// pragmas applied to every store connection.
var storePragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout=5000",
	"PRAGMA temp_store=MEMORY",
}

// BuildStore compiles an index into a sqlite database at path. An
// existing file is replaced. The store records the catalog fingerprint
// so OpenStore can verify the round trip.
func BuildStore(path string, idx *Index, logger *slog.Logger) error {
	if logger == nil {
		logger = discardLogger()
	}

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to replace store: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("failed to create store: %w", err)
	}
	defer func() { _ = conn.Close() }()

	for _, pragma := range storePragmas {
		if _, err := conn.Exec(pragma); err != nil {
			return fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	tx, err := conn.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	schema := []string{
		`CREATE TABLE meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
		`CREATE TABLE classes (
			name TEXT PRIMARY KEY,
			module TEXT NOT NULL,
			doc TEXT NOT NULL
		)`,
		`CREATE TABLE methods (
			class TEXT NOT NULL,
			name TEXT NOT NULL,
			PRIMARY KEY (class, name)
		)`,
		`CREATE INDEX idx_classes_module ON classes(module)`,
	}
	for _, stmt := range schema {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	insClass, err := tx.Prepare(`INSERT INTO classes (name, module, doc) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = insClass.Close() }()

	insMethod, err := tx.Prepare(`INSERT OR IGNORE INTO methods (class, name) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = insMethod.Close() }()

	for _, rec := range idx.Records() {
		if _, err := insClass.Exec(rec.Class, rec.Module, rec.Doc); err != nil {
			return fmt.Errorf("failed to insert class %s: %w", rec.Class, err)
		}
		for _, m := range rec.Methods {
			if m == "" {
				continue
			}
			if _, err := insMethod.Exec(rec.Class, m); err != nil {
				return fmt.Errorf("failed to insert method %s.%s: %w", rec.Class, m, err)
			}
		}
	}

	meta := map[string]string{
		"schema_version": fmt.Sprintf("%d", storeSchemaVersion),
		"fingerprint":    idx.Fingerprint(),
		"classes":        fmt.Sprintf("%d", idx.NumClasses()),
	}
	for k, v := range meta {
		if _, err := tx.Exec(`INSERT INTO meta (key, value) VALUES (?, ?)`, k, v); err != nil {
			return fmt.Errorf("failed to write meta: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit store: %w", err)
	}

	logger.Info("Compiled catalog store",
		"path", path,
		"classes", idx.NumClasses(),
		"fingerprint", idx.Fingerprint()[:12],
	)
	return nil
}

// OpenStore loads an index back out of a compiled sqlite store.
func OpenStore(path string, logger *slog.Logger) (*Index, error) {
	if logger == nil {
		logger = discardLogger()
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("catalog store not found: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	defer func() { _ = conn.Close() }()

	var schemaVersion string
	err = conn.QueryRow(`SELECT value FROM meta WHERE key = 'schema_version'`).Scan(&schemaVersion)
	if err != nil {
		return nil, fmt.Errorf("failed to read store meta (not a vtkcheck store?): %w", err)
	}
	if schemaVersion != fmt.Sprintf("%d", storeSchemaVersion) {
		return nil, fmt.Errorf("unsupported store schema version %s (want %d)", schemaVersion, storeSchemaVersion)
	}

	methodsByClass := make(map[string][]string)
	rows, err := conn.Query(`SELECT class, name FROM methods ORDER BY class, name`)
	if err != nil {
		return nil, fmt.Errorf("failed to read methods: %w", err)
	}
	for rows.Next() {
		var class, name string
		if err := rows.Scan(&class, &name); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan method row: %w", err)
		}
		methodsByClass[class] = append(methodsByClass[class], name)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("failed to read methods: %w", err)
	}
	_ = rows.Close()

	var records []Record
	rows, err = conn.Query(`SELECT name, module, doc FROM classes ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to read classes: %w", err)
	}
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.Class, &rec.Module, &rec.Doc); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("failed to scan class row: %w", err)
		}
		rec.Methods = methodsByClass[rec.Class]
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, fmt.Errorf("failed to read classes: %w", err)
	}
	_ = rows.Close()

	idx, err := New(records)
	if err != nil {
		return nil, err
	}

	var storedFingerprint string
	if err := conn.QueryRow(`SELECT value FROM meta WHERE key = 'fingerprint'`).Scan(&storedFingerprint); err == nil {
		if storedFingerprint != idx.Fingerprint() {
			logger.Warn("Store fingerprint mismatch, index rebuilt from rows",
				"stored", storedFingerprint,
				"computed", idx.Fingerprint(),
			)
		}
	}

	logger.Info("Loaded catalog store",
		"path", path,
		"classes", idx.NumClasses(),
		"modules", idx.NumModules(),
	)
	return idx, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
