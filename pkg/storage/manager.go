package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"namedic/pkg/models"
)

// Manager persists aggregate records as JSON files in the output directory.
type Manager struct {
	outputDir string
}

// NewManager creates a storage manager, creating the output directory if
// needed.
func NewManager(outputDir string) (*Manager, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Manager{outputDir: outputDir}, nil
}

// RecordFilename returns the file name used for a prefix's aggregate record.
func RecordFilename(record *models.Record) string {
	return fmt.Sprintf("%s_%s.json", record.Index, record.Yomi)
}

// SaveRecord writes one aggregate record as pretty-printed UTF-8 JSON,
// named <ordinal>_<symbol>.json. The write goes through a temp file and an
// atomic rename so a crash never leaves a truncated record behind.
func (m *Manager) SaveRecord(record *models.Record) (string, error) {
	path := filepath.Join(m.outputDir, RecordFilename(record))

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return "", fmt.Errorf("failed to encode record: %w", err)
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return "", fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return path, nil
}

// OutputDir returns the output directory path.
func (m *Manager) OutputDir() string {
	return m.outputDir
}
