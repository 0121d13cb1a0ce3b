package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"namedic/pkg/models"
)

func testRecord() *models.Record {
	entries := []models.Entry{
		{Kanji: "田中", Readings: []string{"たなか"}, Population: "多い"},
		{Kanji: "上田", Readings: []string{"うえだ", "うえた"}, Population: ""},
	}
	return models.NewRecord("た", "16", entries, time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC))
}

func TestSaveRecord(t *testing.T) {
	tempDir := t.TempDir()

	manager, err := NewManager(tempDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	path, err := manager.SaveRecord(testRecord())
	if err != nil {
		t.Fatalf("Failed to save record: %v", err)
	}

	if filepath.Base(path) != "16_た.json" {
		t.Errorf("Expected file name 16_た.json, got %s", filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}

	var loaded models.Record
	if err := json.Unmarshal(data, &loaded); err != nil {
		t.Fatalf("Saved file is not valid JSON: %v", err)
	}

	if loaded.Yomi != "た" || loaded.Index != "16" {
		t.Errorf("Unexpected record identity: yomi=%s index=%s", loaded.Yomi, loaded.Index)
	}
	if loaded.TotalCount != 2 || len(loaded.Entries) != 2 {
		t.Errorf("Expected 2 entries, got totalCount=%d len=%d", loaded.TotalCount, len(loaded.Entries))
	}
	if loaded.CollectedAt != "2026-03-14T15:09:26Z" {
		t.Errorf("Expected ISO-8601 timestamp, got %s", loaded.CollectedAt)
	}
}

func TestSaveRecordFormat(t *testing.T) {
	tempDir := t.TempDir()

	manager, err := NewManager(tempDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	path, err := manager.SaveRecord(testRecord())
	if err != nil {
		t.Fatalf("Failed to save record: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read saved file: %v", err)
	}
	text := string(data)

	// Pretty-printed JSON with kana left unescaped.
	if !strings.Contains(text, "  \"yomi\": \"た\"") {
		t.Error("Expected 2-space indented, unescaped yomi field")
	}
	if strings.Contains(text, "\\u") {
		t.Error("Expected multibyte characters to be written unescaped")
	}

	// Stable field order: yomi, index, totalCount, collectedAt, entries.
	order := []string{"\"yomi\"", "\"index\"", "\"totalCount\"", "\"collectedAt\"", "\"entries\""}
	last := -1
	for _, field := range order {
		idx := strings.Index(text, field)
		if idx == -1 {
			t.Fatalf("Field %s missing from output", field)
		}
		if idx < last {
			t.Errorf("Field %s out of order", field)
		}
		last = idx
	}
}

func TestSaveRecordLeavesNoTempFile(t *testing.T) {
	tempDir := t.TempDir()

	manager, err := NewManager(tempDir)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}

	if _, err := manager.SaveRecord(testRecord()); err != nil {
		t.Fatalf("Failed to save record: %v", err)
	}

	files, err := os.ReadDir(tempDir)
	if err != nil {
		t.Fatalf("Failed to read output dir: %v", err)
	}
	for _, f := range files {
		if strings.HasSuffix(f.Name(), ".tmp") {
			t.Errorf("Temporary file %s left behind", f.Name())
		}
	}
	if len(files) != 1 {
		t.Errorf("Expected exactly one output file, got %d", len(files))
	}
}

func TestNewManagerCreatesDirectory(t *testing.T) {
	tempDir := t.TempDir()
	nested := filepath.Join(tempDir, "data", "surnames")

	manager, err := NewManager(nested)
	if err != nil {
		t.Fatalf("Failed to create manager: %v", err)
	}
	if manager.OutputDir() != nested {
		t.Errorf("Expected output dir %s, got %s", nested, manager.OutputDir())
	}

	if _, err := os.Stat(nested); err != nil {
		t.Errorf("Expected output directory to exist: %v", err)
	}
}
