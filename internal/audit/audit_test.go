package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLog_CreatesFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), ".pageseal", "audit.jsonl")

	Log(logPath, Entry{Operation: "build", Output: "dist/index.html"})

	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Fatalf("Audit log file was not created")
	}
}

func TestLog_DisabledWithEmptyPath(t *testing.T) {
	dir := t.TempDir()
	originalWd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Failed to change directory: %v", err)
	}
	defer os.Chdir(originalWd)

	Log("", Entry{Operation: "build"})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("expected nothing written, found %d entries", len(entries))
	}
}

func TestLog_AppendsEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	Log(logPath, Entry{Operation: "sync-css"})
	Log(logPath, Entry{Operation: "build", Encrypted: true})
	Log(logPath, Entry{Operation: "unseal"})

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 3 {
		t.Errorf("Expected 3 lines, got %d", len(lines))
	}
}

func TestLog_ValidJSON(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "audit.jsonl")

	entry := NewEntry("build")
	entry.Output = "dist/index.html"
	entry.Encrypted = true
	entry.Iterations = 3000000
	entry.Inputs = []string{"index.html", "ui_style.css", "apps.json"}
	Log(logPath, entry)

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("Failed to read audit log: %v", err)
	}

	var parsed Entry
	if err := json.Unmarshal([]byte(strings.TrimSpace(string(data))), &parsed); err != nil {
		t.Fatalf("Entry is not valid JSON: %v", err)
	}

	if parsed.ID != entry.ID || len(parsed.ID) != 36 {
		t.Errorf("Expected ID %q, got %q", entry.ID, parsed.ID)
	}
	if parsed.Timestamp == "" {
		t.Error("Expected timestamp to be set")
	}
	if !parsed.Encrypted || parsed.Iterations != 3000000 {
		t.Errorf("Expected encrypted build with 3000000 iterations, got %+v", parsed)
	}
}

func TestNewEntry_UniqueIDs(t *testing.T) {
	first := NewEntry("build")
	second := NewEntry("build")
	if first.ID == second.ID {
		t.Errorf("Expected distinct IDs, both were %q", first.ID)
	}
}

func TestParseEntries_SkipsMalformedLines(t *testing.T) {
	data := []byte(`{"ts":"2026-01-01T00:00:00.000000Z","op":"build","id":"a"}
not json

{"ts":"2026-01-02T00:00:00.000000Z","op":"unseal","id":"b"}`)

	entries, err := ParseEntries(data)
	if err != nil {
		t.Fatalf("ParseEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Operation != "build" || entries[1].Operation != "unseal" {
		t.Errorf("Unexpected operations: %q, %q", entries[0].Operation, entries[1].Operation)
	}
}

func TestReadEntries_MissingLog(t *testing.T) {
	entries, err := ReadEntries(filepath.Join(t.TempDir(), "missing.jsonl"))
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if entries != nil {
		t.Errorf("Expected nil entries, got %v", entries)
	}
}
