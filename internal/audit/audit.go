package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/PolarWolf314/pageseal/internal/utils"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"` // RFC3339 with microseconds.
	Operation string `json:"op"`
	ID        string `json:"id"` // Operation UUID.
	User      string `json:"user,omitempty"`
	Host      string `json:"host,omitempty"`

	// Optional fields depending on operation.
	Inputs     []string `json:"inputs,omitempty"`     // For build/sync-css.
	Output     string   `json:"output,omitempty"`     // For build/unseal.
	Encrypted  bool     `json:"encrypted,omitempty"`  // For build.
	Iterations int      `json:"iterations,omitempty"` // For build/unseal.
	Mode       string   `json:"mode,omitempty"`       // For build.
	Bytes      int      `json:"bytes,omitempty"`      // Size of the written artifact.
}

// NewEntry returns an entry for op with a fresh ID and the local user and
// host filled in where available.
func NewEntry(op string) Entry {
	id := utils.CurrentIdentity()
	return Entry{
		Operation: op,
		ID:        uuid.New().String(),
		User:      id.User,
		Host:      id.Host,
	}
}

// Log appends an entry to the audit log at logPath. An empty logPath
// disables logging. Failures are swallowed.
func Log(logPath string, entry Entry) {
	if logPath == "" {
		return
	}

	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return
	}

	// #nosec G306 -- the audit log holds no secrets.
	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}

	_, _ = f.Write(append(data, '\n'))
}

// ReadEntries reads all entries from the audit log at logPath. pageseal only
// appends to the log; this is for tooling that inspects it.
// Returns an empty slice if the log doesn't exist.
func ReadEntries(logPath string) ([]Entry, error) {
	if logPath == "" {
		return nil, nil
	}

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return ParseEntries(data)
}

// ParseEntries parses JSON Lines data into audit entries.
// Malformed lines are silently skipped.
func ParseEntries(data []byte) ([]Entry, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var entries []Entry
	start := 0

	for i := 0; i <= len(data); i++ {
		if i == len(data) || data[i] == '\n' {
			line := data[start:i]
			start = i + 1

			if len(line) == 0 {
				continue
			}

			var entry Entry
			if err := json.Unmarshal(line, &entry); err != nil {
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
