package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/silverfern314/notevault/internal/configs"
)

// Entry represents a single audit log entry.
type Entry struct {
	Timestamp string `json:"ts"`   // RFC3339 with microseconds.
	User      string `json:"user"` // Username performing the action.
	Operation string `json:"op"`   // Operation name.

	// Optional fields depending on operation.
	NoteID     string `json:"note_id,omitempty"`     // For note create/update/delete.
	Folder     string `json:"folder,omitempty"`      // For note and folder operations.
	NotesCount int    `json:"notes_count,omitempty"` // For sync and cascade delete.
	Backend    string `json:"backend,omitempty"`     // For sync operations.
}

// Log appends an entry to the audit log.
// If logging fails, the entry is dropped silently: operations should
// not fail just because audit logging failed.
func Log(entry Entry) {
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format("2006-01-02T15:04:05.000000Z")
	}

	logPath := LogPath()
	if logPath == "" {
		return
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0700); err != nil {
		return
	}

	f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
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

// LogPath returns the path to the audit log file.
func LogPath() string {
	if configs.UserVaultSettings == nil || configs.UserVaultSettings.DataPath == "" {
		return ""
	}
	return filepath.Join(configs.UserVaultSettings.DataPath, "audit.jsonl")
}

// ReadEntries reads all entries from the audit log.
// Returns an empty slice if the log doesn't exist.
func ReadEntries() ([]Entry, error) {
	logPath := LogPath()
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

// Details returns a compact summary of the entry's optional fields for
// display, e.g. "note=ab12 folder=work".
func (e Entry) Details() string {
	var parts []string
	if e.NoteID != "" {
		parts = append(parts, "note="+e.NoteID)
	}
	if e.Folder != "" {
		parts = append(parts, "folder="+e.Folder)
	}
	if e.NotesCount > 0 {
		parts = append(parts, fmt.Sprintf("notes=%d", e.NotesCount))
	}
	if e.Backend != "" {
		parts = append(parts, "backend="+e.Backend)
	}
	return strings.Join(parts, " ")
}

// FilterByOperation keeps the entries whose operation matches one of
// the comma-separated names in ops. Empty ops keeps everything.
func FilterByOperation(entries []Entry, ops string) []Entry {
	if ops == "" {
		return entries
	}

	wanted := make(map[string]bool)
	for _, op := range strings.Split(ops, ",") {
		if op = strings.TrimSpace(op); op != "" {
			wanted[op] = true
		}
	}

	var filtered []Entry
	for _, e := range entries {
		if wanted[e.Operation] {
			filtered = append(filtered, e)
		}
	}
	return filtered
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
				// Skip malformed entries.
				continue
			}
			entries = append(entries, entry)
		}
	}

	return entries, nil
}
