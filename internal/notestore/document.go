package notestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	verrors "github.com/silverfern314/notevault/internal/errors"
)

const documentSuffix = ".encrypted"

// DocumentPath returns the per-user document file path inside dataDir.
func DocumentPath(dataDir, username string) string {
	return filepath.Join(dataDir, "notes_"+username+documentSuffix)
}

// LoadDocument reads and parses a user's document file.
//
// A missing file yields an empty document. A bare top-level JSON array
// is the legacy format and is treated as the notes list with no
// folders. Anything else that fails to parse is reported as
// ErrStorageCorrupt rather than silently swallowed.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Document{Folders: []Folder{}, Notes: []EncryptedNote{}}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return ParseDocument(data)
}

// ParseDocument parses document bytes, accepting the legacy bare-array
// format. The sync engine uses this directly on downloaded blobs.
func ParseDocument(data []byte) (*Document, error) {
	// A zero-byte file is most likely a truncated write, not a fresh
	// store: only a missing file means empty.
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return nil, fmt.Errorf("%w: document file is empty", verrors.ErrStorageCorrupt)
	}

	// Legacy format: a bare JSON array of encrypted notes.
	if strings.HasPrefix(trimmed, "[") {
		var notes []EncryptedNote
		if err := json.Unmarshal(data, &notes); err != nil {
			return nil, fmt.Errorf("%w: %v", verrors.ErrStorageCorrupt, err)
		}
		return &Document{Folders: []Folder{}, Notes: notes}, nil
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", verrors.ErrStorageCorrupt, err)
	}
	if doc.Folders == nil {
		doc.Folders = []Folder{}
	}
	if doc.Notes == nil {
		doc.Notes = []EncryptedNote{}
	}
	return &doc, nil
}

// SaveDocument serializes the document and replaces the file atomically
// (write to a temp file in the same directory, then rename) so a
// partial write is never visible to a subsequent read.
func SaveDocument(path string, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	return WriteFileAtomic(path, data)
}

// WriteFileAtomic writes data to path via a temp file plus rename.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpPath, 0600); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to set document permissions: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace document %s: %w", path, err)
	}

	return nil
}

// ListUsers returns the usernames that have a document file in dataDir,
// sorted alphabetically.
func ListUsers(dataDir string) ([]string, error) {
	pattern := filepath.Join(dataDir, "notes_*"+documentSuffix)
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid document glob %q: %w", pattern, err)
	}

	var users []string
	for _, m := range matches {
		base := filepath.Base(m)
		user := strings.TrimSuffix(strings.TrimPrefix(base, "notes_"), documentSuffix)
		if user != "" {
			users = append(users, user)
		}
	}
	sort.Strings(users)
	return users, nil
}
