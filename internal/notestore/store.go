package notestore

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/silverfern314/notevault/internal/cryptobox"
	verrors "github.com/silverfern314/notevault/internal/errors"
	logger "github.com/silverfern314/notevault/internal/logging"
	"github.com/silverfern314/notevault/internal/session"
)

// Store provides decrypted CRUD over the current user's encrypted
// document. Every operation is a complete read-modify-write of the
// whole document file; the mutex keeps mutations single-writer within
// the process.
type Store struct {
	mu      sync.Mutex
	dataDir string
	session *session.Registry
	log     logger.Logger
}

func NewStore(dataDir string, reg *session.Registry, log logger.Logger) *Store {
	return &Store{
		dataDir: dataDir,
		session: reg,
		log:     log,
	}
}

// Path returns the current user's document file path. Empty when no
// user is logged in.
func (s *Store) Path() string {
	user := s.session.CurrentUser()
	if user == "" {
		return ""
	}
	return DocumentPath(s.dataDir, user)
}

func (s *Store) load() (*Document, error) {
	user := s.session.CurrentUser()
	if user == "" {
		return nil, verrors.ErrNoCurrentUser
	}
	return LoadDocument(DocumentPath(s.dataDir, user))
}

func (s *Store) save(doc *Document) error {
	user := s.session.CurrentUser()
	if user == "" {
		return verrors.ErrNoCurrentUser
	}
	return SaveDocument(DocumentPath(s.dataDir, user), doc)
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}

// ListFolders returns every folder in the current user's document.
func (s *Store) ListFolders() ([]Folder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Folders, nil
}

// CreateFolder appends a new folder, failing on a duplicate name.
func (s *Store) CreateFolder(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	for _, f := range doc.Folders {
		if f.Name == name {
			return fmt.Errorf("%w: %q", verrors.ErrDuplicateFolder, name)
		}
	}

	doc.Folders = append(doc.Folders, Folder{Name: name, CreatedAt: nowMillis()})
	return s.save(doc)
}

// DeleteFolder removes the folder and every note contained in it,
// returning the number of notes removed by the cascade. The cascade is
// unconditional; confirmation belongs to the caller.
func (s *Store) DeleteFolder(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return 0, err
	}

	found := false
	folders := doc.Folders[:0]
	for _, f := range doc.Folders {
		if f.Name == name {
			found = true
			continue
		}
		folders = append(folders, f)
	}
	if !found {
		return 0, verrors.ErrFolderNotFound
	}
	doc.Folders = folders

	removed := 0
	notes := doc.Notes[:0]
	for _, n := range doc.Notes {
		if n.Folder == name {
			removed++
			continue
		}
		notes = append(notes, n)
	}
	doc.Notes = notes

	if err := s.save(doc); err != nil {
		return 0, err
	}
	return removed, nil
}

// ListNotes decrypts and returns every note of the current user.
//
// Without an active key it returns an empty slice, not an error: the
// session gate fails closed. A single note that fails to decrypt is
// skipped with a warning so one corrupt entry does not take down the
// whole listing.
func (s *Store) ListNotes() ([]Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.session.ActiveKey()
	if !ok {
		return []Note{}, nil
	}

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	notes := make([]Note, 0, len(doc.Notes))
	for _, enc := range doc.Notes {
		note, err := decryptNote(enc, key)
		if err != nil {
			s.log.Warnf("Skipping note %s: %v", enc.ID, err)
			continue
		}
		notes = append(notes, note)
	}
	return notes, nil
}

// GetNote returns the note with the given id, or nil when it does not
// exist or no key is loaded. Unlike ListNotes, a decryption failure is
// escalated: the caller asked for this exact note, so silently
// omitting it would be surprising.
func (s *Store) GetNote(id string) (*Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.session.ActiveKey()
	if !ok {
		return nil, nil
	}

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, enc := range doc.Notes {
		if enc.ID != id {
			continue
		}
		note, err := decryptNote(enc, key)
		if err != nil {
			return nil, err
		}
		return &note, nil
	}
	return nil, nil
}

// CreateNote encrypts and persists a new note.
//
// The (folder, title) pair must be unique among currently-decryptable
// notes; the check is a linear decrypt-and-scan, which is fine at
// note-taking scale. A missing folder entry is created implicitly.
func (s *Store) CreateNote(title, content, folder string) (*Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.session.ActiveKey()
	if !ok {
		return nil, verrors.ErrNoActiveKey
	}

	if folder == "" {
		folder = DefaultFolder
	}

	doc, err := s.load()
	if err != nil {
		return nil, err
	}

	for _, enc := range doc.Notes {
		if enc.Folder != folder {
			continue
		}
		existingTitle, err := cryptobox.Decrypt(enc.EncryptedTitle, key)
		if err != nil {
			// Undecryptable entries don't participate in the
			// uniqueness check.
			continue
		}
		if existingTitle == title {
			return nil, fmt.Errorf("%w: %q in folder %q", verrors.ErrDuplicateTitle, title, folder)
		}
	}

	now := nowMillis()
	if !hasFolder(doc, folder) {
		doc.Folders = append(doc.Folders, Folder{Name: folder, CreatedAt: now})
	}

	encTitle, err := cryptobox.Encrypt(title, key)
	if err != nil {
		return nil, err
	}
	encContent, err := cryptobox.Encrypt(content, key)
	if err != nil {
		return nil, err
	}

	enc := EncryptedNote{
		ID:               uuid.New().String(),
		Folder:           folder,
		EncryptedTitle:   encTitle,
		EncryptedContent: encContent,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	doc.Notes = append(doc.Notes, enc)

	if err := s.save(doc); err != nil {
		return nil, err
	}

	return &Note{
		ID:        enc.ID,
		Folder:    folder,
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// UpdateNote re-encrypts the note's fields and bumps updatedAt. An
// unknown id is a silent no-op; callers that care look the note up
// first. A rename is subject to the same (folder, title) uniqueness
// rule as creation.
func (s *Store) UpdateNote(id, title, content string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key, ok := s.session.ActiveKey()
	if !ok {
		return verrors.ErrNoActiveKey
	}

	doc, err := s.load()
	if err != nil {
		return err
	}

	target := -1
	for i, enc := range doc.Notes {
		if enc.ID == id {
			target = i
			break
		}
	}
	if target == -1 {
		// Unknown id: no-op.
		return nil
	}

	folder := doc.Notes[target].Folder
	for i, enc := range doc.Notes {
		if i == target || enc.Folder != folder {
			continue
		}
		existingTitle, err := cryptobox.Decrypt(enc.EncryptedTitle, key)
		if err != nil {
			// Undecryptable entries don't participate in the
			// uniqueness check.
			continue
		}
		if existingTitle == title {
			return fmt.Errorf("%w: %q in folder %q", verrors.ErrDuplicateTitle, title, folder)
		}
	}

	encTitle, err := cryptobox.Encrypt(title, key)
	if err != nil {
		return err
	}
	encContent, err := cryptobox.Encrypt(content, key)
	if err != nil {
		return err
	}

	doc.Notes[target].EncryptedTitle = encTitle
	doc.Notes[target].EncryptedContent = encContent
	doc.Notes[target].UpdatedAt = nowMillis()
	return s.save(doc)
}

// DeleteNote removes the note if present; absent ids are a no-op.
func (s *Store) DeleteNote(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	notes := doc.Notes[:0]
	for _, n := range doc.Notes {
		if n.ID != id {
			notes = append(notes, n)
		}
	}
	doc.Notes = notes

	return s.save(doc)
}

// VerifyLogin checks a candidate key against the user's existing data
// by attempting to decrypt the first stored note. A user with no notes
// has nothing to check against and trivially passes (first-time setup).
func (s *Store) VerifyLogin(username string, candidate cryptobox.Key) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := LoadDocument(DocumentPath(s.dataDir, username))
	if err != nil {
		return false, err
	}

	if len(doc.Notes) == 0 {
		return true, nil
	}

	_, err = cryptobox.Decrypt(doc.Notes[0].EncryptedTitle, candidate)
	if err != nil {
		if errors.Is(err, verrors.ErrDecryptionFailed) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func decryptNote(enc EncryptedNote, key cryptobox.Key) (Note, error) {
	title, err := cryptobox.Decrypt(enc.EncryptedTitle, key)
	if err != nil {
		return Note{}, err
	}
	content, err := cryptobox.Decrypt(enc.EncryptedContent, key)
	if err != nil {
		return Note{}, err
	}

	return Note{
		ID:        enc.ID,
		Folder:    enc.Folder,
		Title:     title,
		Content:   content,
		CreatedAt: enc.CreatedAt,
		UpdatedAt: enc.UpdatedAt,
	}, nil
}

func hasFolder(doc *Document, name string) bool {
	for _, f := range doc.Folders {
		if f.Name == name {
			return true
		}
	}
	return false
}
