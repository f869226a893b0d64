package notestore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/silverfern314/notevault/internal/cryptobox"
	verrors "github.com/silverfern314/notevault/internal/errors"
	logger "github.com/silverfern314/notevault/internal/logging"
	"github.com/silverfern314/notevault/internal/session"
)

// newTestStore returns a store backed by a temp dir with alice logged in.
func newTestStore(t *testing.T) (*Store, *session.Registry) {
	t.Helper()

	reg := session.NewRegistry()
	reg.Login("alice", cryptobox.KeyFromPassphrase("alice-passphrase"))

	store := NewStore(t.TempDir(), reg, logger.Logger{})
	return store, reg
}

func TestCreateNote_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.CreateNote("groceries", "milk, eggs", "")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if created.ID == "" {
		t.Fatal("Expected a non-empty note id")
	}
	if created.Folder != DefaultFolder {
		t.Errorf("Expected default folder, got %q", created.Folder)
	}

	got, err := store.GetNote(created.ID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if got == nil {
		t.Fatal("Expected note, got nil")
	}
	if got.Title != "groceries" || got.Content != "milk, eggs" {
		t.Errorf("Round trip mismatch: got %q/%q", got.Title, got.Content)
	}
}

func TestCreateNote_RequiresActiveKey(t *testing.T) {
	store, reg := newTestStore(t)
	reg.Logout()

	_, err := store.CreateNote("title", "content", "")
	if !errors.Is(err, verrors.ErrNoActiveKey) {
		t.Errorf("Expected ErrNoActiveKey, got: %v", err)
	}
}

func TestCreateNote_DuplicateTitleInFolder(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.CreateNote("ideas", "one", "work"); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	_, err := store.CreateNote("ideas", "two", "work")
	if !errors.Is(err, verrors.ErrDuplicateTitle) {
		t.Fatalf("Expected ErrDuplicateTitle, got: %v", err)
	}

	// The failed create must leave the store unchanged.
	notes, err := store.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 1 {
		t.Errorf("Expected 1 note after rejected duplicate, got %d", len(notes))
	}

	// Same title in another folder is fine.
	if _, err := store.CreateNote("ideas", "three", "personal"); err != nil {
		t.Errorf("Expected same title in different folder to succeed, got: %v", err)
	}
}

func TestCreateNote_TitleMatchIsCaseSensitive(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.CreateNote("Plan", "a", ""); err != nil {
		t.Fatalf("First create failed: %v", err)
	}
	if _, err := store.CreateNote("plan", "b", ""); err != nil {
		t.Errorf("Expected case-sensitive uniqueness, got: %v", err)
	}
}

func TestCreateNote_ImplicitFolder(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.CreateNote("t", "c", "journal"); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	folders, err := store.ListFolders()
	if err != nil {
		t.Fatalf("ListFolders failed: %v", err)
	}
	if len(folders) != 1 || folders[0].Name != "journal" {
		t.Errorf("Expected implicitly created folder journal, got %+v", folders)
	}
}

func TestCreateFolder_Duplicate(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.CreateFolder("work"); err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	err := store.CreateFolder("work")
	if !errors.Is(err, verrors.ErrDuplicateFolder) {
		t.Errorf("Expected ErrDuplicateFolder, got: %v", err)
	}
}

func TestDeleteFolder_CascadesToNotes(t *testing.T) {
	store, _ := newTestStore(t)

	if err := store.CreateFolder("F"); err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	if _, err := store.CreateNote("t", "c", "F"); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if _, err := store.CreateNote("keep", "me", "other"); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	removed, err := store.DeleteFolder("F")
	if err != nil {
		t.Fatalf("DeleteFolder failed: %v", err)
	}
	if removed != 1 {
		t.Errorf("Expected 1 note removed by cascade, got %d", removed)
	}

	folders, err := store.ListFolders()
	if err != nil {
		t.Fatalf("ListFolders failed: %v", err)
	}
	for _, f := range folders {
		if f.Name == "F" {
			t.Error("Expected folder F to be gone")
		}
	}

	notes, err := store.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Folder == "F" {
		t.Errorf("Expected only the note outside F to survive, got %+v", notes)
	}
}

func TestDeleteFolder_Unknown(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.DeleteFolder("ghost")
	if !errors.Is(err, verrors.ErrFolderNotFound) {
		t.Errorf("Expected ErrFolderNotFound, got: %v", err)
	}
}

func TestListNotes_EmptyWithoutKey(t *testing.T) {
	store, reg := newTestStore(t)

	if _, err := store.CreateNote("t", "c", ""); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	reg.Logout()

	// Logged out: the gate fails closed with an empty list, not an error.
	notes, err := store.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("Expected empty listing without a key, got %d notes", len(notes))
	}
}

func TestListNotes_SkipsUndecryptableEntry(t *testing.T) {
	store, reg := newTestStore(t)

	if _, err := store.CreateNote("good", "content", ""); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	// Inject a note encrypted under a different key.
	other := cryptobox.KeyFromPassphrase("someone-else")
	encTitle, err := cryptobox.Encrypt("alien", other)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}
	encContent, err := cryptobox.Encrypt("data", other)
	if err != nil {
		t.Fatalf("Encrypt failed: %v", err)
	}

	path := DocumentPath(store.dataDir, reg.CurrentUser())
	doc, err := LoadDocument(path)
	if err != nil {
		t.Fatalf("LoadDocument failed: %v", err)
	}
	doc.Notes = append(doc.Notes, EncryptedNote{
		ID: "corrupt-1", Folder: DefaultFolder,
		EncryptedTitle: encTitle, EncryptedContent: encContent,
		CreatedAt: 1, UpdatedAt: 1,
	})
	if err := SaveDocument(path, doc); err != nil {
		t.Fatalf("SaveDocument failed: %v", err)
	}

	notes, err := store.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "good" {
		t.Errorf("Expected the undecryptable entry to be skipped, got %+v", notes)
	}

	// An explicit GetNote on the bad entry escalates instead.
	_, err = store.GetNote("corrupt-1")
	if !errors.Is(err, verrors.ErrDecryptionFailed) {
		t.Errorf("Expected ErrDecryptionFailed from GetNote, got: %v", err)
	}
}

func TestGetNote_NilWithoutKeyOrWhenAbsent(t *testing.T) {
	store, reg := newTestStore(t)

	note, err := store.GetNote("missing")
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if note != nil {
		t.Errorf("Expected nil for missing note, got %+v", note)
	}

	reg.Logout()
	note, err = store.GetNote("anything")
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if note != nil {
		t.Errorf("Expected nil without a key, got %+v", note)
	}
}

func TestUpdateNote_BumpsUpdatedAt(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.CreateNote("t", "v1", "")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if err := store.UpdateNote(created.ID, "t", "v2"); err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}

	got, err := store.GetNote(created.ID)
	if err != nil {
		t.Fatalf("GetNote failed: %v", err)
	}
	if got.Content != "v2" {
		t.Errorf("Expected updated content v2, got %q", got.Content)
	}
	if got.UpdatedAt < created.UpdatedAt {
		t.Errorf("Expected updatedAt to move forward: %d -> %d", created.UpdatedAt, got.UpdatedAt)
	}
	if got.CreatedAt != created.CreatedAt {
		t.Errorf("Expected createdAt unchanged, got %d", got.CreatedAt)
	}
}

func TestUpdateNote_RenameToExistingTitleRejected(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.CreateNote("a", "first", "work"); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	b, err := store.CreateNote("b", "second", "work")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	err = store.UpdateNote(b.ID, "a", "second")
	if !errors.Is(err, verrors.ErrDuplicateTitle) {
		t.Fatalf("Expected ErrDuplicateTitle on rename collision, got: %v", err)
	}

	// The rejected rename must leave the store unchanged.
	notes, err := store.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	titled := 0
	for _, n := range notes {
		if n.Folder == "work" && n.Title == "a" {
			titled++
		}
	}
	if titled != 1 {
		t.Errorf("Expected exactly 1 note titled a in work, got %d", titled)
	}

	// Keeping the current title is not a collision with itself.
	if err := store.UpdateNote(b.ID, "b", "edited"); err != nil {
		t.Errorf("Expected self-rename to succeed, got: %v", err)
	}

	// Same title in a different folder stays legal.
	c, err := store.CreateNote("c", "third", "personal")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if err := store.UpdateNote(c.ID, "a", "third"); err != nil {
		t.Errorf("Expected rename in another folder to succeed, got: %v", err)
	}
}

func TestUpdateNote_UnknownIDIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.CreateNote("t", "c", ""); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if err := store.UpdateNote("no-such-id", "x", "y"); err != nil {
		t.Errorf("Expected silent no-op for unknown id, got: %v", err)
	}

	notes, err := store.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "t" {
		t.Errorf("Expected store unchanged, got %+v", notes)
	}
}

func TestDeleteNote_AbsentIsNoOp(t *testing.T) {
	store, _ := newTestStore(t)

	created, err := store.CreateNote("t", "c", "")
	if err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	if err := store.DeleteNote("no-such-id"); err != nil {
		t.Errorf("Expected no-op delete to succeed, got: %v", err)
	}
	if err := store.DeleteNote(created.ID); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}

	notes, err := store.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("Expected empty store after delete, got %+v", notes)
	}
}

func TestVerifyLogin(t *testing.T) {
	store, _ := newTestStore(t)

	// Empty document: any key passes (first-time setup).
	ok, err := store.VerifyLogin("brand-new-user", cryptobox.KeyFromPassphrase("whatever"))
	if err != nil {
		t.Fatalf("VerifyLogin failed: %v", err)
	}
	if !ok {
		t.Error("Expected empty document to verify trivially")
	}

	if _, err := store.CreateNote("t", "c", ""); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	ok, err = store.VerifyLogin("alice", cryptobox.KeyFromPassphrase("alice-passphrase"))
	if err != nil {
		t.Fatalf("VerifyLogin failed: %v", err)
	}
	if !ok {
		t.Error("Expected correct key to verify")
	}

	ok, err = store.VerifyLogin("alice", cryptobox.KeyFromPassphrase("wrong"))
	if err != nil {
		t.Fatalf("VerifyLogin failed: %v", err)
	}
	if ok {
		t.Error("Expected wrong key to fail verification")
	}
}

func TestStore_PerUserDocuments(t *testing.T) {
	dataDir := t.TempDir()
	reg := session.NewRegistry()
	store := NewStore(dataDir, reg, logger.Logger{})

	reg.Login("alice", cryptobox.KeyFromPassphrase("a"))
	if _, err := store.CreateNote("alice note", "c", ""); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}

	reg.Logout()
	reg.Login("bob", cryptobox.KeyFromPassphrase("b"))
	notes, err := store.ListNotes()
	if err != nil {
		t.Fatalf("ListNotes failed: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("Expected bob's document to be empty, got %+v", notes)
	}

	if _, err := os.Stat(filepath.Join(dataDir, "notes_alice.encrypted")); err != nil {
		t.Errorf("Expected alice's document file to exist: %v", err)
	}

	users, err := ListUsers(dataDir)
	if err != nil {
		t.Fatalf("ListUsers failed: %v", err)
	}
	if len(users) != 1 || users[0] != "alice" {
		t.Errorf("Expected [alice], got %v", users)
	}
}
