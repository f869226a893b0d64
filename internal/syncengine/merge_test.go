package syncengine

import (
	"testing"

	"github.com/silverfern314/notevault/internal/notestore"
)

func encNote(id, folder string, updatedAt int64, title string) notestore.EncryptedNote {
	return notestore.EncryptedNote{
		ID:               id,
		Folder:           folder,
		EncryptedTitle:   title, // opaque to the merge, any string works
		EncryptedContent: "ct",
		CreatedAt:        1,
		UpdatedAt:        updatedAt,
	}
}

func TestMergeDocuments_RemoteNewerWins(t *testing.T) {
	local := &notestore.Document{Notes: []notestore.EncryptedNote{encNote("1", "f", 100, "local")}}
	remote := &notestore.Document{Notes: []notestore.EncryptedNote{encNote("1", "f", 200, "remote")}}

	merged := MergeDocuments(local, remote, 999)

	if len(merged.Notes) != 1 {
		t.Fatalf("Expected 1 note, got %d", len(merged.Notes))
	}
	if merged.Notes[0].EncryptedTitle != "remote" {
		t.Errorf("Expected remote version to win, got %q", merged.Notes[0].EncryptedTitle)
	}
}

func TestMergeDocuments_TieKeepsLocal(t *testing.T) {
	local := &notestore.Document{Notes: []notestore.EncryptedNote{encNote("1", "f", 100, "local")}}
	remote := &notestore.Document{Notes: []notestore.EncryptedNote{encNote("1", "f", 100, "remote")}}

	merged := MergeDocuments(local, remote, 999)

	if merged.Notes[0].EncryptedTitle != "local" {
		t.Errorf("Expected tie to keep local, got %q", merged.Notes[0].EncryptedTitle)
	}
}

func TestMergeDocuments_LocalNewerKept(t *testing.T) {
	local := &notestore.Document{Notes: []notestore.EncryptedNote{encNote("1", "f", 300, "local")}}
	remote := &notestore.Document{Notes: []notestore.EncryptedNote{encNote("1", "f", 200, "remote")}}

	merged := MergeDocuments(local, remote, 999)

	if merged.Notes[0].EncryptedTitle != "local" {
		t.Errorf("Expected newer local to win, got %q", merged.Notes[0].EncryptedTitle)
	}
}

func TestMergeDocuments_DeletedLocalNoteReappears(t *testing.T) {
	// The note was deleted locally but is still on the remote; without
	// tombstones it comes back. Documented behavior, not a regression.
	local := &notestore.Document{}
	remote := &notestore.Document{Notes: []notestore.EncryptedNote{encNote("1", "f", 100, "remote")}}

	merged := MergeDocuments(local, remote, 999)

	if len(merged.Notes) != 1 || merged.Notes[0].ID != "1" {
		t.Errorf("Expected remote-only note to reappear, got %+v", merged.Notes)
	}
}

func TestMergeDocuments_UnseenRemoteIDsAppended(t *testing.T) {
	local := &notestore.Document{Notes: []notestore.EncryptedNote{encNote("a", "f", 100, "la")}}
	remote := &notestore.Document{Notes: []notestore.EncryptedNote{
		encNote("a", "f", 50, "ra"),
		encNote("b", "f", 10, "rb"),
	}}

	merged := MergeDocuments(local, remote, 999)

	if len(merged.Notes) != 2 {
		t.Fatalf("Expected 2 notes, got %d", len(merged.Notes))
	}
	if merged.Notes[0].EncryptedTitle != "la" {
		t.Errorf("Expected local note kept first, got %q", merged.Notes[0].EncryptedTitle)
	}
	if merged.Notes[1].ID != "b" {
		t.Errorf("Expected remote-only note appended, got %+v", merged.Notes[1])
	}
}

func TestMergeDocuments_FolderUnion(t *testing.T) {
	local := &notestore.Document{Folders: []notestore.Folder{{Name: "work", CreatedAt: 10}}}
	remote := &notestore.Document{Folders: []notestore.Folder{
		{Name: "work", CreatedAt: 55},
		{Name: "personal", CreatedAt: 77},
	}}

	merged := MergeDocuments(local, remote, 999)

	if len(merged.Folders) != 2 {
		t.Fatalf("Expected 2 folders, got %d", len(merged.Folders))
	}
	if merged.Folders[0].Name != "work" || merged.Folders[0].CreatedAt != 10 {
		t.Errorf("Expected local folder entry preserved, got %+v", merged.Folders[0])
	}
	// The unioned-in folder is stamped with the merge time, not the
	// remote createdAt. Lossy, but documented.
	if merged.Folders[1].Name != "personal" || merged.Folders[1].CreatedAt != 999 {
		t.Errorf("Expected remote-only folder stamped with merge time, got %+v", merged.Folders[1])
	}
}
