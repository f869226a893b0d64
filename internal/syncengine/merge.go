package syncengine

import (
	"github.com/silverfern314/notevault/internal/notestore"
)

// MergeDocuments reconciles a local and a remote encrypted document.
// It operates on envelope metadata only (id, folder, updatedAt);
// ciphertext blobs are carried opaquely.
//
// Notes merge per-id with last-writer-wins: the remote version replaces
// the local one only when remote.updatedAt is strictly greater, so ties
// keep the local version. Remote notes with unseen ids are appended.
// There are no tombstones: a note deleted locally but still present
// remotely comes back.
//
// Folders merge as a union of names. Local entries keep their
// createdAt; folders only present remotely are stamped with now, the
// merge time (a documented lossy behavior).
func MergeDocuments(local, remote *notestore.Document, now int64) *notestore.Document {
	merged := &notestore.Document{
		Folders: make([]notestore.Folder, 0, len(local.Folders)),
		Notes:   make([]notestore.EncryptedNote, 0, len(local.Notes)),
	}

	byID := make(map[string]int, len(local.Notes))
	for _, n := range local.Notes {
		byID[n.ID] = len(merged.Notes)
		merged.Notes = append(merged.Notes, n)
	}
	for _, rn := range remote.Notes {
		if i, ok := byID[rn.ID]; ok {
			if rn.UpdatedAt > merged.Notes[i].UpdatedAt {
				merged.Notes[i] = rn
			}
			continue
		}
		byID[rn.ID] = len(merged.Notes)
		merged.Notes = append(merged.Notes, rn)
	}

	folderNames := make(map[string]bool, len(local.Folders))
	for _, f := range local.Folders {
		folderNames[f.Name] = true
		merged.Folders = append(merged.Folders, f)
	}
	for _, f := range remote.Folders {
		if folderNames[f.Name] {
			continue
		}
		folderNames[f.Name] = true
		merged.Folders = append(merged.Folders, notestore.Folder{Name: f.Name, CreatedAt: now})
	}

	return merged
}
