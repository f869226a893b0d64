package notestore

// Folder groups notes by name. Names are unique per user document.
type Folder struct {
	Name      string `json:"name"`
	CreatedAt int64  `json:"createdAt"`
}

// EncryptedNote is the on-disk shape of a note. Title and content are
// ciphertext; id, folder and timestamps stay plaintext so the sync
// engine can merge on envelope metadata without decrypting anything.
// Folder names and timestamps are not treated as sensitive.
type EncryptedNote struct {
	ID               string `json:"id"`
	Folder           string `json:"folder"`
	EncryptedTitle   string `json:"encryptedTitle"`
	EncryptedContent string `json:"encryptedContent"`
	CreatedAt        int64  `json:"createdAt"`
	UpdatedAt        int64  `json:"updatedAt"`
}

// Note is the decrypted view handed to callers.
type Note struct {
	ID        string
	Folder    string
	Title     string
	Content   string
	CreatedAt int64
	UpdatedAt int64
}

// Document is the full per-user storage unit: all folders plus all
// encrypted notes. One document file exists per username, and the
// document is the unit of sync transport.
type Document struct {
	Folders []Folder        `json:"folders"`
	Notes   []EncryptedNote `json:"notes"`
}

// DefaultFolder is where notes land when no folder is given.
const DefaultFolder = "default"
