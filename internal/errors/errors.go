package errors

import "errors"

// Session errors indicate the operation requires an authenticated session.
var (
	// ErrNoActiveKey indicates no encryption key is loaded for the current session.
	ErrNoActiveKey = errors.New("no active encryption key, log in first")

	// ErrNoCurrentUser indicates no user is logged in.
	ErrNoCurrentUser = errors.New("no user is logged in")
)

// Cryptographic errors indicate failures during encryption or decryption.
var (
	// ErrDecryptionFailed indicates ciphertext could not be decrypted.
	// In practice this means the key is wrong or the data is corrupted.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEncryptionFailed indicates plaintext could not be encrypted.
	ErrEncryptionFailed = errors.New("encryption failed")
)

// Store errors indicate issues with the encrypted note document.
var (
	// ErrDuplicateFolder indicates a folder with that name already exists.
	ErrDuplicateFolder = errors.New("folder already exists")

	// ErrDuplicateTitle indicates a note with that title already exists in the folder.
	ErrDuplicateTitle = errors.New("a note with that title already exists in this folder")

	// ErrFolderNotFound indicates the requested folder does not exist.
	ErrFolderNotFound = errors.New("folder not found")

	// ErrStorageCorrupt indicates the note document could not be parsed.
	ErrStorageCorrupt = errors.New("note storage is corrupted")
)

// Sync errors indicate failures while talking to a remote backend.
var (
	// ErrSyncBusy indicates a sync operation is already in flight.
	ErrSyncBusy = errors.New("a sync operation is already in progress")

	// ErrSyncTransport indicates the remote backend could not be reached
	// or returned a failure.
	ErrSyncTransport = errors.New("sync transport failed")

	// ErrSyncConfigIncomplete indicates the chosen backend is missing
	// required configuration such as a URL or credentials.
	ErrSyncConfigIncomplete = errors.New("sync configuration is incomplete")

	// ErrRemoteNotFound indicates the remote has no document yet.
	// This is a valid outcome, distinct from a transport failure.
	ErrRemoteNotFound = errors.New("remote document not found")
)
