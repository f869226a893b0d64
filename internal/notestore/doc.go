// Package notestore owns the per-user encrypted note document.
//
// Each user has a single JSON file, notes_<username>.encrypted, holding
// all folders and all notes. Note titles and contents are ciphertext;
// ids, folder names and timestamps remain plaintext so the sync engine
// can merge without decrypting (folder names and timestamps are not
// treated as sensitive).
//
// # Storage discipline
//
// Every operation loads the full document, mutates it in memory and
// writes a complete replacement via temp-file + rename. There is no
// append log and no partial patching: readers always see a fully
// parsed snapshot.
//
// # Invariants
//
//   - Folder names are unique per document.
//   - No two notes in the same folder share a title (case-sensitive,
//     checked at creation among decryptable notes).
//   - Deleting a folder cascades to every note in it.
//
// # Degraded modes
//
// Listing skips (and warns about) individual notes that fail to
// decrypt, so one corrupt entry does not hide the rest. Updating an
// unknown note id is a silent no-op. Both behaviors are deliberate.
package notestore
