// Package syncengine transports the per-user encrypted document to and
// from a remote backend and reconciles concurrent edits.
//
// The engine treats the document as an opaque encrypted blob at the
// field level: merging reads only envelope metadata (note id, folder,
// updatedAt) and never needs a key.
//
// # Backends
//
//   - none: sync disabled; operations report false and do nothing.
//   - basic-http: PUT/GET of raw bytes with HTTP basic auth.
//   - repo-api: a repository contents API with base64 bodies and an
//     optimistic-concurrency revision token per write.
//   - custom: an explicitly unimplemented stub that fails with
//     ErrSyncConfigIncomplete.
//
// # Conflict resolution
//
// Per-note last-writer-wins by updatedAt, strict greater-than, so ties
// keep the local version. Deletions are not tracked (no tombstones): a
// note removed locally but still on the remote reappears after merge.
package syncengine
