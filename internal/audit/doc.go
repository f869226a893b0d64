// Package audit provides audit trail logging for notevault operations.
//
// Every significant operation (note create/update/delete, folder
// changes, sync runs) is recorded in a data-dir-level audit log.
//
// # Log Format
//
// The audit log is stored as JSON Lines (one JSON object per line) at:
//
//	<data dir>/audit.jsonl
//
// Each entry contains:
//   - Timestamp (RFC3339 with microseconds, UTC)
//   - Username
//   - Operation name
//   - Operation-specific details (note id, folder, counts)
//
// Note titles and contents never appear in the log; only envelope
// metadata is recorded.
//
// # Failure Handling
//
// Audit logging is best-effort. If logging fails (permissions, disk
// full, etc.), the operation continues without error.
//
// # Reading Logs
//
// Use ReadEntries() to parse the audit log for display or analysis.
// Malformed entries are silently skipped to handle partial writes.
package audit
