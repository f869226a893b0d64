// Package session tracks the active user identity and its in-memory
// encryption key.
//
// The registry is the system's only access-control gate: note store
// operations fail closed (empty results or ErrNoActiveKey) when no key
// is loaded. It is an explicit dependency injected into the note store
// and sync engine rather than process-global state.
//
// Lifecycle: LoggedOut -> LoggedIn(user) -> LoggedOut. Logout is
// idempotent. Keys live only in memory and are dropped on logout.
package session
