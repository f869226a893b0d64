package session

import (
	"sync"

	"github.com/silverfern314/notevault/internal/cryptobox"
)

// Registry tracks the single active user and the in-memory encryption
// keys known to this process. Keys are never persisted.
//
// The mutex keeps the single-writer discipline when the registry is
// shared across goroutines; only one user is active at a time.
type Registry struct {
	mu      sync.Mutex
	current string
	keys    map[string]cryptobox.Key
}

func NewRegistry() *Registry {
	return &Registry{
		keys: make(map[string]cryptobox.Key),
	}
}

// Login sets the current user and stores their key in memory.
// Re-login with the same username overwrites the prior key. No
// verification happens here; callers verify by attempting a decrypt
// (see notestore.Store.VerifyLogin).
func (r *Registry) Login(username string, key cryptobox.Key) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = username
	r.keys[username] = key
}

// Attach sets the current user without loading a key. Folder
// operations work on plaintext metadata and need only an identity;
// note operations stay locked until Login supplies a key.
func (r *Registry) Attach(username string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.current = username
}

// Logout evicts the current user's key and clears the current user.
// Calling it while logged out is a no-op.
func (r *Registry) Logout() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == "" {
		return
	}
	delete(r.keys, r.current)
	r.current = ""
}

// CurrentUser returns the active username, or "" when logged out.
func (r *Registry) CurrentUser() string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.current
}

// HasActiveKey reports whether a key is loaded for the current user.
func (r *Registry) HasActiveKey() bool {
	_, ok := r.ActiveKey()
	return ok
}

// ActiveKey returns the current user's key, if one is loaded.
func (r *Registry) ActiveKey() (cryptobox.Key, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.current == "" {
		return cryptobox.Key{}, false
	}
	key, ok := r.keys[r.current]
	return key, ok
}
