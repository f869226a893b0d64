package syncengine

import (
	"fmt"

	"github.com/silverfern314/notevault/internal/configs"
)

// Backend transports the encrypted document blob to and from a remote
// store. Implementations never look inside the blob.
type Backend interface {
	// Upload stores blob under name on the remote.
	Upload(name string, blob []byte) error

	// Download fetches the blob stored under name. A remote that has
	// never seen this name returns ErrRemoteNotFound, which is a valid
	// outcome distinct from a transport failure.
	Download(name string) ([]byte, error)
}

// NewBackend builds the backend selected by the sync configuration.
// BackendNone yields a nil Backend: sync operations become no-ops that
// report false rather than failures.
func NewBackend(cfg configs.SyncConfig) (Backend, error) {
	switch cfg.Backend {
	case configs.BackendNone, "":
		return nil, nil
	case configs.BackendBasicHTTP:
		return NewBasicHTTPBackend(cfg.BaseURL, cfg.Username, cfg.Password, cfg.Timeout())
	case configs.BackendRepoAPI:
		return NewRepoAPIBackend(cfg.BaseURL, cfg.Token, cfg.Timeout())
	case configs.BackendCustom:
		return NewCustomHTTPBackend(), nil
	default:
		return nil, fmt.Errorf("unknown sync backend %q", cfg.Backend)
	}
}
