package syncengine

import (
	"fmt"

	verrors "github.com/silverfern314/notevault/internal/errors"
)

// CustomHTTPBackend is a placeholder for user-defined HTTP endpoints.
// Its transfer operations are deliberately unimplemented; selecting it
// fails loudly instead of pretending to sync.
type CustomHTTPBackend struct{}

func NewCustomHTTPBackend() *CustomHTTPBackend {
	return &CustomHTTPBackend{}
}

func (b *CustomHTTPBackend) Upload(name string, blob []byte) error {
	return fmt.Errorf("%w: custom backend has no upload endpoint configured", verrors.ErrSyncConfigIncomplete)
}

func (b *CustomHTTPBackend) Download(name string) ([]byte, error) {
	return nil, fmt.Errorf("%w: custom backend has no download endpoint configured", verrors.ErrSyncConfigIncomplete)
}
