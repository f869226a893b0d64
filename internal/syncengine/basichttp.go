package syncengine

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	verrors "github.com/silverfern314/notevault/internal/errors"
)

// BasicHTTPBackend stores the document with plain PUT/GET requests
// against a base URL, authenticated with HTTP basic auth. A 404 on GET
// means the remote has no data yet.
type BasicHTTPBackend struct {
	baseURL  string
	username string
	password string
	client   *http.Client
}

func NewBasicHTTPBackend(baseURL, username, password string, timeout time.Duration) (*BasicHTTPBackend, error) {
	if baseURL == "" || username == "" || password == "" {
		return nil, fmt.Errorf("%w: basic-http needs a URL, username and password", verrors.ErrSyncConfigIncomplete)
	}

	return &BasicHTTPBackend{
		baseURL:  strings.TrimRight(baseURL, "/"),
		username: username,
		password: password,
		client:   &http.Client{Timeout: timeout},
	}, nil
}

func (b *BasicHTTPBackend) Upload(name string, blob []byte) error {
	url := b.baseURL + "/" + name

	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(blob))
	if err != nil {
		return fmt.Errorf("%w: %v", verrors.ErrSyncTransport, err)
	}
	req.SetBasicAuth(b.username, b.password)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := b.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: PUT %s: %v", verrors.ErrSyncTransport, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: PUT %s returned %d", verrors.ErrSyncTransport, url, resp.StatusCode)
	}
	return nil
}

func (b *BasicHTTPBackend) Download(name string) ([]byte, error) {
	url := b.baseURL + "/" + name

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", verrors.ErrSyncTransport, err)
	}
	req.SetBasicAuth(b.username, b.password)

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", verrors.ErrSyncTransport, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, verrors.ErrRemoteNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: GET %s returned %d", verrors.ErrSyncTransport, url, resp.StatusCode)
	}

	blob, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading GET %s body: %v", verrors.ErrSyncTransport, url, err)
	}
	return blob, nil
}
