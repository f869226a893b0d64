package syncengine

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	verrors "github.com/silverfern314/notevault/internal/errors"
)

// RepoAPIBackend stores the document through a version-controlled
// repository contents API (GitHub style): GET/PUT {base}/contents/<name>
// with a base64-encoded body and an optimistic-concurrency revision
// token (sha) fetched before each PUT.
type RepoAPIBackend struct {
	baseURL string
	token   string
	client  *http.Client
}

func NewRepoAPIBackend(baseURL, token string, timeout time.Duration) (*RepoAPIBackend, error) {
	if baseURL == "" || token == "" {
		return nil, fmt.Errorf("%w: repo-api needs a URL and an access token", verrors.ErrSyncConfigIncomplete)
	}

	return &RepoAPIBackend{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

type repoContents struct {
	Content string `json:"content"`
	SHA     string `json:"sha"`
}

type repoPutRequest struct {
	Message string `json:"message"`
	Content string `json:"content"`
	SHA     string `json:"sha,omitempty"`
}

func (b *RepoAPIBackend) contentsURL(name string) string {
	return b.baseURL + "/contents/" + name
}

// fetch returns the current file contents and revision token, or
// ErrRemoteNotFound when the file does not exist in the repository.
func (b *RepoAPIBackend) fetch(name string) (*repoContents, error) {
	url := b.contentsURL(name)

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", verrors.ErrSyncTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+b.token)
	req.Header.Set("Accept", "application/json")

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

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading GET %s body: %v", verrors.ErrSyncTransport, url, err)
	}

	var contents repoContents
	if err := json.Unmarshal(body, &contents); err != nil {
		return nil, fmt.Errorf("%w: unexpected contents response from %s: %v", verrors.ErrSyncTransport, url, err)
	}
	return &contents, nil
}

func (b *RepoAPIBackend) Download(name string) ([]byte, error) {
	contents, err := b.fetch(name)
	if err != nil {
		return nil, err
	}

	// The contents API wraps base64 with newlines.
	raw := strings.ReplaceAll(contents.Content, "\n", "")
	blob, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64 in contents response: %v", verrors.ErrSyncTransport, err)
	}
	return blob, nil
}

func (b *RepoAPIBackend) Upload(name string, blob []byte) error {
	// Read-modify-write: grab the current revision token first so the
	// PUT replaces exactly the version we saw.
	var sha string
	contents, err := b.fetch(name)
	switch {
	case err == nil:
		sha = contents.SHA
	case errors.Is(err, verrors.ErrRemoteNotFound):
		// First upload, no token needed.
	default:
		return err
	}

	payload, err := json.Marshal(repoPutRequest{
		Message: "notevault sync",
		Content: base64.StdEncoding.EncodeToString(blob),
		SHA:     sha,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", verrors.ErrSyncTransport, err)
	}

	url := b.contentsURL(name)
	req, err := http.NewRequest(http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: %v", verrors.ErrSyncTransport, err)
	}
	req.Header.Set("Authorization", "Bearer "+b.token)
	req.Header.Set("Content-Type", "application/json")

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
