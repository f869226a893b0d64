package syncengine

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	verrors "github.com/silverfern314/notevault/internal/errors"
	logger "github.com/silverfern314/notevault/internal/logging"
	"github.com/silverfern314/notevault/internal/notestore"
)

// Engine pushes and pulls a user's encrypted document against one
// configured backend. It never decrypts note content.
//
// A single in-progress flag excludes overlapping operations: a second
// sync while one is in flight fails with ErrSyncBusy instead of being
// queued. The flag is cleared on every exit path.
type Engine struct {
	backend Backend
	log     logger.Logger

	syncInProgress atomic.Bool
}

func NewEngine(backend Backend, log logger.Logger) *Engine {
	return &Engine{backend: backend, log: log}
}

// HasBackend reports whether a remote backend is configured.
func (e *Engine) HasBackend() bool {
	return e.backend != nil
}

func (e *Engine) begin() error {
	if !e.syncInProgress.CompareAndSwap(false, true) {
		return verrors.ErrSyncBusy
	}
	return nil
}

func (e *Engine) end() {
	e.syncInProgress.Store(false)
}

// RemoteName is the per-user object name used on every backend. It
// matches the local file name so the remote mirrors the local layout.
func RemoteName(localPath string) string {
	return filepath.Base(localPath)
}

// Upload sends the local document to the remote. It reports false when
// no backend is configured. Transport failures are surfaced after the
// in-progress flag is cleared; nothing is retried.
func (e *Engine) Upload(localPath string) (bool, error) {
	if e.backend == nil {
		e.log.Debugf("No sync backend configured, skipping upload")
		return false, nil
	}
	if err := e.begin(); err != nil {
		return false, err
	}
	defer e.end()

	return e.upload(localPath)
}

// upload is the flag-free body shared with Merge.
func (e *Engine) upload(localPath string) (bool, error) {
	blob, err := os.ReadFile(localPath)
	if err != nil {
		return false, fmt.Errorf("failed to read local document: %w", err)
	}

	name := RemoteName(localPath)
	e.log.Debugf("Uploading %d bytes as %s", len(blob), name)
	if err := e.backend.Upload(name, blob); err != nil {
		return false, err
	}
	return true, nil
}

// Download fetches the remote document and overwrites the local file.
// A remote that has never synced (not found) reports false with no
// error, distinct from a transport failure.
func (e *Engine) Download(localPath string) (bool, error) {
	if e.backend == nil {
		e.log.Debugf("No sync backend configured, skipping download")
		return false, nil
	}
	if err := e.begin(); err != nil {
		return false, err
	}
	defer e.end()

	blob, err := e.backend.Download(RemoteName(localPath))
	if errors.Is(err, verrors.ErrRemoteNotFound) {
		e.log.Infof("Remote has no document yet")
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := notestore.WriteFileAtomic(localPath, blob); err != nil {
		return false, err
	}
	return true, nil
}

// Merge reconciles local and remote copies of the document:
//
//  1. Download the remote document. If absent, upload the local one as
//     the remote baseline and stop.
//  2. Parse both sides (ciphertext stays opaque).
//  3. Merge notes per-id last-writer-wins and union folders.
//  4. Write the merged document locally, then upload it as the new
//     remote baseline.
//
// The sequence is not transactional: a completed local overwrite is
// not rolled back if the final upload fails.
func (e *Engine) Merge(localPath string) (bool, error) {
	if e.backend == nil {
		e.log.Debugf("No sync backend configured, skipping merge")
		return false, nil
	}
	if err := e.begin(); err != nil {
		return false, err
	}
	defer e.end()

	name := RemoteName(localPath)

	remoteBlob, err := e.backend.Download(name)
	if errors.Is(err, verrors.ErrRemoteNotFound) {
		e.log.Infof("Remote has no document, uploading local as baseline")
		return e.upload(localPath)
	}
	if err != nil {
		return false, err
	}

	remoteDoc, err := notestore.ParseDocument(remoteBlob)
	if err != nil {
		return false, fmt.Errorf("remote document: %w", err)
	}
	localDoc, err := notestore.LoadDocument(localPath)
	if err != nil {
		return false, err
	}

	merged := MergeDocuments(localDoc, remoteDoc, time.Now().UnixMilli())
	e.log.Infof("Merged %d local + %d remote notes into %d",
		len(localDoc.Notes), len(remoteDoc.Notes), len(merged.Notes))

	if err := notestore.SaveDocument(localPath, merged); err != nil {
		return false, err
	}

	return e.upload(localPath)
}
