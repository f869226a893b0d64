// Package errors defines sentinel errors for notevault operations.
//
// These errors enable proper error handling with errors.Is() checks,
// allowing the command layer to distinguish expected conditions (a
// duplicate title, a missing remote document) from real failures.
//
// # Usage
//
// Check for specific conditions:
//
//	doc, err := store.Load()
//	if errors.Is(err, verrors.ErrStorageCorrupt) {
//	    // report corruption instead of treating the store as empty
//	}
//
// Wrap with context when propagating:
//
//	return fmt.Errorf("%w: PUT %s returned %d", verrors.ErrSyncTransport, url, resp.StatusCode)
package errors
