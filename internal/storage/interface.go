package storage

import (
	"context"
	"io"
	"time"
)

// StorageInterface defines the interface for photo storage backends.
// The local backend is the only one implemented; the interface keeps the
// door open for cloud blob stores.
type StorageInterface interface {
	// SaveFile stores the bytes under the given key.
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a stored file for reading.
	ReadFile(key string) (io.ReadCloser, error)

	// GetDownloadURL resolves a fetchable URL for a stored key.
	GetDownloadURL(ctx context.Context, key string) (string, error)

	// FileExists checks if a file exists and returns its size.
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage.
	DeleteFile(ctx context.Context, key string) error

	// ListKeysOlderThan returns keys whose files were last modified before
	// the cutoff. Used by the orphaned-photo sweep.
	ListKeysOlderThan(ctx context.Context, cutoff time.Time) ([]string, error)
}
