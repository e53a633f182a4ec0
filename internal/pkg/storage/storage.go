package storage

import (
	"context"
	"io"
)

// Storage defines the interface for file storage operations.
// Payment proofs and asset photos go through this, so swapping the local
// disk implementation for an object store only touches this package.
type Storage interface {
	// Save writes content to the given relative path.
	Save(ctx context.Context, path string, content io.Reader) error

	// Get opens the file at the given relative path.
	Get(ctx context.Context, path string) (io.ReadCloser, error)

	// Delete removes the file at the given relative path.
	Delete(ctx context.Context, path string) error
}
