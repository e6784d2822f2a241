// Package blobstore defines the blob storage port for lease documents.
package blobstore

import (
	"context"
	"io"
)

// Store is the port interface for document blob storage. Implementations
// must make Put all-or-nothing: a failed upload leaves no partial blob
// behind.
type Store interface {
	// Put writes the blob under name and returns its URL.
	Put(ctx context.Context, name string, r io.Reader, contentType string) (string, error)

	// DeleteIfExists removes the blob if present. It reports whether a
	// blob was deleted; a missing blob is not an error.
	DeleteIfExists(ctx context.Context, name string) (bool, error)
}
