// Package blob provides the lease document blob storage adapters: a
// local-disk store for development and an S3 store for production.
package blob

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rentfold/rentfold/internal/domain"
)

// Local stores blobs as files under a root directory. Writes go through a
// temp file and rename so a failed upload never leaves a partial blob.
type Local struct {
	root string
}

// NewLocal creates the root directory if needed and returns the store.
func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create blob dir %s: %w", root, err)
	}
	return &Local{root: root}, nil
}

func (l *Local) path(name string) (string, error) {
	// Stored names are generated server-side, but reject separators anyway.
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid blob name %q: %w", name, domain.ErrStorage)
	}
	return filepath.Join(l.root, name), nil
}

// Put writes the blob and returns a file URL for it. The content type is
// ignored; local files carry no metadata.
func (l *Local) Put(ctx context.Context, name string, r io.Reader, _ string) (string, error) {
	dst, err := l.path(name)
	if err != nil {
		return "", err
	}

	tmp, err := os.CreateTemp(l.root, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp blob: %w", err)
	}

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("write blob %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("close blob %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("store blob %s: %w", name, err)
	}

	return "file://" + dst, ctx.Err()
}

// DeleteIfExists removes the blob file if present.
func (l *Local) DeleteIfExists(_ context.Context, name string) (bool, error) {
	dst, err := l.path(name)
	if err != nil {
		return false, err
	}

	if err := os.Remove(dst); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("delete blob %s: %w", name, err)
	}
	return true, nil
}
