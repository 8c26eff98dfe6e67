// Package storage abstracts where uploaded image files live. The local
// filesystem implementation can be swapped for S3 / Cloudflare R2 without
// touching the upload pipeline.
package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotFound is returned by Resolve when no stored file matches the name,
// or when the name would escape the storage root.
var ErrNotFound = errors.New("storage: file not found")

// Storage saves uploaded files under server-assigned names and resolves
// stored names back to readable paths.
type Storage interface {
	// Save stores the file content under a fresh server-assigned name
	// (derived from originalName's extension, never its base name) and
	// returns that name plus the full storage path.
	Save(ctx context.Context, originalName string, data io.Reader) (fileName, path string, err error)

	// Resolve maps a stored file name to an absolute path inside the
	// storage root. Names that are missing or attempt to traverse outside
	// the root yield ErrNotFound.
	Resolve(name string) (string, error)
}
