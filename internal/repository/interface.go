package repository

import (
	"context"

	"github.com/visioncraftlabs/backend/internal/model"
)

// DB reports whether the backing store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository persists contact-form submissions. Implementations
// assign sequential ids and the creation timestamp; callers never supply
// either.
type ContactRepository interface {
	Create(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, error)

	// List returns all submissions ordered by CreatedAt descending,
	// ties broken by id descending. Empty store yields an empty slice.
	List(ctx context.Context) ([]*model.ContactSubmission, error)
}

// UploadRepository persists image-upload records.
type UploadRepository interface {
	Create(ctx context.Context, in model.UploadInput) (*model.ImageUpload, error)

	// List returns all uploads ordered by CreatedAt descending,
	// ties broken by id descending.
	List(ctx context.Context) ([]*model.ImageUpload, error)

	// Get returns the upload with the given id, or ErrNotFound.
	Get(ctx context.Context, id int) (*model.ImageUpload, error)

	// UpdateStatus changes an upload's processing status and returns the
	// updated record, or ErrNotFound if the id is unknown.
	UpdateStatus(ctx context.Context, id int, status string) (*model.ImageUpload, error)
}
