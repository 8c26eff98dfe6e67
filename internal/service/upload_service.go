package service

import (
	"context"
	"io"

	"github.com/visioncraftlabs/backend/internal/model"
)

// UploadRequest carries an accepted image file's metadata into the upload
// pipeline. The file content itself travels separately as a reader. Client
// contact fields are nil when the uploader left them blank.
type UploadRequest struct {
	OriginalName string
	MimeType     string
	Size         int64
	ClientName   *string
	ClientEmail  *string
	ClientPhone  *string
}

// UploadService is the image-upload pipeline: store the file, persist the
// record, then attempt a best-effort email notification.
type UploadService interface {
	// Create stores the file and its metadata record and attempts
	// notification. The bool reports whether the email went out;
	// notification failure never fails the upload.
	Create(ctx context.Context, req UploadRequest, data io.Reader) (*model.ImageUpload, bool, error)

	// List returns all upload records, newest first.
	List(ctx context.Context) ([]*model.ImageUpload, error)

	// Get returns one upload record, or repository.ErrNotFound.
	Get(ctx context.Context, id int) (*model.ImageUpload, error)

	// UpdateStatus moves an upload to a new processing status. The
	// administrative surface uses this; the public API does not expose it.
	UpdateStatus(ctx context.Context, id int, status string) (*model.ImageUpload, error)

	// ResolveFile maps a stored file name to a servable path within the
	// storage root, or storage.ErrNotFound.
	ResolveFile(name string) (string, error)
}
