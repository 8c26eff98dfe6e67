package service

import (
	"context"

	"github.com/visioncraftlabs/backend/internal/model"
)

// ContactService is the contact-form intake pipeline: persist the validated
// submission, then attempt a best-effort email notification.
type ContactService interface {
	// Submit persists the submission and attempts notification. The bool
	// reports whether the notification email went out; a false value does
	// not make the submission itself a failure.
	Submit(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, bool, error)

	// List returns all submissions, newest first.
	List(ctx context.Context) ([]*model.ContactSubmission, error)
}
