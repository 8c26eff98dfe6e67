package service

import (
	"context"
	"log/slog"

	"github.com/visioncraftlabs/backend/internal/mailer"
	"github.com/visioncraftlabs/backend/internal/model"
	"github.com/visioncraftlabs/backend/internal/repository"
)

type contactServiceImpl struct {
	repo repository.ContactRepository
	mail mailer.Mailer
}

// NewContactService creates a ContactService backed by the given repository
// and mailer.
func NewContactService(repo repository.ContactRepository, mail mailer.Mailer) ContactService {
	return &contactServiceImpl{repo: repo, mail: mail}
}

// Submit persists first, then notifies. Notification failure is logged for
// manual resend and reported through the returned bool; the already-committed
// write is never rolled back, so a client retry after an email outage would
// create a duplicate submission.
func (s *contactServiceImpl) Submit(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, bool, error) {
	sub, err := s.repo.Create(ctx, in)
	if err != nil {
		return nil, false, err
	}

	// Detached from the request context: a client disconnect must not
	// abort a notification for a submission that is already stored.
	sendCtx := context.WithoutCancel(ctx)
	if err := s.mail.SendContact(sendCtx, mailer.ContactMessage{
		Name:    sub.Name,
		Email:   sub.Email,
		Phone:   sub.Phone,
		Message: sub.Message,
	}); err != nil {
		slog.Error("contact notification failed", "error", err, "submission_id", sub.ID)
		return sub, false, nil
	}
	return sub, true, nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx)
}
