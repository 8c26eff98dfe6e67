package service

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/visioncraftlabs/backend/internal/mailer"
	"github.com/visioncraftlabs/backend/internal/model"
	"github.com/visioncraftlabs/backend/internal/repository"
	"github.com/visioncraftlabs/backend/internal/storage"
)

type uploadServiceImpl struct {
	repo  repository.UploadRepository
	store storage.Storage
	mail  mailer.Mailer
}

// NewUploadService creates an UploadService backed by the given repository,
// file storage and mailer.
func NewUploadService(repo repository.UploadRepository, store storage.Storage, mail mailer.Mailer) UploadService {
	return &uploadServiceImpl{repo: repo, store: store, mail: mail}
}

func (s *uploadServiceImpl) Create(ctx context.Context, req UploadRequest, data io.Reader) (*model.ImageUpload, bool, error) {
	fileName, path, err := s.store.Save(ctx, req.OriginalName, data)
	if err != nil {
		return nil, false, err
	}

	up, err := s.repo.Create(ctx, model.UploadInput{
		FileName:     fileName,
		OriginalName: req.OriginalName,
		FileSize:     strconv.FormatInt(req.Size, 10),
		MimeType:     req.MimeType,
		UploadPath:   path,
		ClientName:   req.ClientName,
		ClientEmail:  req.ClientEmail,
		ClientPhone:  req.ClientPhone,
	})
	if err != nil {
		return nil, false, err
	}

	sendCtx := context.WithoutCancel(ctx)
	if err := s.mail.SendUpload(sendCtx, mailer.UploadMessage{
		FileName:     up.FileName,
		OriginalName: up.OriginalName,
		ClientName:   up.ClientName,
		ClientEmail:  up.ClientEmail,
		ClientPhone:  up.ClientPhone,
	}); err != nil {
		slog.Error("upload notification failed", "error", err, "upload_id", up.ID)
		return up, false, nil
	}
	return up, true, nil
}

func (s *uploadServiceImpl) List(ctx context.Context) ([]*model.ImageUpload, error) {
	return s.repo.List(ctx)
}

func (s *uploadServiceImpl) Get(ctx context.Context, id int) (*model.ImageUpload, error) {
	return s.repo.Get(ctx, id)
}

func (s *uploadServiceImpl) UpdateStatus(ctx context.Context, id int, status string) (*model.ImageUpload, error) {
	return s.repo.UpdateStatus(ctx, id, status)
}

func (s *uploadServiceImpl) ResolveFile(name string) (string, error) {
	return s.store.Resolve(name)
}
