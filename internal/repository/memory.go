package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/visioncraftlabs/backend/internal/model"
)

// MemContactRepository is an in-memory ContactRepository. Records live only
// for the lifetime of the process. Id assignment and insert happen under one
// lock so ids stay unique and monotonic under concurrent requests.
type MemContactRepository struct {
	mu     sync.Mutex
	nextID int
	items  []*model.ContactSubmission
}

// NewMemContactRepository creates an empty in-memory contact repository.
// Ids start at 1.
func NewMemContactRepository() *MemContactRepository {
	return &MemContactRepository{nextID: 1}
}

var _ ContactRepository = (*MemContactRepository)(nil)

func (r *MemContactRepository) Create(_ context.Context, in model.ContactInput) (*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub := &model.ContactSubmission{
		ID:        r.nextID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		CreatedAt: time.Now().UTC(),
	}
	r.nextID++
	r.items = append(r.items, sub)

	out := *sub
	return &out, nil
}

func (r *MemContactRepository) List(_ context.Context) ([]*model.ContactSubmission, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.ContactSubmission, len(r.items))
	for i, s := range r.items {
		c := *s
		out[i] = &c
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// Ping always succeeds: there is no backing connection to lose.
func (r *MemContactRepository) Ping(_ context.Context) error { return nil }

// MemUploadRepository is the in-memory UploadRepository counterpart.
type MemUploadRepository struct {
	mu     sync.Mutex
	nextID int
	items  []*model.ImageUpload
}

// NewMemUploadRepository creates an empty in-memory upload repository.
func NewMemUploadRepository() *MemUploadRepository {
	return &MemUploadRepository{nextID: 1}
}

var _ UploadRepository = (*MemUploadRepository)(nil)

func (r *MemUploadRepository) Create(_ context.Context, in model.UploadInput) (*model.ImageUpload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	up := &model.ImageUpload{
		ID:           r.nextID,
		FileName:     in.FileName,
		OriginalName: in.OriginalName,
		FileSize:     in.FileSize,
		MimeType:     in.MimeType,
		UploadPath:   in.UploadPath,
		ClientName:   in.ClientName,
		ClientEmail:  in.ClientEmail,
		ClientPhone:  in.ClientPhone,
		Status:       model.StatusUploaded,
		CreatedAt:    time.Now().UTC(),
	}
	r.nextID++
	r.items = append(r.items, up)

	out := *up
	return &out, nil
}

func (r *MemUploadRepository) List(_ context.Context) ([]*model.ImageUpload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*model.ImageUpload, len(r.items))
	for i, u := range r.items {
		c := *u
		out[i] = &c
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *MemUploadRepository) Get(_ context.Context, id int) (*model.ImageUpload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemUploadRepository) UpdateStatus(_ context.Context, id int, status string) (*model.ImageUpload, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.items {
		if u.ID == id {
			u.Status = status
			c := *u
			return &c, nil
		}
	}
	return nil, ErrNotFound
}
