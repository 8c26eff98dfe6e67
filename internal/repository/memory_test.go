package repository

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/visioncraftlabs/backend/internal/model"
)

// ---------------------------------------------------------------------------
// MemContactRepository tests
// ---------------------------------------------------------------------------

func TestMemContactRepository_SequentialIDs(t *testing.T) {
	repo := NewMemContactRepository()
	ctx := context.Background()

	for want := 1; want <= 3; want++ {
		sub, err := repo.Create(ctx, model.ContactInput{Name: "Jo Smith", Email: "a@b.com", Message: "hello there friend"})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		if sub.ID != want {
			t.Errorf("expected id %d, got %d", want, sub.ID)
		}
		if sub.CreatedAt.IsZero() {
			t.Error("expected CreatedAt to be set")
		}
	}
}

func TestMemContactRepository_ConcurrentCreateUniqueIDs(t *testing.T) {
	repo := NewMemContactRepository()
	ctx := context.Background()

	const n = 50
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub, err := repo.Create(ctx, model.ContactInput{Name: "Jo Smith", Email: "a@b.com", Message: "hello there friend"})
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- sub.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := map[int]bool{}
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate id %d", id)
		}
		seen[id] = true
	}
	if len(seen) != n {
		t.Errorf("expected %d unique ids, got %d", n, len(seen))
	}
}

func TestMemContactRepository_ListOrderedNewestFirst(t *testing.T) {
	repo := NewMemContactRepository()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, model.ContactInput{Name: "Jo Smith", Email: "a@b.com", Message: "hello there friend"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	subs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(subs) != 3 {
		t.Fatalf("expected 3 submissions, got %d", len(subs))
	}
	for i := 1; i < len(subs); i++ {
		prev, cur := subs[i-1], subs[i]
		if cur.CreatedAt.After(prev.CreatedAt) {
			t.Errorf("submissions out of order at %d", i)
		}
		if cur.CreatedAt.Equal(prev.CreatedAt) && cur.ID > prev.ID {
			t.Errorf("id tiebreak not descending at %d", i)
		}
	}
}

func TestMemContactRepository_ListEmpty(t *testing.T) {
	repo := NewMemContactRepository()
	subs, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if subs == nil || len(subs) != 0 {
		t.Errorf("expected empty slice, got %v", subs)
	}
}

func TestMemContactRepository_ListReturnsCopies(t *testing.T) {
	repo := NewMemContactRepository()
	ctx := context.Background()
	if _, err := repo.Create(ctx, model.ContactInput{Name: "Jo Smith", Email: "a@b.com", Message: "hello there friend"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	first, _ := repo.List(ctx)
	first[0].Name = "mutated"

	second, _ := repo.List(ctx)
	if second[0].Name != "Jo Smith" {
		t.Error("mutating a listed record leaked into the store")
	}
}

// ---------------------------------------------------------------------------
// MemUploadRepository tests
// ---------------------------------------------------------------------------

func uploadInput() model.UploadInput {
	return model.UploadInput{
		FileName:     "abc123.jpg",
		OriginalName: "holiday.jpg",
		FileSize:     "2048",
		MimeType:     "image/jpeg",
		UploadPath:   "/uploads/abc123.jpg",
	}
}

func TestMemUploadRepository_CreateSetsInitialStatus(t *testing.T) {
	repo := NewMemUploadRepository()
	up, err := repo.Create(context.Background(), uploadInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if up.ID != 1 {
		t.Errorf("expected id 1, got %d", up.ID)
	}
	if up.Status != model.StatusUploaded {
		t.Errorf("expected status %q, got %q", model.StatusUploaded, up.Status)
	}
	if up.ClientName != nil {
		t.Errorf("expected nil ClientName, got %q", *up.ClientName)
	}
}

func TestMemUploadRepository_GetUnknownID(t *testing.T) {
	repo := NewMemUploadRepository()
	_, err := repo.Get(context.Background(), 42)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestMemUploadRepository_UpdateStatus(t *testing.T) {
	repo := NewMemUploadRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, uploadInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.UpdateStatus(ctx, created.ID, model.StatusProcessing)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != model.StatusProcessing {
		t.Errorf("expected %q, got %q", model.StatusProcessing, updated.Status)
	}

	got, err := repo.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != model.StatusProcessing {
		t.Errorf("status change not persisted, got %q", got.Status)
	}
}

func TestMemUploadRepository_UpdateStatusUnknownID(t *testing.T) {
	repo := NewMemUploadRepository()
	_, err := repo.UpdateStatus(context.Background(), 99, model.StatusCompleted)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
