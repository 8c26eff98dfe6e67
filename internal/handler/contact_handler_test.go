package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/visioncraftlabs/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Mock ContactService
// ---------------------------------------------------------------------------

type mockContactService struct {
	submitFunc func(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, bool, error)
	listFunc   func(ctx context.Context) ([]*model.ContactSubmission, error)
	submits    int
}

func (m *mockContactService) Submit(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, bool, error) {
	m.submits++
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return &model.ContactSubmission{ID: 1, Name: in.Name, Email: in.Email, Message: in.Message, CreatedAt: time.Now()}, true, nil
}

func (m *mockContactService) List(ctx context.Context) ([]*model.ContactSubmission, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func postJSON(path, body string) *http.Request {
	r := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	return r
}

// ---------------------------------------------------------------------------
// POST /api/contact tests
// ---------------------------------------------------------------------------

func TestContactHandler_Submit_Success(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := postJSON("/api/contact", `{"name":"Jo Smith","email":"a@b.com","message":"This is a long enough message."}`)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Success   bool `json:"success"`
		ID        int  `json:"id"`
		EmailSent bool `json:"emailSent"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !resp.Success || resp.ID != 1 || !resp.EmailSent {
		t.Errorf("unexpected response %+v", resp)
	}
}

func TestContactHandler_Submit_InvalidJSON(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := postJSON("/api/contact", `{not json`)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestContactHandler_Submit_ShortMessageNotPersisted(t *testing.T) {
	svc := &mockContactService{}
	h := NewContactHandler(svc)

	req := postJSON("/api/contact", `{"name":"Jo","email":"a@b.com","message":"short"}`)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.submits != 0 {
		t.Error("nothing must be persisted on validation failure")
	}

	var resp struct {
		Success bool `json:"success"`
		Errors  []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Success {
		t.Error("expected success=false")
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Field != "message" {
		t.Errorf("expected one message violation, got %+v", resp.Errors)
	}
}

func TestContactHandler_Submit_NotificationFailureStillSucceeds(t *testing.T) {
	svc := &mockContactService{
		submitFunc: func(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, bool, error) {
			return &model.ContactSubmission{ID: 3}, false, nil
		},
	}
	h := NewContactHandler(svc)

	req := postJSON("/api/contact", `{"name":"Jo Smith","email":"a@b.com","message":"This is a long enough message."}`)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		EmailSent bool `json:"emailSent"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.EmailSent {
		t.Error("expected emailSent=false")
	}
}

func TestContactHandler_Submit_PersistenceFailure(t *testing.T) {
	svc := &mockContactService{
		submitFunc: func(ctx context.Context, in model.ContactInput) (*model.ContactSubmission, bool, error) {
			return nil, false, errors.New("store failure")
		},
	}
	h := NewContactHandler(svc)

	req := postJSON("/api/contact", `{"name":"Jo Smith","email":"a@b.com","message":"This is a long enough message."}`)
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "store failure") {
		t.Error("internal error detail leaked to the client")
	}
}

// ---------------------------------------------------------------------------
// GET /api/contact-submissions tests
// ---------------------------------------------------------------------------

func TestContactHandler_List_Success(t *testing.T) {
	now := time.Now()
	svc := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return []*model.ContactSubmission{
				{ID: 2, Name: "B", CreatedAt: now},
				{ID: 1, Name: "A", CreatedAt: now.Add(-time.Minute)},
			}, nil
		},
	}
	h := NewContactHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/contact-submissions", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var subs []*model.ContactSubmission
	if err := json.NewDecoder(rec.Body).Decode(&subs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(subs) != 2 || subs[0].ID != 2 {
		t.Errorf("unexpected listing %+v", subs)
	}
}

func TestContactHandler_List_EmptyReturnsEmptyArray(t *testing.T) {
	h := NewContactHandler(&mockContactService{})

	req := httptest.NewRequest(http.MethodGet, "/api/contact-submissions", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected [], got %s", body)
	}
}

func TestContactHandler_List_Failure(t *testing.T) {
	svc := &mockContactService{
		listFunc: func(ctx context.Context) ([]*model.ContactSubmission, error) {
			return nil, errors.New("store failure")
		},
	}
	h := NewContactHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/contact-submissions", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}
