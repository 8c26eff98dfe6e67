package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/visioncraftlabs/backend/internal/model"
	"github.com/visioncraftlabs/backend/internal/repository"
	"github.com/visioncraftlabs/backend/internal/service"
	"github.com/visioncraftlabs/backend/internal/storage"
	"github.com/visioncraftlabs/backend/internal/validation"
)

// multipartOverhead is headroom on top of the file size cap for the
// multipart framing and the small client-info text fields.
const multipartOverhead = 1 << 20

// UploadHandler handles image uploads, listing and file serving.
type UploadHandler struct {
	uploadService service.UploadService
}

// NewUploadHandler creates an UploadHandler with the given service.
func NewUploadHandler(uploadService service.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

type uploadSummary struct {
	ID           int       `json:"id"`
	OriginalName string    `json:"originalName"`
	Status       string    `json:"status"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

type uploadResponse struct {
	Success   bool          `json:"success"`
	Upload    uploadSummary `json:"upload"`
	EmailSent bool          `json:"emailSent"`
}

// Upload handles POST /api/upload-image (multipart form).
// The body size cap is enforced before the form is buffered; file type and
// size checks use the transport-declared values and run before anything is
// persisted.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, validation.MaxUploadSize+multipartOverhead)

	if err := r.ParseMultipartForm(validation.MaxUploadSize); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Message: "Invalid form data",
			Errors: []validation.FieldError{
				{Field: "image", Message: "file exceeds the 10 MiB limit or the form is malformed"},
			},
		})
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, "No image file provided")
		return
	}
	defer file.Close()

	if verr := validation.CheckImage(header.Header.Get("Content-Type"), header.Size); verr != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Message: "Invalid form data",
			Errors:  verr.Fields,
		})
		return
	}

	up, emailSent, err := h.uploadService.Create(r.Context(), service.UploadRequest{
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		ClientName:   validation.Optional(r.FormValue("clientName")),
		ClientEmail:  validation.Optional(r.FormValue("clientEmail")),
		ClientPhone:  validation.Optional(r.FormValue("clientPhone")),
	}, file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to upload image")
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		Success: true,
		Upload: uploadSummary{
			ID:           up.ID,
			OriginalName: up.OriginalName,
			Status:       up.Status,
			UploadedAt:   up.CreatedAt,
		},
		EmailSent: emailSent,
	})
}

// List handles GET /api/uploads.
func (h *UploadHandler) List(w http.ResponseWriter, r *http.Request) {
	ups, err := h.uploadService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch uploads")
		return
	}

	// Return [] not null for empty lists
	if ups == nil {
		ups = []*model.ImageUpload{}
	}
	writeJSON(w, http.StatusOK, ups)
}

// Serve handles GET /api/uploads/{filename}.
// The name is resolved strictly within the storage root; traversal attempts
// and unknown files both answer 404 with no filesystem detail.
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	path, err := h.uploadService.ResolveFile(r.PathValue("filename"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Image not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to serve image")
		return
	}
	http.ServeFile(w, r, path)
}

// Get handles GET /api/admin/uploads/{id}, returning one full upload record.
func (h *UploadHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Upload not found")
		return
	}

	up, err := h.uploadService.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Upload not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch upload")
		return
	}
	writeJSON(w, http.StatusOK, up)
}

// updateStatusRequest is the expected JSON body for the admin status PATCH.
type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/uploads/{id}/status, the
// administrative surface for walking an upload through processing.
func (h *UploadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusNotFound, "Upload not found")
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}
	if !model.ValidStatus(req.Status) {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Message: "Invalid form data",
			Errors: []validation.FieldError{
				{Field: "status", Message: "must be uploaded, processing or completed"},
			},
		})
		return
	}

	up, err := h.uploadService.UpdateStatus(r.Context(), id, req.Status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Upload not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update upload status")
		return
	}
	writeJSON(w, http.StatusOK, up)
}
