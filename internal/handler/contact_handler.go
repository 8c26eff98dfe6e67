package handler

import (
	"encoding/json"
	"net/http"

	"github.com/visioncraftlabs/backend/internal/model"
	"github.com/visioncraftlabs/backend/internal/service"
	"github.com/visioncraftlabs/backend/internal/validation"
)

// ContactHandler handles contact-form submission and the admin listing.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type submitResponse struct {
	Success   bool `json:"success"`
	ID        int  `json:"id"`
	EmailSent bool `json:"emailSent"`
}

// validationResponse is the 422 envelope carrying field-level violations.
type validationResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message"`
	Errors  []validation.FieldError `json:"errors"`
}

// Submit handles POST /api/contact.
// name (min 2) and message (min 10) have length rules, email must parse;
// phone is optional. The submission is persisted before notification is
// attempted, and a failed notification does not fail the request.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON body")
		return
	}

	if verr := validation.ValidateContact(req.Name, req.Email, req.Message); verr != nil {
		writeJSON(w, http.StatusUnprocessableEntity, validationResponse{
			Message: "Invalid form data",
			Errors:  verr.Fields,
		})
		return
	}

	sub, emailSent, err := h.contactService.Submit(r.Context(), model.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   validation.Optional(req.Phone),
		Message: req.Message,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}

	writeJSON(w, http.StatusOK, submitResponse{Success: true, ID: sub.ID, EmailSent: emailSent})
}

// List handles GET /api/contact-submissions.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	subs, err := h.contactService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch contact submissions")
		return
	}

	// Return [] not null for empty lists
	if subs == nil {
		subs = []*model.ContactSubmission{}
	}
	writeJSON(w, http.StatusOK, subs)
}
