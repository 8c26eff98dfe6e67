package model

import "time"

// Upload status values. Status only ever moves forward:
// uploaded -> processing -> completed.
const (
	StatusUploaded   = "uploaded"
	StatusProcessing = "processing"
	StatusCompleted  = "completed"
)

// ValidStatus reports whether s is a known upload status.
func ValidStatus(s string) bool {
	return s == StatusUploaded || s == StatusProcessing || s == StatusCompleted
}

// ImageUpload is a persisted metadata record describing a client-provided
// image plus its processing status. FileName is the server-assigned storage
// name; OriginalName is the untrusted client-supplied name, kept for display
// only.
type ImageUpload struct {
	ID           int       `json:"id"`
	FileName     string    `json:"fileName"`
	OriginalName string    `json:"originalName"`
	FileSize     string    `json:"fileSize"`
	MimeType     string    `json:"mimeType"`
	UploadPath   string    `json:"uploadPath"`
	ClientName   *string   `json:"clientName"`
	ClientEmail  *string   `json:"clientEmail"`
	ClientPhone  *string   `json:"clientPhone"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UploadInput carries the fields for a new upload record. Client contact
// fields are nil when the uploader left them blank.
type UploadInput struct {
	FileName     string
	OriginalName string
	FileSize     string
	MimeType     string
	UploadPath   string
	ClientName   *string
	ClientEmail  *string
	ClientPhone  *string
}
