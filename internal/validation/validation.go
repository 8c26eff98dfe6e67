// Package validation checks untrusted form and file input and reports
// per-field violations as typed errors, so handlers can distinguish
// client-fault input from server faults.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	minNameLength    = 2
	minMessageLength = 10

	// MaxUploadSize is the largest accepted image file, in bytes.
	MaxUploadSize = 10 << 20 // 10 MiB
)

// emailPattern is intentionally loose: one @, no whitespace, a dot in the
// domain. Deliverability is not checked here.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// allowedMimeTypes is the accepted image MIME allow-list. image/jpg is a
// non-standard alias some clients still send.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// FieldError describes a single violated rule on one input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error carries every violation found in one payload. It is the only error
// type validation functions return.
type Error struct {
	Fields []FieldError
}

func (e *Error) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = f.Field + ": " + f.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// ValidateContact checks a contact-form payload. Returns nil when the
// payload is acceptable. Phone is optional and unconstrained.
func ValidateContact(name, email, message string) *Error {
	var fields []FieldError

	if len([]rune(strings.TrimSpace(name))) < minNameLength {
		fields = append(fields, FieldError{
			Field:   "name",
			Message: fmt.Sprintf("must be at least %d characters", minNameLength),
		})
	}
	if !emailPattern.MatchString(email) {
		fields = append(fields, FieldError{
			Field:   "email",
			Message: "must be a valid email address",
		})
	}
	if len([]rune(strings.TrimSpace(message))) < minMessageLength {
		fields = append(fields, FieldError{
			Field:   "message",
			Message: fmt.Sprintf("must be at least %d characters", minMessageLength),
		})
	}

	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// CheckImage validates a declared MIME type and byte size against the
// allow-list and size cap. The values come from the transport layer and are
// advisory only; the file content itself is not sniffed.
func CheckImage(mimeType string, size int64) *Error {
	var fields []FieldError

	if !allowedMimeTypes[strings.ToLower(mimeType)] {
		fields = append(fields, FieldError{
			Field:   "image",
			Message: "file type must be jpeg, png, gif or webp",
		})
	}
	if size > MaxUploadSize {
		fields = append(fields, FieldError{
			Field:   "image",
			Message: "file exceeds the 10 MiB limit",
		})
	}

	if len(fields) > 0 {
		return &Error{Fields: fields}
	}
	return nil
}

// Optional normalizes an optional form field: empty or whitespace-only
// input becomes nil rather than an empty string in storage.
func Optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
