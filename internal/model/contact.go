package model

import "time"

// ContactSubmission is a persisted contact-form record.
type ContactSubmission struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactInput carries the validated fields for a new contact submission.
// ID and CreatedAt are assigned by the repository.
type ContactInput struct {
	Name    string
	Email   string
	Phone   *string
	Message string
}
