// Package mailer delivers notification emails about contact submissions and
// image uploads. Exactly one transport is selected at construction time, in
// fixed priority order: the SendGrid HTTP API, then SMTP. There is no
// mid-send fallback; a request is notified at most once.
package mailer

import (
	"context"
	"errors"
	"time"
)

// ErrNotConfigured is returned by every send when no transport has the
// configuration it needs. Sending is never a silent no-op.
var ErrNotConfigured = errors.New("mailer: no email transport configured")

// sendTimeout bounds a single outbound delivery, independent of the inbound
// request deadline, so a slow provider cannot hold a request open.
const sendTimeout = 10 * time.Second

// Config carries the environment-driven mailer settings. A transport is
// considered configured only when all of its fields are present.
type Config struct {
	SendGridAPIKey string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	// From must be a sender the provider accepts; To receives every
	// notification.
	From string
	To   string
}

// Mailer sends notification emails. Expected failures (missing config,
// provider rejection, timeout) come back as error values; callers decide
// whether they are fatal.
type Mailer interface {
	SendContact(ctx context.Context, m ContactMessage) error
	SendUpload(ctx context.Context, m UploadMessage) error
}

// ContactMessage holds the submitted contact fields to embed in the
// notification. All values are treated as untrusted text.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   *string
	Message string
}

// UploadMessage holds the upload details to embed in the notification.
type UploadMessage struct {
	FileName     string
	OriginalName string
	ClientName   *string
	ClientEmail  *string
	ClientPhone  *string
}

// transport is one concrete delivery mechanism.
type transport interface {
	send(ctx context.Context, from, to, subject, html string) error
}

type mailer struct {
	transport transport
	from      string
	to        string
}

// New builds a Mailer from config. Construction always succeeds; when no
// transport is fully configured the first send returns ErrNotConfigured.
func New(cfg Config) Mailer {
	return &mailer{transport: selectTransport(cfg), from: cfg.From, to: cfg.To}
}

// selectTransport returns the first transport whose required configuration
// is fully present, or nil.
func selectTransport(cfg Config) transport {
	if cfg.SendGridAPIKey != "" {
		return newSendGridTransport(cfg.SendGridAPIKey)
	}
	if cfg.SMTPHost != "" && cfg.SMTPPort != 0 && cfg.SMTPUser != "" && cfg.SMTPPass != "" {
		return newSMTPTransport(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
	}
	return nil
}

func (m *mailer) SendContact(ctx context.Context, msg ContactMessage) error {
	return m.deliver(ctx, "New Contact Form Submission from "+msg.Name, contactHTML(msg))
}

func (m *mailer) SendUpload(ctx context.Context, msg UploadMessage) error {
	return m.deliver(ctx, "New Image Upload - "+msg.OriginalName, uploadHTML(msg))
}

func (m *mailer) deliver(ctx context.Context, subject, html string) error {
	if m.transport == nil {
		return ErrNotConfigured
	}
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	return m.transport.send(ctx, m.from, m.to, subject, html)
}
