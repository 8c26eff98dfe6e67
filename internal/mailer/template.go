package mailer

import (
	"html"
	"strings"
	"time"
)

// escape neutralizes the HTML metacharacters &<>"' in user-supplied text
// before it is interpolated into a notification body.
func escape(s string) string {
	return html.EscapeString(s)
}

func contactHTML(m ContactMessage) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2>New Contact Form Submission</h2>`)
	b.WriteString(`<p><strong>Name:</strong> ` + escape(m.Name) + `</p>`)
	b.WriteString(`<p><strong>Email:</strong> ` + escape(m.Email) + `</p>`)
	if m.Phone != nil {
		b.WriteString(`<p><strong>Phone:</strong> ` + escape(*m.Phone) + `</p>`)
	}
	b.WriteString(`<h3>Message</h3>`)
	b.WriteString(`<p style="white-space: pre-wrap;">` + escape(m.Message) + `</p>`)
	b.WriteString(`<p style="font-size: 12px; color: #6c757d;">Sent from the VisionCraft Labs contact form at ` +
		time.Now().UTC().Format(time.RFC1123) + `.</p>`)
	b.WriteString(`</div>`)
	return b.String()
}

func uploadHTML(m UploadMessage) string {
	var b strings.Builder
	b.WriteString(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">`)
	b.WriteString(`<h2>New Image Upload for Preview</h2>`)
	b.WriteString(`<p><strong>Original File Name:</strong> ` + escape(m.OriginalName) + `</p>`)
	b.WriteString(`<p><strong>Server File Name:</strong> ` + escape(m.FileName) + `</p>`)

	if m.ClientName != nil || m.ClientEmail != nil || m.ClientPhone != nil {
		b.WriteString(`<h3>Client Information</h3>`)
		if m.ClientName != nil {
			b.WriteString(`<p><strong>Name:</strong> ` + escape(*m.ClientName) + `</p>`)
		}
		if m.ClientEmail != nil {
			b.WriteString(`<p><strong>Email:</strong> ` + escape(*m.ClientEmail) + `</p>`)
		}
		if m.ClientPhone != nil {
			b.WriteString(`<p><strong>Phone:</strong> ` + escape(*m.ClientPhone) + `</p>`)
		}
	} else {
		b.WriteString(`<p><strong>Note:</strong> No client contact information was provided with this upload.</p>`)
	}

	b.WriteString(`<p style="font-size: 12px; color: #6c757d;">Sent from the VisionCraft Labs upload system at ` +
		time.Now().UTC().Format(time.RFC1123) + `.</p>`)
	b.WriteString(`</div>`)
	return b.String()
}
