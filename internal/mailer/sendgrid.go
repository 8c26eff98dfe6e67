package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const sendGridBaseURL = "https://api.sendgrid.com"

// sendGridTransport delivers mail through the SendGrid v3 API with raw HTTP
// calls; no SDK.
type sendGridTransport struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func newSendGridTransport(apiKey string) *sendGridTransport {
	return &sendGridTransport{
		apiKey:     apiKey,
		baseURL:    sendGridBaseURL,
		httpClient: &http.Client{Timeout: sendTimeout},
	}
}

type sendGridAddress struct {
	Email string `json:"email"`
}

type sendGridPersonalization struct {
	To []sendGridAddress `json:"to"`
}

type sendGridContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sendGridRequest struct {
	Personalizations []sendGridPersonalization `json:"personalizations"`
	From             sendGridAddress           `json:"from"`
	Subject          string                    `json:"subject"`
	Content          []sendGridContent         `json:"content"`
}

func (t *sendGridTransport) send(ctx context.Context, from, to, subject, html string) error {
	payload := sendGridRequest{
		Personalizations: []sendGridPersonalization{{To: []sendGridAddress{{Email: to}}}},
		From:             sendGridAddress{Email: from},
		Subject:          subject,
		Content:          []sendGridContent{{Type: "text/html", Value: html}},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("mailer: marshal sendgrid request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		t.baseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("mailer: build sendgrid request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("mailer: sendgrid request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("mailer: sendgrid rejected send (status %d): %s", resp.StatusCode, bytes.TrimSpace(detail))
	}
	return nil
}

var _ transport = (*sendGridTransport)(nil)
