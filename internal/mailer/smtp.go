package mailer

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"
)

// smtpTransport delivers mail over authenticated SMTP. Used when no
// SendGrid key is configured.
type smtpTransport struct {
	host string
	port int
	user string
	pass string
}

func newSMTPTransport(host string, port int, user, pass string) *smtpTransport {
	return &smtpTransport{host: host, port: port, user: user, pass: pass}
}

var _ transport = (*smtpTransport)(nil)

func (t *smtpTransport) send(ctx context.Context, from, to, subject, html string) error {
	client, err := gomail.NewClient(t.host,
		gomail.WithPort(t.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(t.user),
		gomail.WithPassword(t.pass),
		gomail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return fmt.Errorf("mailer: smtp client: %w", err)
	}

	msg := gomail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("mailer: smtp from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mailer: smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, html)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("mailer: smtp send: %w", err)
	}
	return nil
}
