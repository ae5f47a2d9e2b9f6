package mailer

import (
	"fmt"
	"io"

	apperrors "github.com/arafatanam/FilmFlow/internal/errors"

	"gopkg.in/gomail.v2"
)

// Email represents an outbound message with both plain-text and HTML bodies.
type Email struct {
	To          string
	Subject     string
	TextBody    string
	HTMLBody    string
	Attachments []Attachment
}

// Attachment is an in-memory file attached to an email.
type Attachment struct {
	Filename string
	Content  []byte
}

// Mailer sends email over SMTP. A mailer without a configured host is
// disabled: sends fail fast with ErrMailerNotConfigured instead of timing
// out against a dead connection.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// New creates a mailer from SMTP settings. An empty host yields a disabled
// mailer.
func New(host string, port int, username, password, from string) *Mailer {
	m := &Mailer{from: from}
	if host != "" {
		m.dialer = gomail.NewDialer(host, port, username, password)
	}
	return m
}

// Enabled reports whether the mailer has SMTP settings to dial with.
func (m *Mailer) Enabled() bool {
	return m.dialer != nil
}

// Send delivers one email. Returns ErrMailerNotConfigured when the mailer is
// disabled.
func (m *Mailer) Send(email Email) error {
	if !m.Enabled() {
		return apperrors.ErrMailerNotConfigured
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", email.To)
	msg.SetHeader("Subject", email.Subject)
	msg.SetBody("text/plain", email.TextBody)
	if email.HTMLBody != "" {
		msg.AddAlternative("text/html", email.HTMLBody)
	}
	for _, att := range email.Attachments {
		content := att.Content
		msg.Attach(att.Filename, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", email.To, err)
	}
	return nil
}
