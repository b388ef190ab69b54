// Package mailer delivers notification emails through Resend, SMTP or
// nowhere at all.
package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/Simplici0/studio/internal/config"
)

// Attachment is a file attached to a message.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Message is a rendered email ready for delivery.
type Message struct {
	From        string
	To          []string
	ReplyTo     string
	Subject     string
	HTML        string
	Text        string
	Attachments []Attachment
}

func (m Message) validate() error {
	if m.From == "" {
		return errors.New("message has no sender")
	}
	if len(m.To) == 0 {
		return errors.New("message has no recipients")
	}
	if m.HTML == "" && m.Text == "" {
		return errors.New("message has no body")
	}
	return nil
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// NoopSender drops every message.
type NoopSender struct{}

func (NoopSender) Send(ctx context.Context, msg Message) error {
	return nil
}

// NewSender returns the transport selected by cfg.Driver.
func NewSender(cfg config.MailConfig) (Sender, error) {
	switch cfg.Driver {
	case config.MailResend:
		return NewResendSender(cfg.ResendAPIKey), nil
	case config.MailSMTP:
		return NewSMTPSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword), nil
	case config.MailNoop, "":
		return NoopSender{}, nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
	}
}
