package notify

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/wneessen/go-mail"
)

type Attachment struct {
	Filename string
	Content  []byte
}

type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Sender delivers one message.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPSender delivers through an SMTP relay with opportunistic STARTTLS.
type SMTPSender struct {
	Config SMTPConfig
}

func (s SMTPSender) client() (*mail.Client, error) {
	opts := []mail.Option{
		mail.WithPort(s.Config.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.Config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.Config.Username),
			mail.WithPassword(s.Config.Password),
		)
	}
	return mail.NewClient(s.Config.Host, opts...)
}

func (s SMTPSender) Send(ctx context.Context, msg Message) error {
	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("from address: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("to address: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)
	for _, a := range msg.Attachments {
		m.AttachReadSeeker(a.Filename, bytes.NewReader(a.Content))
	}

	c, err := s.client()
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	return c.DialAndSendWithContext(ctx, m)
}

// LogSender prints a summary instead of sending. Used when no SMTP host is
// configured.
type LogSender struct{}

func (LogSender) Send(_ context.Context, msg Message) error {
	logrus.WithFields(logrus.Fields{
		"to":          msg.To,
		"subject":     msg.Subject,
		"attachments": len(msg.Attachments),
		"html_bytes":  len(msg.HTML),
	}).Warn("mail transport not configured, mock email logged")
	return nil
}
