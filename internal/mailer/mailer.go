package mailer

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"text/template"

	gomail "gopkg.in/mail.v2"

	"github.com/folio-dev/portfolio-api/internal/config"
	"github.com/folio-dev/portfolio-api/internal/services"
)

//go:embed templates/*
var templates embed.FS

var contactTmpl = template.Must(template.ParseFS(templates, "templates/contact.txt"))

// Sender delivers a built message. *gomail.Dialer satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer forwards contact form messages to the site owner.
type SMTPMailer struct {
	sender Sender
	cfg    config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return NewWithSender(gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password), cfg)
}

func NewWithSender(sender Sender, cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{sender: sender, cfg: cfg}
}

func (m *SMTPMailer) SendContact(ctx context.Context, msg services.ContactMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	message, err := m.build(msg)
	if err != nil {
		return err
	}
	if err := m.sender.DialAndSend(message); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) build(msg services.ContactMessage) (*gomail.Message, error) {
	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, msg); err != nil {
		return nil, fmt.Errorf("failed to render contact email: %w", err)
	}

	from := m.cfg.FromAddress
	if from == "" {
		from = m.cfg.Username
	}

	message := gomail.NewMessage()
	message.SetAddressHeader("From", from, m.cfg.FromName)
	message.SetHeader("To", m.cfg.ToAddress)
	if msg.Email != "" {
		message.SetAddressHeader("Reply-To", msg.Email, msg.Name)
	}
	message.SetHeader("Subject", "[Portfolio] "+subjectOrDefault(msg.Subject))
	message.SetBody("text/plain", body.String())
	return message, nil
}

func subjectOrDefault(subject string) string {
	if subject == "" {
		return "New contact message"
	}
	return subject
}
