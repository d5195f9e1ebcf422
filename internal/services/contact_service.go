package services

import (
	"context"
	"log/slog"

	"github.com/folio-dev/portfolio-api/internal/logging"
)

// ContactThanks is the acknowledgement returned for every accepted message.
const ContactThanks = "Thank you for your message! I'll get back to you soon."

// ContactMessage is a message left through the contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// Mailer delivers contact messages to the site owner.
type Mailer interface {
	SendContact(ctx context.Context, msg ContactMessage) error
}

// ContactService records contact messages. Messages are logged and, when a
// mailer is configured, forwarded; they are not stored.
type ContactService struct {
	mailer Mailer
}

// NewContactService accepts a nil mailer.
func NewContactService(mailer Mailer) *ContactService {
	return &ContactService{mailer: mailer}
}

// Submit accepts msg and returns the acknowledgement text. Forwarding failures
// are reported but do not reject the message.
func (s *ContactService) Submit(ctx context.Context, msg ContactMessage) (string, error) {
	slog.Info("contact form submission",
		"name", msg.Name,
		"email", msg.Email,
		"subject", msg.Subject,
		"message", msg.Message,
	)

	if s.mailer != nil {
		if err := s.mailer.SendContact(ctx, msg); err != nil {
			logging.Report(err, "error forwarding contact message", map[string]string{"email": msg.Email})
		}
	}
	return ContactThanks, nil
}
