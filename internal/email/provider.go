package email

import (
	"jobportal_backend/internal/logger"
)

// Message is a plain-text notification email.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Provider sends notification emails.
type Provider interface {
	Send(msg Message) error
}

// LogProvider is the fallback used when SMTP is not configured; it only
// records the message so notifications never block a request.
type LogProvider struct{}

func (p *LogProvider) Send(msg Message) error {
	logger.Info("email notification (not sent, smtp unconfigured)",
		"to", msg.To, "subject", msg.Subject)
	return nil
}
