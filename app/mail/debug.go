package mail

import (
	"context"
	"log/slog"

	"github.com/isabella232/www-teepy/app/contact"
)

var _ contact.Mailer = (*LogSender)(nil)

// LogSender stands in for Mandrill in development: messages are logged, never
// sent.
type LogSender struct{}

func NewLogSender() *LogSender {
	return &LogSender{}
}

func (s *LogSender) Send(ctx context.Context, msg contact.Message) error {
	slog.Info("Debug mode, email not sent",
		"to", msg.To,
		"subject", msg.Subject,
		"html", msg.HTML)
	return nil
}

// New returns the sender matching the run mode.
func New(debug bool, apiKey, fromEmail, fromName string) (contact.Mailer, error) {
	if debug {
		return NewLogSender(), nil
	}
	return NewMandrillSender(apiKey, fromEmail, fromName)
}
