package mail

import (
	"context"
	"fmt"

	"github.com/mattbaird/gochimp"

	"github.com/isabella232/www-teepy/app/contact"
)

var _ contact.Mailer = (*MandrillSender)(nil)

// messageSender is the part of the Mandrill client the sender relies on.
type messageSender interface {
	MessageSend(message gochimp.Message, async bool) ([]gochimp.SendResponse, error)
}

type MandrillSender struct {
	client    messageSender
	fromEmail string
	fromName  string
}

func NewMandrillSender(apiKey, fromEmail, fromName string) (*MandrillSender, error) {
	client, err := gochimp.NewMandrill(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to create Mandrill client: %w", err)
	}

	return &MandrillSender{
		client:    client,
		fromEmail: fromEmail,
		fromName:  fromName,
	}, nil
}

type sendResult struct {
	responses []gochimp.SendResponse
	err       error
}

// Send delivers msg once. The Mandrill client has no context support, so the
// call runs in its own goroutine and Send returns when ctx expires.
func (s *MandrillSender) Send(ctx context.Context, msg contact.Message) error {
	message := gochimp.Message{
		Html:      msg.HTML,
		Subject:   msg.Subject,
		FromEmail: s.fromEmail,
		FromName:  s.fromName,
		To:        []gochimp.Recipient{{Email: msg.To}},
	}

	done := make(chan sendResult, 1)
	go func() {
		responses, err := s.client.MessageSend(message, false)
		done <- sendResult{responses: responses, err: err}
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("mandrill send aborted: %w", ctx.Err())
	case result := <-done:
		if result.err != nil {
			return fmt.Errorf("mandrill send failed: %w", result.err)
		}
		return checkResponses(result.responses)
	}
}

func checkResponses(responses []gochimp.SendResponse) error {
	for _, response := range responses {
		switch response.Status {
		case "rejected", "invalid":
			return fmt.Errorf("mandrill %s message to %s", response.Status, response.Email)
		}
	}
	return nil
}
