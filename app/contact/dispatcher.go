package contact

import (
	"context"
	"log/slog"
	"net/url"
	"time"
)

type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

type Recorder interface {
	Append(ctx context.Context, row []string) error
}

// Redirects are the locations a browser is sent to once a submission has
// been handled.
type Redirects struct {
	Contact    string
	Newsletter string
	Whitepaper string
}

func DefaultRedirects(whitepaperPath string) Redirects {
	return Redirects{
		Contact:    "/contact_confirmation",
		Newsletter: "/newsletter_confirmation",
		Whitepaper: whitepaperPath,
	}
}

type Dispatcher struct {
	mailer    Mailer
	recorder  Recorder
	routing   Routing
	redirects Redirects
	timeout   time.Duration
	now       func() time.Time
}

// NewDispatcher wires the integrations. recorder may be nil when no
// spreadsheet is configured.
func NewDispatcher(mailer Mailer, recorder Recorder, routing Routing, redirects Redirects, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		mailer:    mailer,
		recorder:  recorder,
		routing:   routing,
		redirects: redirects,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Dispatch handles one form post and returns the redirect location. The only
// error it returns wraps ErrUnknownKind; integration failures are logged.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, fields url.Values) (string, error) {
	if IsBot(fields) {
		slog.Info("Honeypot field filled, submission ignored", "kind", name)
		return d.redirects.Contact, nil
	}

	kind, err := ParseKind(name)
	if err != nil {
		return "", err
	}

	submission := NewSubmission(kind, fields)

	d.deliver(ctx, submission)
	d.record(ctx, submission)

	return d.redirectFor(kind), nil
}

func (d *Dispatcher) deliver(ctx context.Context, submission Submission) {
	msg := submission.Outbound(d.routing)

	sendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.mailer.Send(sendCtx, msg); err != nil {
		slog.Error("Failed to send contact email",
			"ref", submission.Ref,
			"kind", submission.Kind,
			"recipient", msg.To,
			"error", err)
		return
	}

	slog.Info("Contact email sent", "ref", submission.Ref, "kind", submission.Kind, "recipient", msg.To)
}

func (d *Dispatcher) record(ctx context.Context, submission Submission) {
	if d.recorder == nil {
		slog.Debug("No spreadsheet configured, submission not recorded", "ref", submission.Ref)
		return
	}

	appendCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	if err := d.recorder.Append(appendCtx, submission.Row(d.now())); err != nil {
		slog.Error("Failed to record submission", "ref", submission.Ref, "kind", submission.Kind, "error", err)
		return
	}

	slog.Debug("Submission recorded", "ref", submission.Ref, "kind", submission.Kind)
}

func (d *Dispatcher) redirectFor(kind Kind) string {
	switch kind {
	case KindWhitepaper:
		return d.redirects.Whitepaper
	case KindNewsletter:
		return d.redirects.Newsletter
	default:
		return d.redirects.Contact
	}
}
