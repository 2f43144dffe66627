// Package email delivers transactional mail: SendGrid in production,
// the application log when no API key is configured.
package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	defaultHost = "https://api.sendgrid.com"
	endpoint    = "/v3/mail/send"
)

// Message is a single outgoing email.
type Message struct {
	ToAddress string
	ToName    string
	Subject   string
	Text      string
	HTML      string
}

// SendGrid sends mail through the SendGrid v3 API.
type SendGrid struct {
	key  string
	host string
	from *sgmail.Email
	log  *slog.Logger
}

// NewSendGrid creates a SendGrid sender. An empty host uses the public API.
func NewSendGrid(key, host, fromName, fromAddress string, logger *slog.Logger) *SendGrid {
	if host == "" {
		host = defaultHost
	}
	return &SendGrid{
		key:  key,
		host: host,
		from: sgmail.NewEmail(fromName, fromAddress),
		log:  logger.With("adapter", "sendgrid"),
	}
}

// Send delivers msg synchronously.
func (s *SendGrid) Send(ctx context.Context, msg Message) error {
	p := sgmail.NewPersonalization()
	p.Subject = msg.Subject
	p.AddTos(sgmail.NewEmail(msg.ToName, msg.ToAddress))

	m := sgmail.NewV3Mail()
	m.SetFrom(s.from)
	m.AddPersonalizations(p)
	m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	if msg.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}

	req := sendgrid.GetRequest(s.key, endpoint, s.host)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.MakeRequestWithContext(ctx, req)
	if err != nil {
		return fmt.Errorf("sendgrid: send: %w", err)
	}
	if res.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sendgrid: send: status %d: %s", res.StatusCode, res.Body)
	}

	s.log.InfoContext(ctx, "email sent", slog.String("subject", msg.Subject), slog.Int("status", res.StatusCode))
	return nil
}

// LogMailer writes messages to the log instead of sending them.
type LogMailer struct {
	log *slog.Logger
}

// NewLogMailer creates a LogMailer.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{log: logger.With("adapter", "logmailer")}
}

// Send logs msg.
func (l *LogMailer) Send(ctx context.Context, msg Message) error {
	l.log.InfoContext(ctx, "email not sent (no provider configured)",
		slog.String("to", msg.ToAddress),
		slog.String("subject", msg.Subject),
		slog.String("text", msg.Text),
	)
	return nil
}
