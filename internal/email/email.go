// Package email composes and sends transactional mail for orders.
package email

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
)

// Email represents an email message to be sent.
type Email struct {
	To       []string          // Recipient email addresses
	From     string            // Sender; the sender's default is used when empty
	Subject  string            // Email subject
	TextBody string            // Plain text body
	HTMLBody string            // HTML body (optional)
	Headers  map[string]string // Custom headers (optional)
}

// Sender delivers a composed message.
// Implementations use SMTP or the Postmark API.
type Sender interface {
	// Send sends an email message.
	// Returns the message ID from the email provider (if available).
	Send(ctx context.Context, email *Email) (string, error)
}

// LogSender logs messages instead of sending them. Used in development when
// no mail provider is configured.
type LogSender struct {
	logger *slog.Logger

	mu   sync.Mutex
	sent []*Email
}

var _ Sender = (*LogSender)(nil)

// NewLogSender creates a sender that only logs.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send implements Sender.
func (s *LogSender) Send(ctx context.Context, email *Email) (string, error) {
	if len(email.To) == 0 {
		return "", ErrInvalidToAddress
	}

	s.mu.Lock()
	s.sent = append(s.sent, email)
	n := len(s.sent)
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "email: not sent, no provider configured",
		"to", email.To,
		"subject", email.Subject,
	)
	return "log-" + strconv.Itoa(n), nil
}

// Sent returns the messages recorded so far.
func (s *LogSender) Sent() []*Email {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*Email, len(s.sent))
	copy(out, s.sent)
	return out
}
