package email

import (
	"context"

	"github.com/officemate/backend/pkg/slogx"
)

// LogSender writes mail to the log instead of the network. Used in dev and
// tests when no SMTP relay is configured.
type LogSender struct{}

func (LogSender) Send(ctx context.Context, msg Message) error {
	slogx.FromContext(ctx).Info("email (log sender, not delivered)",
		"to", msg.To,
		"subject", msg.Subject,
		"text_body", msg.TextBody,
	)
	return nil
}
