// Package email delivers outbound mail. It is a thin I/O wrapper; retry and
// templating live with the callers.
package email

import "context"

// Message is a fully rendered outbound email.
type Message struct {
	To       string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender delivers a message to one recipient.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
