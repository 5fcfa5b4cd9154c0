package email

import (
	"context"
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail"

	"github.com/officemate/backend/pkg/slogx"
)

// SMTPSender delivers mail through a plain SMTP relay using go-mail.
type SMTPSender struct {
	Host string
	Port int
	From string
	User string
	Pass string

	// SSL forces implicit TLS (port 465 style). Left false, go-mail
	// negotiates STARTTLS when the server offers it.
	SSL bool
}

func NewSMTPSender(host string, port int, from, user, pass string) *SMTPSender {
	return &SMTPSender{
		Host: host,
		Port: port,
		From: from,
		User: user,
		Pass: pass,
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	log := slogx.FromContext(ctx)

	m := mail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	// multipart/alternative when both bodies are present
	if msg.TextBody != "" {
		m.SetBody("text/plain", msg.TextBody)
	}
	if msg.HTMLBody != "" {
		if msg.TextBody == "" {
			m.SetBody("text/html", msg.HTMLBody)
		} else {
			m.AddAlternative("text/html", msg.HTMLBody)
		}
	}

	d := mail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	d.SSL = s.SSL
	d.TLSConfig = &tls.Config{ServerName: s.Host}

	if err := d.DialAndSend(m); err != nil {
		log.Error("smtp send failed", "to", msg.To, "err", err)
		return fmt.Errorf("smtp send: %w", err)
	}

	log.Info("smtp send ok", "to", msg.To, "subject", msg.Subject)
	return nil
}
