// Package mailer sends the notification emails triggered by form intakes
// over a single pre-authenticated SMTP connection.
package mailer

import (
	"context"
	"fmt"
	"sync"
	"time"

	mail "github.com/wneessen/go-mail"

	"github.com/jeil-marcom/site_end/utils"
)

// Message is one outbound email.
type Message struct {
	From     string
	To       []string
	Subject  string
	HTMLBody string
}

// Sender dispatches a rendered email. A failure surfaces synchronously to
// the caller; there is no retry.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// SMTPConfig configures the mail relay connection.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	// Timeout bounds the connection, greeting and socket phases of a send.
	Timeout time.Duration
}

// SMTPMailer sends mail over one shared authenticated connection, opened
// and verified at startup and reused for the process lifetime. Sends are
// serialized on that connection; callers may still dispatch concurrently.
type SMTPMailer struct {
	client *mail.Client

	mu sync.Mutex
}

// NewSMTPMailer dials and verifies the relay connection.
func NewSMTPMailer(ctx context.Context, cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(cfg.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("create SMTP client: %w", err)
	}

	if err := client.DialWithContext(ctx); err != nil {
		return nil, fmt.Errorf("verify SMTP connection: %w", err)
	}

	utils.Logger.Info().
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Msg("SMTP transport ready")

	return &SMTPMailer{client: client}, nil
}

// Send dispatches msg over the shared connection.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := mail.NewMsg()
	if err := out.From(msg.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := out.To(msg.To...); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(mail.TypeTextHTML, msg.HTMLBody)

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.client.Send(out); err != nil {
		utils.Logger.Error().
			Err(err).
			Str("subject", msg.Subject).
			Int("recipients", len(msg.To)).
			Msg("email send failed")
		return err
	}

	utils.Logger.Info().
		Str("subject", msg.Subject).
		Int("recipients", len(msg.To)).
		Msg("email sent")
	return nil
}

// Close shuts down the relay connection.
func (m *SMTPMailer) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.client.Close()
}
