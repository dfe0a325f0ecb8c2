package mailer

import (
	"context"
	"errors"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/SchmidtDSE/montreal-protocol/pkg/config"
)

// SMTPSender delivers messages over a direct SMTP session: opportunistic
// STARTTLS upgrade on the plaintext connection, then PLAIN authentication.
// The connection lives for exactly one Send call and is released on every
// exit path, including failed auth or transmission.
type SMTPSender struct {
	cfg config.SMTP
}

// NewSMTPSender creates a direct SMTP sender from resolved configuration.
func NewSMTPSender(cfg config.SMTP) (*SMTPSender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: Host is required", ErrInvalidConfig)
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("%w: SMTP credentials are required", ErrInvalidConfig)
	}
	return &SMTPSender{cfg: cfg}, nil
}

// Send transmits the message in a single dial-auth-send-quit session.
func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	m := gomail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return fmt.Errorf("%w: invalid From address: %v", ErrInvalidMessage, err)
	}
	if err := m.To(msg.To); err != nil {
		return fmt.Errorf("%w: invalid To address: %v", ErrInvalidMessage, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	client, err := gomail.NewClient(s.cfg.Host,
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.cfg.Username),
		gomail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	// DialAndSendWithContext closes the session on both success and failure.
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
