package mailer

import (
	"context"
	"fmt"
	"strings"
)

// Sender delivers one composed message. Implementations make a single
// delivery attempt; any failure surfaces to the caller without retry.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Envelope carries the addressing resolved from configuration. It never
// depends on the submitted payload.
type Envelope struct {
	From    string
	To      string
	Subject string
}

// Message is a ready-to-send mail: envelope plus rendered plaintext body.
// Single recipient, no attachments, no HTML.
type Message struct {
	From    string
	To      string
	Subject string
	Body    string
}

// NewMessage combines a resolved envelope with a rendered body.
func NewMessage(env Envelope, body string) Message {
	return Message{
		From:    env.From,
		To:      env.To,
		Subject: env.Subject,
		Body:    body,
	}
}

// Validate checks the fields every transport needs before dialing out.
func (m Message) Validate() error {
	switch {
	case strings.TrimSpace(m.From) == "":
		return fmt.Errorf("%w: From is required", ErrInvalidMessage)
	case strings.TrimSpace(m.To) == "":
		return fmt.Errorf("%w: To is required", ErrInvalidMessage)
	case m.Body == "":
		return fmt.Errorf("%w: Body is required", ErrInvalidMessage)
	}
	return nil
}
