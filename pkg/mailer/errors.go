package mailer

import "errors"

var (
	// ErrInvalidConfig is returned when a sender is constructed with incomplete configuration.
	ErrInvalidConfig = errors.New("mailer: invalid config")

	// ErrInvalidMessage is returned when a message is missing required fields.
	ErrInvalidMessage = errors.New("mailer: invalid message")

	// ErrComposeFailed is returned when the body template cannot be rendered.
	ErrComposeFailed = errors.New("mailer: failed to compose message")

	// ErrSendFailed is returned when a transport fails to deliver a message.
	ErrSendFailed = errors.New("mailer: failed to send message")
)
