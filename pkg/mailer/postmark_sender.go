package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/mrz1836/postmark"
)

// PostmarkClient is the subset of the Postmark API the sender needs.
type PostmarkClient interface {
	SendEmail(ctx context.Context, email postmark.Email) (postmark.EmailResponse, error)
}

// PostmarkSender delivers messages through Postmark's transactional API.
// An alternative managed transport for deployments without SES access;
// plaintext only, same single-attempt contract as the other senders.
type PostmarkSender struct {
	client PostmarkClient
}

// NewPostmarkSender creates a Postmark-backed sender over the given client.
func NewPostmarkSender(client PostmarkClient) *PostmarkSender {
	return &PostmarkSender{client: client}
}

// Send issues one send call and fails on a non-zero provider error code.
func (p *PostmarkSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	resp, err := p.client.SendEmail(ctx, postmark.Email{
		From:     msg.From,
		To:       msg.To,
		ReplyTo:  msg.From,
		Subject:  msg.Subject,
		TextBody: msg.Body,
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	if resp.ErrorCode > 0 {
		return errors.Join(ErrSendFailed, fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message))
	}
	return nil
}
