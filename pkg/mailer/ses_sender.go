package mailer

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESClient is the subset of the SES API the sender needs.
type SESClient interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// SESSender delivers messages through the managed send-email API. The
// service authenticates via the ambient execution role; a non-success
// acknowledgment surfaces as the call error.
type SESSender struct {
	client SESClient
}

// NewSESSender creates a managed-API sender over the given client.
func NewSESSender(client SESClient) *SESSender {
	return &SESSender{client: client}
}

// Send issues one synchronous SendEmail call with a single recipient and a
// plaintext body. No retry, no backoff.
func (s *SESSender) Send(ctx context.Context, msg Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}

	_, err := s.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(msg.From),
		Destination: &types.Destination{
			ToAddresses: []string{msg.To},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(msg.Subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(msg.Body)},
			},
		},
	})
	if err != nil {
		return errors.Join(ErrSendFailed, err)
	}
	return nil
}
