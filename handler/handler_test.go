package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/SchmidtDSE/montreal-protocol/handler"
	"github.com/SchmidtDSE/montreal-protocol/pkg/config"
	"github.com/SchmidtDSE/montreal-protocol/pkg/mailer"
	"github.com/SchmidtDSE/montreal-protocol/pkg/payload"
)

// mockSender is a mock implementation of mailer.Sender.
type mockSender struct {
	mock.Mock
}

func (m *mockSender) Send(ctx context.Context, msg mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func staticEnvelope() handler.EnvelopeResolver {
	return func(context.Context) (mailer.Envelope, error) {
		return mailer.Envelope{
			From:    "helpbot@example.com",
			To:      "support@example.com",
			Subject: "Help Request",
		}, nil
	}
}

func decodeMessageField(t *testing.T, body string) string {
	t.Helper()
	var decoded struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &decoded))
	return decoded.Message
}

func TestHandleRequest_Success(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.MatchedBy(func(msg mailer.Message) bool {
		return msg.From == "helpbot@example.com" &&
			msg.To == "support@example.com" &&
			msg.Subject == "Help Request"
	})).Return(nil)

	h := handler.New(sender, staticEnvelope())
	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		Body: `{"email":"u@x.com","description":"broke","simulation":"sim123"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.JSONEq(t, `{"message":"Success"}`, resp.Body)
	sender.AssertExpectations(t)
}

func TestHandleRequest_ComposedBodyContainsSubmission(t *testing.T) {
	t.Parallel()

	var sent mailer.Message
	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		sent = args.Get(1).(mailer.Message)
	}).Return(nil)

	h := handler.New(sender, staticEnvelope())
	_, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		Body: `{"email":"u@x.com","description":"broke","simulation":"sim123"}`,
	})
	require.NoError(t, err)

	assert.Contains(t, sent.Body, "User email: u@x.com")
	assert.Contains(t, sent.Body, "broke")
	assert.Contains(t, sent.Body, "sim123")
}

func TestHandleRequest_EmptyBody(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	h := handler.New(sender, staticEnvelope())

	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{Body: "{}"})
	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	assert.Contains(t, decodeMessageField(t, resp.Body), "email")

	// No transport call is attempted for an invalid submission.
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandleRequest_TransportFailure(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).
		Return(errors.Join(mailer.ErrSendFailed, errors.New("connection refused")))

	h := handler.New(sender, staticEnvelope())
	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		Body: `{"email":"u@x.com","description":"broke","simulation":"sim123"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	msg := decodeMessageField(t, resp.Body)
	assert.Contains(t, msg, "Error sending email:")
	assert.Contains(t, msg, "connection refused")
}

func TestHandleRequest_ResolverFailure(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	failing := func(context.Context) (mailer.Envelope, error) {
		return mailer.Envelope{}, errors.New("HELP_EMAIL_TO is not set")
	}

	h := handler.New(sender, failing)
	resp, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		Body: `{"email":"u@x.com","description":"broke","simulation":"sim123"}`,
	})

	require.NoError(t, err)
	assert.Equal(t, 500, resp.StatusCode)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandleRequest_ErrorPropagation(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	h := handler.New(sender, staticEnvelope(), handler.WithErrorPropagation())

	_, err := h.HandleRequest(context.Background(), events.APIGatewayProxyRequest{Body: "{}"})
	require.ErrorIs(t, err, payload.ErrMissingField)
	sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestHandleRequest_CORSHeader(t *testing.T) {
	t.Parallel()

	sender := new(mockSender)
	sender.On("Send", mock.Anything, mock.Anything).Return(nil)

	withCORS := handler.New(sender, staticEnvelope(), handler.WithCORS())
	resp, err := withCORS.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		Body: `{"email":"u@x.com","description":"broke","simulation":"sim123"}`,
	})
	require.NoError(t, err)
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])

	withoutCORS := handler.New(sender, staticEnvelope())
	resp, err = withoutCORS.HandleRequest(context.Background(), events.APIGatewayProxyRequest{
		Body: `{"email":"u@x.com","description":"broke","simulation":"sim123"}`,
	})
	require.NoError(t, err)
	assert.NotContains(t, resp.Headers, "Access-Control-Allow-Origin")
}

func TestSESEnvelope_MatchesEnvironment(t *testing.T) {
	config.ResetCache()
	t.Setenv("HELP_EMAIL_FROM", "helpbot@example.com")
	t.Setenv("HELP_EMAIL_TO", "support@example.com")
	t.Setenv("HELP_EMAIL_SUBJECT", "Kigali Sim Help Request")

	env, err := handler.SESEnvelope()(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "helpbot@example.com", env.From)
	assert.Equal(t, "support@example.com", env.To)
	assert.Equal(t, "Kigali Sim Help Request", env.Subject)
}

func TestSMTPEnvelope(t *testing.T) {
	t.Parallel()

	cfg := config.SMTP{
		Host:      "smtp.gmail.com",
		Port:      587,
		Username:  "relay@example.com",
		Password:  "hunter2",
		Recipient: "oncall@example.org",
	}

	env, err := handler.SMTPEnvelope(cfg)(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "relay@example.com", env.From)
	assert.Equal(t, "oncall@example.org", env.To)
	assert.Equal(t, config.DefaultSubject, env.Subject)
}
