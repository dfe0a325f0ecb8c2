package handler

import (
	"context"
	"log/slog"

	"github.com/aws/aws-lambda-go/events"

	"github.com/SchmidtDSE/montreal-protocol/pkg/config"
	"github.com/SchmidtDSE/montreal-protocol/pkg/mailer"
	"github.com/SchmidtDSE/montreal-protocol/pkg/payload"
)

// EnvelopeResolver produces the From/To/Subject addressing for one
// invocation. It reads configuration only, never the request.
type EnvelopeResolver func(ctx context.Context) (mailer.Envelope, error)

// Handler relays one help-form submission per invocation: decode the body,
// resolve addressing, compose the message, hand it to the transport, and
// translate the outcome into an API Gateway response. All resolved values
// are invocation-local; nothing is shared across invocations.
type Handler struct {
	sender    mailer.Sender
	resolve   EnvelopeResolver
	log       *slog.Logger
	cors      bool
	propagate bool
}

// New creates a Handler around a transport and an envelope resolver.
func New(sender mailer.Sender, resolve EnvelopeResolver, opts ...Option) *Handler {
	h := &Handler{
		sender:  sender,
		resolve: resolve,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// HandleRequest is the Lambda entrypoint. Failures from any stage are caught
// once here and rendered as a 500 response; with error propagation enabled
// they are returned to the runtime instead, which produces its own platform
// error response.
func (h *Handler) HandleRequest(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if err := h.relay(ctx, req.Body); err != nil {
		h.log.ErrorContext(ctx, "help request failed", slog.String("error", err.Error()))
		if h.propagate {
			return events.APIGatewayProxyResponse{}, err
		}
		return h.jsonResponse(500, "Error sending email: "+err.Error()), nil
	}

	h.log.InfoContext(ctx, "help request relayed")
	return h.jsonResponse(200, "Success"), nil
}

// relay runs the pipeline stages in order. A failed stage stops the chain:
// nothing is ever partially sent.
func (h *Handler) relay(ctx context.Context, body string) error {
	p, err := payload.Parse(body)
	if err != nil {
		return err
	}

	env, err := h.resolve(ctx)
	if err != nil {
		return err
	}

	rendered, err := mailer.Compose(p)
	if err != nil {
		return err
	}

	return h.sender.Send(ctx, mailer.NewMessage(env, rendered))
}

// SMTPEnvelope returns a resolver deriving addressing from direct SMTP
// settings: the authenticated account is the sender identity and the
// configured recipient receives the report.
func SMTPEnvelope(cfg config.SMTP) EnvelopeResolver {
	return func(context.Context) (mailer.Envelope, error) {
		return mailer.Envelope{
			From:    cfg.Username,
			To:      cfg.Recipient,
			Subject: config.DefaultSubject,
		}, nil
	}
}

// SESEnvelope returns a resolver reading managed-transport addressing from
// the environment on each invocation.
func SESEnvelope() EnvelopeResolver {
	return func(context.Context) (mailer.Envelope, error) {
		cfg, err := config.ResolveSES()
		if err != nil {
			return mailer.Envelope{}, err
		}
		return mailer.Envelope{
			From:    cfg.From,
			To:      cfg.To,
			Subject: cfg.Subject,
		}, nil
	}
}
