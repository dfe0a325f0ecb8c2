package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/kms"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/mrz1836/postmark"

	"github.com/SchmidtDSE/montreal-protocol/handler"
	"github.com/SchmidtDSE/montreal-protocol/pkg/config"
	"github.com/SchmidtDSE/montreal-protocol/pkg/logger"
	"github.com/SchmidtDSE/montreal-protocol/pkg/mailer"
	"github.com/SchmidtDSE/montreal-protocol/pkg/secrets"
)

// relayConfig selects how the relay is wired at startup. Transport values:
// "ses" (managed API, default), "smtp" (direct delivery, plaintext env),
// "smtp-kms" (direct delivery, KMS-encrypted env), "postmark" (hosted
// transactional API, token env).
type relayConfig struct {
	Transport    string `env:"HELP_RELAY_TRANSPORT" envDefault:"ses"`
	CORS         bool   `env:"HELP_RELAY_CORS" envDefault:"false"`
	Propagate    bool   `env:"HELP_RELAY_PROPAGATE_ERRORS" envDefault:"false"`
	FunctionName string `env:"AWS_LAMBDA_FUNCTION_NAME"`
}

func buildHandler(ctx context.Context, log *slog.Logger) (*handler.Handler, error) {
	var rc relayConfig
	if err := config.Load(&rc); err != nil {
		return nil, err
	}

	opts := []handler.Option{handler.WithLogger(log)}
	if rc.CORS {
		opts = append(opts, handler.WithCORS())
	}
	if rc.Propagate {
		opts = append(opts, handler.WithErrorPropagation())
	}

	switch rc.Transport {
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		sender := mailer.NewSESSender(ses.NewFromConfig(awsCfg))
		return handler.New(sender, handler.SESEnvelope(), opts...), nil

	case "smtp":
		smtpCfg, err := config.ResolveSMTP(ctx, nil, nil)
		if err != nil {
			return nil, err
		}
		sender, err := mailer.NewSMTPSender(smtpCfg)
		if err != nil {
			return nil, err
		}
		return handler.New(sender, handler.SMTPEnvelope(smtpCfg), opts...), nil

	case "smtp-kms":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("loading AWS config: %w", err)
		}
		dec := secrets.NewKMS(kms.NewFromConfig(awsCfg))
		encCtx := map[string]string{"LambdaFunctionName": rc.FunctionName}
		smtpCfg, err := config.ResolveSMTP(ctx, dec, encCtx)
		if err != nil {
			return nil, err
		}
		sender, err := mailer.NewSMTPSender(smtpCfg)
		if err != nil {
			return nil, err
		}
		return handler.New(sender, handler.SMTPEnvelope(smtpCfg), opts...), nil

	case "postmark":
		pmCfg, err := config.ResolvePostmark()
		if err != nil {
			return nil, err
		}
		sender := mailer.NewPostmarkSender(postmark.NewClient(pmCfg.ServerToken, pmCfg.AccountToken))
		return handler.New(sender, handler.SESEnvelope(), opts...), nil

	default:
		return nil, fmt.Errorf("unknown transport %q", rc.Transport)
	}
}

func main() {
	log := logger.New(logger.WithAttr(slog.String("service", "helprelay")))

	h, err := buildHandler(context.Background(), log)
	if err != nil {
		log.Error("failed to initialize relay", slog.String("error", err.Error()))
		os.Exit(1)
	}

	lambda.Start(h.HandleRequest)
}
