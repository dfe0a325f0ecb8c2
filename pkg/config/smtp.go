package config

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SchmidtDSE/montreal-protocol/pkg/secrets"
)

// DefaultRecipient is the support inbox help requests are relayed to when no
// DESTINATION override is configured.
const DefaultRecipient = "hello@mlf-policy-explorer.org"

// DefaultSubject is the subject line used for direct SMTP deliveries.
const DefaultSubject = "Montreal Policy Simulator Help Request"

// SMTP holds direct-delivery transport settings. Host and port fall back to
// well-known public defaults; credentials are always required.
type SMTP struct {
	Host      string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	Port      int    `env:"SMTP_PORT" envDefault:"587"`
	Username  string `env:"SMTP_USER,required"`
	Password  string `env:"SMTP_PASSWORD,required"`
	Recipient string `env:"DESTINATION"`
}

// encryptedSMTP mirrors SMTP with every value held as base64-encoded
// ciphertext. No fallback defaults: an encrypted deployment must provision
// every variable explicitly.
type encryptedSMTP struct {
	Host      string `env:"SMTP_HOST,required"`
	Port      string `env:"SMTP_PORT,required"`
	Username  string `env:"SMTP_USER,required"`
	Password  string `env:"SMTP_PASSWORD,required"`
	Recipient string `env:"DESTINATION,required"`
}

// ResolveSMTP resolves SMTP transport settings from the environment.
//
// With a nil decryptor the environment values are used as-is and the relaxed
// policy applies: host/port fall back to defaults and the recipient falls back
// to DefaultRecipient. With a decryptor every environment value is treated as
// ciphertext and decrypted under the supplied encryption context before use,
// and every variable is required. The encryption context binds each ciphertext
// to the deployed function identity, so a blob lifted from one function cannot
// be replayed by another.
func ResolveSMTP(ctx context.Context, dec secrets.Decryptor, encCtx map[string]string) (SMTP, error) {
	if dec == nil {
		var cfg SMTP
		if err := Load(&cfg); err != nil {
			return SMTP{}, err
		}
		if cfg.Recipient == "" {
			cfg.Recipient = DefaultRecipient
		}
		return cfg, nil
	}

	var raw encryptedSMTP
	if err := Load(&raw); err != nil {
		return SMTP{}, err
	}

	var cfg SMTP
	var port string
	for _, f := range []struct {
		name       string
		ciphertext string
		dst        *string
	}{
		{"SMTP_HOST", raw.Host, &cfg.Host},
		{"SMTP_PORT", raw.Port, &port},
		{"SMTP_USER", raw.Username, &cfg.Username},
		{"SMTP_PASSWORD", raw.Password, &cfg.Password},
		{"DESTINATION", raw.Recipient, &cfg.Recipient},
	} {
		plaintext, err := dec.Decrypt(ctx, f.ciphertext, encCtx)
		if err != nil {
			return SMTP{}, fmt.Errorf("decrypting %s: %w", f.name, err)
		}
		*f.dst = plaintext
	}

	p, err := strconv.Atoi(port)
	if err != nil {
		return SMTP{}, fmt.Errorf("%w: %q", ErrInvalidPort, port)
	}
	cfg.Port = p

	return cfg, nil
}
