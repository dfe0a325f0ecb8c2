// Package config resolves transport and addressing settings from the process
// environment.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11 behind a
// generic, cached Load helper: structs annotated with `env` tags are parsed
// once per type and served from an in-process cache afterwards. A warm Lambda
// container therefore pays the parsing cost once; because a deployed
// function's environment is immutable this reuse never changes observable
// results.
//
// Three transport configurations are defined:
//
//   - SMTP: direct delivery settings (SMTP_HOST, SMTP_PORT, SMTP_USER,
//     SMTP_PASSWORD, DESTINATION). Resolved by ResolveSMTP, which supports an
//     encrypted mode: with a secrets.Decryptor supplied, every environment
//     value is base64 ciphertext decrypted under an encryption context that
//     binds it to the deployed function.
//   - SES: managed-transport addressing (HELP_EMAIL_FROM, HELP_EMAIL_TO,
//     HELP_EMAIL_SUBJECT), all required.
//   - Postmark: hosted-transport credentials (POSTMARK_SERVER_TOKEN,
//     POSTMARK_ACCOUNT_TOKEN), both required; addressing reuses the
//     managed-transport variables.
//
// Configuration never depends on request data; resolution is idempotent for
// an unchanged environment.
package config
