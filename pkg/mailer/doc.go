// Package mailer composes and delivers help-request emails.
//
// The package is built around the Sender interface so transports can be
// swapped without touching the pipeline. Four implementations are provided:
//
//   - SMTPSender: direct SMTP delivery with opportunistic STARTTLS and
//     PLAIN authentication (wneessen/go-mail). The connection is scoped to a
//     single Send call.
//   - SESSender: one synchronous call to the managed send-email API.
//   - PostmarkSender: alternative managed transport via Postmark.
//   - DevSender: writes messages to disk for local development.
//
// Compose renders the fixed help-request body from a submission. The
// template has exactly three placeholders (email, description, simulation);
// submitted text is inserted verbatim with no escaping or re-interpretation.
// Envelope addressing comes from configuration alone, so the composer is the
// only place payload and configuration meet.
//
// Every sender makes a single delivery attempt: no retry, no backoff, one
// recipient, plaintext body only.
package mailer
