// Package logger is a small factory over log/slog.
//
// Defaults target the Lambda runtime: JSON records at info level on stdout.
// The dev harness switches to text format for readability. Options cover
// level, format, output destination, and static attributes attached to every
// record.
package logger
