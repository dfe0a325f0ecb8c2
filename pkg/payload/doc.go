// Package payload decodes help-form submissions into a typed Payload.
//
// A submission carries three free-text fields: the user's reply address,
// a description of the issue, and the simulation code the user was running.
// Decoding is strict: all three fields must be present and non-empty, and a
// missing field fails with an error naming it. No format validation, size
// limits, or sanitization is applied beyond that; downstream composition
// treats the values as opaque text.
//
// # Usage
//
//	p, err := payload.Parse(request.Body)
//	if errors.Is(err, payload.ErrMissingField) {
//	    // reject the submission with a descriptive message
//	}
package payload
