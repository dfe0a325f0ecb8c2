package payload

import "errors"

var (
	// ErrInvalidBody is returned when the request body is not valid JSON.
	ErrInvalidBody = errors.New("invalid request body")

	// ErrMissingField is returned when a required submission field is absent or empty.
	ErrMissingField = errors.New("missing required field")
)
