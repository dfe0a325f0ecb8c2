package payload

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Payload is a single help-form submission. All three fields are required;
// none of them is validated beyond presence, the support team wants to see
// whatever the user typed.
type Payload struct {
	Email       string `json:"email"`
	Description string `json:"description"`
	Simulation  string `json:"simulation"`
}

// Parse decodes a raw request body into a Payload. An absent body is treated
// as an empty JSON object, which then fails validation rather than producing
// placeholder values. Unknown keys are ignored.
func Parse(body string) (Payload, error) {
	if strings.TrimSpace(body) == "" {
		body = "{}"
	}

	var p Payload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidBody, err)
	}

	if err := p.Validate(); err != nil {
		return Payload{}, err
	}
	return p, nil
}

// Validate checks that every required field is present and non-empty.
// It reports the first missing field by name so the front end can surface
// a usable message.
func (p Payload) Validate() error {
	switch {
	case strings.TrimSpace(p.Email) == "":
		return fmt.Errorf("%w: email", ErrMissingField)
	case strings.TrimSpace(p.Description) == "":
		return fmt.Errorf("%w: description", ErrMissingField)
	case strings.TrimSpace(p.Simulation) == "":
		return fmt.Errorf("%w: simulation", ErrMissingField)
	}
	return nil
}
