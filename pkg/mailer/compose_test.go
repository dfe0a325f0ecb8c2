package mailer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SchmidtDSE/montreal-protocol/pkg/mailer"
	"github.com/SchmidtDSE/montreal-protocol/pkg/payload"
)

func TestCompose_VerbatimSubstitution(t *testing.T) {
	t.Parallel()

	p := payload.Payload{
		Email:       "u@x.com",
		Description: "the chart rendered upside down",
		Simulation:  "start default\n  set year 2030\nend default",
	}

	body, err := mailer.Compose(p)
	require.NoError(t, err)

	assert.Contains(t, body, "User email: u@x.com")
	assert.Contains(t, body, "Description of issue:\nthe chart rendered upside down")
	assert.Contains(t, body, p.Simulation)

	// Surrounding template text is unchanged.
	assert.Contains(t, body, "A user has submitted a help request from Kigali Sim.")
	assert.Contains(t, body, "Thanks,\nHelpBot")
	assert.Contains(t, body, "----------------------------------------\nSimulation code:\n----------------------------------------")
}

func TestCompose_DoesNotReinterpretUserText(t *testing.T) {
	t.Parallel()

	p := payload.Payload{
		Email:       "a@b.com",
		Description: "my code contains {{.Simulation}} and {email} markers",
		Simulation:  "{{ broken template syntax",
	}

	body, err := mailer.Compose(p)
	require.NoError(t, err)
	assert.Contains(t, body, "my code contains {{.Simulation}} and {email} markers")
	assert.Contains(t, body, "{{ broken template syntax")
}

func TestCompose_ExactlyThreeSubstitutions(t *testing.T) {
	t.Parallel()

	marker := "XMARKERX"
	p := payload.Payload{Email: marker, Description: marker, Simulation: marker}

	body, err := mailer.Compose(p)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(body, marker))
}

func TestNewMessage(t *testing.T) {
	t.Parallel()

	env := mailer.Envelope{From: "helpbot@example.com", To: "support@example.com", Subject: "Help Request"}
	msg := mailer.NewMessage(env, "body text")

	assert.Equal(t, "helpbot@example.com", msg.From)
	assert.Equal(t, "support@example.com", msg.To)
	assert.Equal(t, "Help Request", msg.Subject)
	assert.Equal(t, "body text", msg.Body)
}

func TestMessage_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		msg     mailer.Message
		wantErr bool
	}{
		{"valid", mailer.Message{From: "a@b.com", To: "c@d.com", Subject: "s", Body: "b"}, false},
		{"empty subject allowed", mailer.Message{From: "a@b.com", To: "c@d.com", Body: "b"}, false},
		{"missing from", mailer.Message{To: "c@d.com", Body: "b"}, true},
		{"missing to", mailer.Message{From: "a@b.com", Body: "b"}, true},
		{"missing body", mailer.Message{From: "a@b.com", To: "c@d.com"}, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.msg.Validate()
			if tt.wantErr {
				require.ErrorIs(t, err, mailer.ErrInvalidMessage)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
