package mailer

import (
	"errors"
	"strings"
	"text/template"

	"github.com/SchmidtDSE/montreal-protocol/pkg/payload"
)

// bodyTemplate is the fixed help-request body. Exactly three placeholders
// are ever substituted; the submitted text is inserted verbatim and never
// re-interpreted, even if it happens to look like template syntax.
const bodyTemplate = `
Hello!

A user has submitted a help request from Kigali Sim.

Thanks,
HelpBot


User email: {{.Email}}

Description of issue:
{{.Description}}

----------------------------------------
Simulation code:
----------------------------------------
{{.Simulation}}
----------------------------------------
`

var helpTemplate = template.Must(template.New("help").Parse(bodyTemplate))

// Compose renders the help-request body from a submission. Pure
// transformation: no envelope fields, no side effects.
func Compose(p payload.Payload) (string, error) {
	var sb strings.Builder
	if err := helpTemplate.Execute(&sb, p); err != nil {
		return "", errors.Join(ErrComposeFailed, err)
	}
	return sb.String(), nil
}
