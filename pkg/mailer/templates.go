package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var agreementReceivedTpl = template.Must(template.New("agreement_received").Parse(`
<p>Hi {{.UserName}},</p>
<p>We received your rental agreement request for apartment
<strong>{{.ApartmentNo}}</strong> (block {{.BlockName}}, floor {{.FloorNo}})
at a monthly rent of <strong>{{.Rent}}</strong>.</p>
<p>The request is pending review. We will email you once it has been
checked by the building administration.</p>
`))

// Render produces subject, text, and HTML bodies for a job kind.
func Render(kind string, data map[string]any) (subject, text, html string, err error) {
	switch kind {
	case KindAgreementReceived:
		var buf bytes.Buffer
		if err := agreementReceivedTpl.Execute(&buf, data); err != nil {
			return "", "", "", err
		}
		subject = "We received your agreement request"
		text = fmt.Sprintf("Hi %v, we received your rental agreement request for apartment %v. It is pending review.",
			data["UserName"], data["ApartmentNo"])
		return subject, text, buf.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown email kind %q", kind)
	}
}
