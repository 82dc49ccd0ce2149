package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending
// email. HTML is optional; Text is the fallback body.
type EmailJob struct {
	To      string         `json:"to"`
	Subject string         `json:"subject,omitempty"`
	Text    string         `json:"text,omitempty"`
	HTML    string         `json:"html,omitempty"`
	Kind    string         `json:"kind,omitempty"` // e.g. "agreement_received"
	Data    map[string]any `json:"data,omitempty"`
}

// Job kinds the worker knows how to render.
const (
	KindAgreementReceived = "agreement_received"
)
