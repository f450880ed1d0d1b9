// Package mailer turns auth mail events into e-mails and delivers them.
package mailer

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/heartmarshall/clientforge-backend/internal/adapter/broker"
)

// Message is a rendered plain-text e-mail.
type Message struct {
	To      string
	Subject string
	Body    string
}

type templateSet struct {
	subject string
	body    *template.Template
}

var templates = map[broker.MailKind]templateSet{
	broker.MailKindVerifyEmail: {
		subject: "Confirm your ClientForge account",
		body: template.Must(template.New("verify").Parse(`Welcome to ClientForge.

Confirm your e-mail address by opening the link below:

{{.Link}}

If you did not sign up, you can ignore this message.
`)),
	},
	broker.MailKindPasswordReset: {
		subject: "Reset your ClientForge password",
		body: template.Must(template.New("reset").Parse(`We received a request to reset the password for {{.To}}.

Choose a new password here:

{{.Link}}

The link expires soon and can be used once. If you did not ask for a reset,
no action is needed.
`)),
	},
}

// Render builds the e-mail for ev.
func Render(ev broker.MailEvent) (Message, error) {
	set, ok := templates[ev.Kind]
	if !ok {
		return Message{}, fmt.Errorf("no template for mail kind %q", ev.Kind)
	}
	if ev.Link == "" {
		return Message{}, fmt.Errorf("mail event %q for %s has no link", ev.Kind, ev.To)
	}

	var buf bytes.Buffer
	if err := set.body.Execute(&buf, ev); err != nil {
		return Message{}, fmt.Errorf("render %s: %w", ev.Kind, err)
	}
	return Message{To: ev.To, Subject: set.subject, Body: buf.String()}, nil
}
