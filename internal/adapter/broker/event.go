// Package broker publishes and consumes auth e-mail events over RabbitMQ.
package broker

import (
	"encoding/json"
	"fmt"
	"time"
)

// MailKind names the e-mail template a MailEvent renders.
type MailKind string

const (
	MailKindVerifyEmail   MailKind = "verify_email"
	MailKindPasswordReset MailKind = "password_reset"
)

// MailEvent asks the mailer to send one auth e-mail.
type MailEvent struct {
	Kind      MailKind  `json:"kind"`
	To        string    `json:"to"`
	Token     string    `json:"token"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"created_at"`
}

// Encode renders the event as JSON.
func (e MailEvent) Encode() ([]byte, error) {
	return json.Marshal(e)
}

// DecodeMailEvent parses and validates a MailEvent body.
func DecodeMailEvent(body []byte) (MailEvent, error) {
	var ev MailEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return MailEvent{}, fmt.Errorf("unmarshal mail event: %w", err)
	}
	switch ev.Kind {
	case MailKindVerifyEmail, MailKindPasswordReset:
	default:
		return MailEvent{}, fmt.Errorf("unknown mail kind %q", ev.Kind)
	}
	if ev.To == "" {
		return MailEvent{}, fmt.Errorf("mail event without recipient")
	}
	return ev, nil
}
