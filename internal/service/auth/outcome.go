package auth

import (
	"errors"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

// State is a form's position in idle -> submitting -> {success, failed}.
type State string

const (
	StateIdle       State = "idle"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateFailed     State = "failed"
)

// Where a form goes after success.
const (
	NextDashboard   = "/dashboard"
	NextVerifyEmail = "verify-email"
	NextCheckEmail  = "check-email"
	NextLogin       = "/login"
)

// Outcome is the terminal state of one submit.
type Outcome struct {
	State   State  `json:"state"`
	Next    string `json:"next,omitempty"`
	Message string `json:"message,omitempty"`
}

// Succeeded returns a success outcome that navigates to next.
func Succeeded(next, message string) Outcome {
	return Outcome{State: StateSuccess, Next: next, Message: message}
}

// Failed returns a failed outcome. An AuthError's message is carried
// verbatim; anything else gets a generic message.
func Failed(err error) Outcome {
	var ae *domain.AuthError
	if errors.As(err, &ae) {
		return Outcome{State: StateFailed, Message: ae.Message}
	}
	return Outcome{State: StateFailed, Message: "Something went wrong. Please try again."}
}

// Tokens is the credential pair returned on sign-in and refresh.
type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// SignInResult is a successful sign-in.
type SignInResult struct {
	Outcome
	Tokens *Tokens `json:"tokens"`
}
