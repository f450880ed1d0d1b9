package auth

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

const (
	minPasswordLength = 6
	maxPasswordLength = 72 // bcrypt limit
	maxNameLength     = 200
)

// User-facing messages.
const (
	msgInvalidCredentials = "Invalid login credentials"
	msgEmailNotConfirmed  = "Email not confirmed"
	msgAccountDisabled    = "Account is disabled"
	msgAlreadyRegistered  = "User already registered"
	msgInvalidEmail       = "Unable to validate email address: invalid format"
	msgPasswordTooShort   = "Password should be at least 6 characters"
	msgPasswordTooLong    = "Password cannot be longer than 72 characters"
	msgNameRequired       = "Full name is required"
	msgNameTooLong        = "Full name is too long"
	msgInvalidLink        = "Link is invalid or has expired"
	msgPasswordMismatch   = "Passwords do not match"
	msgSessionExpired     = "Session expired. Please sign in again."
)

func invalid(message string) *domain.AuthError {
	return &domain.AuthError{Message: message, Err: domain.ErrValidation}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateEmail(email string) error {
	if email == "" {
		return invalid(msgInvalidEmail)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return invalid(msgInvalidEmail)
	}
	return nil
}

func validatePassword(password string) error {
	switch {
	case len(password) < minPasswordLength:
		return invalid(msgPasswordTooShort)
	case len(password) > maxPasswordLength:
		return invalid(msgPasswordTooLong)
	}
	return nil
}

// SignInInput holds parameters for password sign-in.
type SignInInput struct {
	Email    string
	Password string
}

// SignUpInput holds parameters for registration.
type SignUpInput struct {
	Email    string
	Password string
	FullName string
}

// Validate validates the sign-up input.
func (i SignUpInput) Validate() error {
	name := strings.TrimSpace(i.FullName)
	if name == "" {
		return invalid(msgNameRequired)
	}
	if len(name) > maxNameLength {
		return invalid(msgNameTooLong)
	}
	if err := validateEmail(i.Email); err != nil {
		return err
	}
	return validatePassword(i.Password)
}

// UpdatePasswordInput sets a new password. Token is the reset token from
// the e-mail link; when empty the authenticated session's user is updated.
type UpdatePasswordInput struct {
	Token           string
	Password        string
	ConfirmPassword string
}

// Validate validates the password update input.
func (i UpdatePasswordInput) Validate() error {
	if err := validatePassword(i.Password); err != nil {
		return err
	}
	if i.ConfirmPassword != "" && i.ConfirmPassword != i.Password {
		return invalid(msgPasswordMismatch)
	}
	return nil
}
