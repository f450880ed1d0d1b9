package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

// SignIn authenticates with e-mail and password and issues a token pair.
// Unknown e-mail and wrong password share one message.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*SignInResult, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, invalid(msgInvalidCredentials)
	}

	// Step 1: Find credentials
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewAuthError(msgInvalidCredentials)
		}
		return nil, fmt.Errorf("auth.SignIn get user: %w", err)
	}

	// Step 2: Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.NewAuthError(msgInvalidCredentials)
	}

	// Step 3: Account checks
	if !user.IsConfirmed() {
		return nil, domain.NewAuthError(msgEmailNotConfirmed)
	}

	profile, err := s.profiles.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.SignIn get profile: %w", err)
	}
	if profile != nil && !profile.IsActive {
		return nil, &domain.AuthError{Message: msgAccountDisabled, Err: domain.ErrForbidden}
	}

	role, err := s.roles.EffectiveRole(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn resolve role: %w", err)
	}

	// Step 4: Issue tokens
	tokens, err := s.issueTokens(ctx, user, role)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn issue tokens: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.String("user_id", user.ID.String()),
		slog.String("role", role.String()))

	return &SignInResult{Outcome: Succeeded(NextDashboard, ""), Tokens: tokens}, nil
}
