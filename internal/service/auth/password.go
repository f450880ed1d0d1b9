package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/clientforge-backend/internal/adapter/broker"
	"github.com/heartmarshall/clientforge-backend/internal/auth"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/pkg/ctxutil"
)

// RequestPasswordReset sends a reset link if the address belongs to an
// account. The outcome is the same whether or not it does.
func (s *Service) RequestPasswordReset(ctx context.Context, email string) (Outcome, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return Failed(err), err
	}

	done := Succeeded(NextCheckEmail, "Check your email for a password reset link")

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.InfoContext(ctx, "password reset for unknown email")
			return done, nil
		}
		return Failed(err), fmt.Errorf("auth.RequestPasswordReset get user: %w", err)
	}

	raw, hash, err := auth.GenerateOpaqueToken()
	if err != nil {
		return Failed(err), fmt.Errorf("auth.RequestPasswordReset generate token: %w", err)
	}
	if _, err := s.tokens.CreateAuthToken(ctx, user.ID, domain.TokenPurposePasswordReset, hash, s.now().Add(s.cfg.ResetTTL)); err != nil {
		return Failed(err), fmt.Errorf("auth.RequestPasswordReset store token: %w", err)
	}

	s.sendMail(ctx, broker.MailKindPasswordReset, user.Email, raw, "/reset-password")

	s.log.InfoContext(ctx, "password reset requested", slog.String("user_id", user.ID.String()))
	return done, nil
}

// UpdatePassword sets a new password, either by redeeming a reset token or
// for the signed-in user, and revokes every refresh token of that user.
func (s *Service) UpdatePassword(ctx context.Context, input UpdatePasswordInput) (Outcome, error) {
	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return Failed(err), err
	}

	sessionUser, hasSession := ctxutil.UserIDFromCtx(ctx)
	if input.Token == "" && !hasSession {
		ae := &domain.AuthError{Message: msgSessionExpired}
		return Failed(ae), ae
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return Failed(err), fmt.Errorf("auth.UpdatePassword hash password: %w", err)
	}

	// Step 3: Redeem token, update password, revoke sessions
	var userID uuid.UUID
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		userID = sessionUser
		if input.Token != "" {
			t, err := s.redeem(txCtx, domain.TokenPurposePasswordReset, input.Token)
			if err != nil {
				return err
			}
			userID = t.UserID
		}

		if err := s.users.UpdatePassword(txCtx, userID, string(hash)); err != nil {
			return fmt.Errorf("update password: %w", err)
		}
		if err := s.tokens.RevokeAllByUser(txCtx, userID); err != nil {
			return fmt.Errorf("revoke tokens: %w", err)
		}
		return nil
	})
	if err != nil {
		var ae *domain.AuthError
		if errors.As(err, &ae) {
			return Failed(ae), ae
		}
		return Failed(err), fmt.Errorf("auth.UpdatePassword: %w", err)
	}

	s.log.InfoContext(ctx, "password updated", slog.String("user_id", userID.String()))
	return Succeeded(NextLogin, "Password updated. Please sign in."), nil
}
