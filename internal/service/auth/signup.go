package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/clientforge-backend/internal/adapter/broker"
	"github.com/heartmarshall/clientforge-backend/internal/auth"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

// SignUp registers credentials, a profile and the default client role in
// one transaction, then sends a verification e-mail. No tokens are issued
// until the e-mail is confirmed.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (Outcome, error) {
	// Normalize input before validation.
	input.Email = normalizeEmail(input.Email)
	input.FullName = strings.TrimSpace(input.FullName)

	// Step 1: Validate input
	if err := input.Validate(); err != nil {
		return Failed(err), err
	}

	// Step 2: Hash password
	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.BcryptCost)
	if err != nil {
		return Failed(err), fmt.Errorf("auth.SignUp hash password: %w", err)
	}

	// Step 3: Create user + profile + role + verification token in a transaction.
	// E-mail uniqueness is enforced by the DB.
	rawToken, tokenHash, err := auth.GenerateOpaqueToken()
	if err != nil {
		return Failed(err), fmt.Errorf("auth.SignUp generate token: %w", err)
	}

	var user *domain.AuthUser
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		user, err = s.users.Create(txCtx, input.Email, string(hash))
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		if _, err := s.profiles.Create(txCtx, user.ID, input.FullName, user.Email); err != nil {
			return fmt.Errorf("create profile: %w", err)
		}
		if err := s.roles.Assign(txCtx, user.ID, domain.UserRoleClient); err != nil {
			return fmt.Errorf("assign role: %w", err)
		}
		if _, err := s.tokens.CreateAuthToken(txCtx, user.ID, domain.TokenPurposeEmailVerification, tokenHash, s.now().Add(s.cfg.VerificationTTL)); err != nil {
			return fmt.Errorf("create verification token: %w", err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			ae := &domain.AuthError{Message: msgAlreadyRegistered, Err: domain.ErrAlreadyExists}
			return Failed(ae), ae
		}
		return Failed(err), fmt.Errorf("auth.SignUp: %w", err)
	}

	// Step 4: Send verification mail. The account exists either way.
	s.sendMail(ctx, broker.MailKindVerifyEmail, user.Email, rawToken, "/verify-email")

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", user.ID.String()))

	return Succeeded(NextVerifyEmail, "Check your email to confirm your account"), nil
}

// sendMail publishes a mail event. Failures are logged, not returned.
func (s *Service) sendMail(ctx context.Context, kind broker.MailKind, to, token, path string) {
	ev := broker.MailEvent{
		Kind:      kind,
		To:        to,
		Token:     token,
		Link:      s.link(path, token),
		CreatedAt: s.now().UTC(),
	}
	body, err := ev.Encode()
	if err == nil {
		err = s.mail.Publish(ctx, s.mailQueue, body)
	}
	if err != nil {
		s.log.ErrorContext(ctx, "mail event not published",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()))
	}
}

func (s *Service) link(path, token string) string {
	return strings.TrimRight(s.cfg.AppBaseURL, "/") + path + "?token=" + url.QueryEscape(token)
}

// VerifyEmail redeems a verification token and confirms the address.
func (s *Service) VerifyEmail(ctx context.Context, token string) (Outcome, error) {
	if token == "" {
		ae := invalid(msgInvalidLink)
		return Failed(ae), ae
	}

	var userID uuid.UUID
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		t, err := s.redeem(txCtx, domain.TokenPurposeEmailVerification, token)
		if err != nil {
			return err
		}
		userID = t.UserID
		return s.users.ConfirmEmail(txCtx, t.UserID, s.now().UTC())
	})
	if err != nil {
		var ae *domain.AuthError
		if errors.As(err, &ae) {
			return Failed(ae), ae
		}
		return Failed(err), fmt.Errorf("auth.VerifyEmail: %w", err)
	}

	s.log.InfoContext(ctx, "email confirmed", slog.String("user_id", userID.String()))
	return Succeeded(NextLogin, "Email confirmed. You can now sign in."), nil
}

// redeem looks up a one-time token and marks it used. Unknown, used and
// expired tokens all yield the same AuthError.
func (s *Service) redeem(ctx context.Context, purpose domain.TokenPurpose, raw string) (*domain.AuthToken, error) {
	t, err := s.tokens.GetAuthTokenByHash(ctx, purpose, auth.HashToken(raw))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, invalid(msgInvalidLink)
		}
		return nil, fmt.Errorf("get token: %w", err)
	}
	if !t.IsUsable(s.now()) {
		return nil, invalid(msgInvalidLink)
	}
	if err := s.tokens.MarkAuthTokenUsed(ctx, t.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, invalid(msgInvalidLink)
		}
		return nil, fmt.Errorf("mark token used: %w", err)
	}
	return t, nil
}
