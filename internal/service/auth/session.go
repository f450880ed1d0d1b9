package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clientforge-backend/internal/auth"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/pkg/ctxutil"
)

// SessionView is the current identity as reported to the client.
type SessionView struct {
	UserID   uuid.UUID       `json:"user_id"`
	Email    string          `json:"email"`
	FullName string          `json:"full_name"`
	Role     domain.UserRole `json:"role"`
	IsAdmin  bool            `json:"is_admin"`
}

// ValidateToken validates an access token and returns the session it
// carries. Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(ctx context.Context, token string) (domain.Session, error) {
	claims, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return domain.Session{}, domain.ErrUnauthorized
	}
	return claims.Session(), nil
}

// EffectiveRole returns the stored role of an authenticated user. A
// deactivated profile yields an AuthError wrapping domain.ErrForbidden, so
// access ends before the access token expires.
func (s *Service) EffectiveRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	switch {
	case err == nil:
		if !profile.IsActive {
			return "", &domain.AuthError{Message: msgAccountDisabled, Err: domain.ErrForbidden}
		}
	case !errors.Is(err, domain.ErrNotFound):
		return "", fmt.Errorf("auth.EffectiveRole get profile: %w", err)
	}

	role, err := s.roles.EffectiveRole(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("auth.EffectiveRole: %w", err)
	}
	return role, nil
}

// Session returns the signed-in identity with its role re-read from the
// store, so a role change is visible before the access token expires.
func (s *Service) Session(ctx context.Context) (*SessionView, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	role, err := s.roles.EffectiveRole(ctx, sess.UserID)
	if err != nil {
		return nil, domain.QueryFailed("auth.Session", err)
	}

	view := &SessionView{
		UserID:  sess.UserID,
		Email:   sess.Email,
		Role:    role,
		IsAdmin: role.IsAdmin(),
	}

	profile, err := s.profiles.GetByUserID(ctx, sess.UserID)
	switch {
	case err == nil:
		view.FullName = profile.FullName
		view.Email = profile.Email
	case !errors.Is(err, domain.ErrNotFound):
		return nil, domain.QueryFailed("auth.Session", err)
	}
	return view, nil
}

// SignOut revokes all refresh tokens of the authenticated user.
func (s *Service) SignOut(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.SignOut: %w", err)
	}

	s.log.InfoContext(ctx, "user signed out", slog.String("user_id", userID.String()))
	return nil
}

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued. Unknown, revoked and expired tokens are rejected.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (*Tokens, error) {
	if refreshToken == "" || len(refreshToken) > 512 {
		return nil, &domain.AuthError{Message: msgSessionExpired}
	}

	// Step 1: Look up by hash
	token, err := s.tokens.GetByHash(ctx, auth.HashToken(refreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh token reuse attempted")
			return nil, &domain.AuthError{Message: msgSessionExpired}
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}
	if token.IsExpired(s.now()) {
		return nil, &domain.AuthError{Message: msgSessionExpired}
	}

	// Step 2: Load user state
	user, err := s.users.GetByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "refresh for deleted user",
				slog.String("user_id", token.UserID.String()))
			return nil, &domain.AuthError{Message: msgSessionExpired}
		}
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	}

	profile, err := s.profiles.GetByUserID(ctx, user.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("auth.Refresh get profile: %w", err)
	}
	if profile != nil && !profile.IsActive {
		return nil, &domain.AuthError{Message: msgAccountDisabled, Err: domain.ErrForbidden}
	}

	role, err := s.roles.EffectiveRole(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh resolve role: %w", err)
	}

	// Step 3: Revoke old token, issue new pair
	if err := s.tokens.RevokeByID(ctx, token.ID); err != nil {
		return nil, fmt.Errorf("auth.Refresh revoke token: %w", err)
	}

	tokens, err := s.issueTokens(ctx, user, role)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh issue tokens: %w", err)
	}
	return tokens, nil
}

// CleanupResult counts rows removed by CleanupExpiredTokens.
type CleanupResult struct {
	RefreshTokens int
	AuthTokens    int
	Took          time.Duration
}

// CleanupExpiredTokens deletes expired or revoked refresh tokens and used or
// expired one-time tokens. This is a maintenance operation.
func (s *Service) CleanupExpiredTokens(ctx context.Context) (CleanupResult, error) {
	start := s.now()

	refresh, err := s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return CleanupResult{}, fmt.Errorf("auth.CleanupExpiredTokens refresh: %w", err)
	}

	oneTime, err := s.tokens.DeleteStaleAuthTokens(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return CleanupResult{RefreshTokens: refresh}, fmt.Errorf("auth.CleanupExpiredTokens auth: %w", err)
	}

	res := CleanupResult{RefreshTokens: refresh, AuthTokens: oneTime, Took: s.now().Sub(start)}
	if refresh+oneTime > 0 {
		s.log.InfoContext(ctx, "cleaned up expired tokens",
			slog.Int("refresh_tokens", refresh),
			slog.Int("auth_tokens", oneTime))
	}
	return res, nil
}
