// Package auth implements the sign-in, sign-up and password flows. Every
// user-facing failure is a *domain.AuthError whose message is shown as-is.
package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clientforge-backend/internal/auth"
	"github.com/heartmarshall/clientforge-backend/internal/config"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, email, passwordHash string) (*domain.AuthUser, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthUser, error)
	GetByEmail(ctx context.Context, email string) (*domain.AuthUser, error)
	ConfirmEmail(ctx context.Context, id uuid.UUID, at time.Time) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type profileRepo interface {
	Create(ctx context.Context, userID uuid.UUID, fullName, email string) (*domain.Profile, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
}

type roleRepo interface {
	Assign(ctx context.Context, userID uuid.UUID, role domain.UserRole) error
	EffectiveRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error)
}

type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
	CreateAuthToken(ctx context.Context, userID uuid.UUID, purpose domain.TokenPurpose, tokenHash string, expiresAt time.Time) (*domain.AuthToken, error)
	GetAuthTokenByHash(ctx context.Context, purpose domain.TokenPurpose, tokenHash string) (*domain.AuthToken, error)
	MarkAuthTokenUsed(ctx context.Context, id uuid.UUID) error
	DeleteStaleAuthTokens(ctx context.Context) (int, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, email string, role domain.UserRole) (string, error)
	ValidateAccessToken(token string) (auth.Claims, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

type mailPublisher interface {
	Publish(ctx context.Context, queue string, body []byte) error
}

// Service implements auth operations.
type Service struct {
	log       *slog.Logger
	users     userRepo
	profiles  profileRepo
	roles     roleRepo
	tokens    tokenRepo
	tx        txManager
	jwt       jwtManager
	mail      mailPublisher
	mailQueue string
	cfg       config.AuthConfig
	now       func() time.Time
}

// NewService creates a new auth service instance. Mail events go to mailQueue.
func NewService(
	logger *slog.Logger,
	users userRepo,
	profiles profileRepo,
	roles roleRepo,
	tokens tokenRepo,
	tx txManager,
	jwt jwtManager,
	mail mailPublisher,
	mailQueue string,
	cfg config.AuthConfig,
) *Service {
	return &Service{
		log:       logger.With("service", "auth"),
		users:     users,
		profiles:  profiles,
		roles:     roles,
		tokens:    tokens,
		tx:        tx,
		jwt:       jwt,
		mail:      mail,
		mailQueue: mailQueue,
		cfg:       cfg,
		now:       time.Now,
	}
}

// issueTokens generates access and refresh tokens for the user and stores
// the refresh token hash.
func (s *Service) issueTokens(ctx context.Context, user *domain.AuthUser, role domain.UserRole) (*Tokens, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID, user.Email, role)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, s.now().Add(s.cfg.RefreshTokenTTL)); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &Tokens{
		AccessToken:  accessToken,
		RefreshToken: rawRefresh,
		ExpiresIn:    int(s.cfg.AccessTokenTTL.Seconds()),
	}, nil
}
