// Package token implements refresh-token and one-time auth-token persistence
// using PostgreSQL.
package token

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

var (
	refreshColumns = []string{"id", "user_id", "token_hash", "expires_at", "created_at", "revoked_at"}
	authColumns    = []string{"id", "user_id", "purpose", "token_hash", "expires_at", "used_at", "created_at"}
)

// Repo provides token persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new token repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Refresh tokens
// ---------------------------------------------------------------------------

// Create inserts a new refresh token and returns the stored row.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	b := postgres.Builder().Insert("refresh_tokens").
		Columns("id", "user_id", "token_hash", "expires_at", "created_at").
		Values(id, userID, tokenHash, expiresAt, time.Now().UTC()).
		Suffix("RETURNING " + strings.Join(refreshColumns, ", "))

	var t domain.RefreshToken
	if err := postgres.Get(ctx, q, &t, b); err != nil {
		return nil, postgres.MapError(err, "refresh_token", id)
	}
	return &t, nil
}

// GetByHash returns an active (non-revoked, non-expired) refresh token by its hash.
// Returns domain.ErrNotFound if the token does not exist, is revoked, or is expired.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(refreshColumns...).From("refresh_tokens").
		Where(sq.Eq{"token_hash": tokenHash, "revoked_at": nil}).
		Where(sq.Expr("expires_at > now()"))

	var t domain.RefreshToken
	if err := postgres.Get(ctx, q, &t, b); err != nil {
		return nil, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return &t, nil
}

// RevokeByID revokes a specific refresh token.
// Idempotent: revoking an already-revoked token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Update("refresh_tokens").
		Set("revoked_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "revoked_at": nil})

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapError(err, "refresh_token", id)
	}
	return nil
}

// RevokeAllByUser revokes all active refresh tokens for the given user.
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Update("refresh_tokens").
		Set("revoked_at", time.Now().UTC()).
		Where(sq.Eq{"user_id": userID, "revoked_at": nil})

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapError(err, "refresh_token", userID)
	}
	return nil
}

// DeleteExpired removes all expired or revoked refresh tokens and returns
// the count. May delete many records; does not use a transaction.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Delete("refresh_tokens").
		Where(sq.Or{sq.Expr("expires_at < now()"), sq.NotEq{"revoked_at": nil}})

	n, err := postgres.Exec(ctx, q, b)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token", uuid.Nil)
	}
	return int(n), nil
}

// ---------------------------------------------------------------------------
// One-time auth tokens
// ---------------------------------------------------------------------------

// CreateAuthToken inserts a one-time token for purpose.
func (r *Repo) CreateAuthToken(ctx context.Context, userID uuid.UUID, purpose domain.TokenPurpose, tokenHash string, expiresAt time.Time) (*domain.AuthToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	b := postgres.Builder().Insert("auth_tokens").
		Columns("id", "user_id", "purpose", "token_hash", "expires_at", "created_at").
		Values(id, userID, string(purpose), tokenHash, expiresAt, time.Now().UTC()).
		Suffix("RETURNING " + strings.Join(authColumns, ", "))

	var t domain.AuthToken
	if err := postgres.Get(ctx, q, &t, b); err != nil {
		return nil, postgres.MapError(err, "auth_token", id)
	}
	return &t, nil
}

// GetAuthTokenByHash returns the token with the given hash and purpose,
// whether or not it is still usable. Callers check IsUsable.
func (r *Repo) GetAuthTokenByHash(ctx context.Context, purpose domain.TokenPurpose, tokenHash string) (*domain.AuthToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(authColumns...).From("auth_tokens").
		Where(sq.Eq{"token_hash": tokenHash, "purpose": string(purpose)})

	var t domain.AuthToken
	if err := postgres.Get(ctx, q, &t, b); err != nil {
		return nil, postgres.MapError(err, "auth_token", uuid.Nil)
	}
	return &t, nil
}

// MarkAuthTokenUsed redeems an unused token. Returns domain.ErrNotFound if it
// was already used, so concurrent redemptions cannot both succeed.
func (r *Repo) MarkAuthTokenUsed(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Update("auth_tokens").
		Set("used_at", time.Now().UTC()).
		Where(sq.Eq{"id": id, "used_at": nil})

	n, err := postgres.Exec(ctx, q, b)
	if err != nil {
		return postgres.MapError(err, "auth_token", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "auth_token", id)
	}
	return nil
}

// DeleteStaleAuthTokens removes used or expired one-time tokens and returns the count.
func (r *Repo) DeleteStaleAuthTokens(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Delete("auth_tokens").
		Where(sq.Or{sq.Expr("expires_at < now()"), sq.NotEq{"used_at": nil}})

	n, err := postgres.Exec(ctx, q, b)
	if err != nil {
		return 0, postgres.MapError(err, "auth_token", uuid.Nil)
	}
	return int(n), nil
}
