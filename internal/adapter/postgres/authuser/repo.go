// Package authuser implements credential persistence using PostgreSQL.
package authuser

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

const table = "auth_users"

var columns = []string{"id", "email", "password_hash", "email_confirmed_at", "created_at", "updated_at"}

// Repo provides auth_users persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new auth user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Create inserts a new credential row. The e-mail is stored lower-cased.
// Returns domain.ErrAlreadyExists if the e-mail is taken.
func (r *Repo) Create(ctx context.Context, email, passwordHash string) (*domain.AuthUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	now := time.Now().UTC()
	b := postgres.Builder().
		Insert(table).
		Columns("id", "email", "password_hash", "created_at", "updated_at").
		Values(id, strings.ToLower(email), passwordHash, now, now).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var u domain.AuthUser
	if err := postgres.Get(ctx, q, &u, b); err != nil {
		return nil, postgres.MapError(err, "auth_user", id)
	}
	return &u, nil
}

// GetByID returns a credential row by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.AuthUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})

	var u domain.AuthUser
	if err := postgres.Get(ctx, q, &u, b); err != nil {
		return nil, postgres.MapError(err, "auth_user", id)
	}
	return &u, nil
}

// GetByEmail returns a credential row by e-mail (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.AuthUser, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"email": strings.ToLower(strings.TrimSpace(email))})

	var u domain.AuthUser
	if err := postgres.Get(ctx, q, &u, b); err != nil {
		return nil, postgres.MapError(err, "auth_user", uuid.Nil)
	}
	return &u, nil
}

// ConfirmEmail sets email_confirmed_at if it is not already set.
func (r *Repo) ConfirmEmail(ctx context.Context, id uuid.UUID, at time.Time) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Update(table).
		Set("email_confirmed_at", sq.Expr("COALESCE(email_confirmed_at, ?)", at)).
		Set("updated_at", at).
		Where(sq.Eq{"id": id})

	n, err := postgres.Exec(ctx, q, b)
	if err != nil {
		return postgres.MapError(err, "auth_user", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "auth_user", id)
	}
	return nil
}

// UpdatePassword replaces the stored password hash.
func (r *Repo) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Update(table).
		Set("password_hash", passwordHash).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"id": id})

	n, err := postgres.Exec(ctx, q, b)
	if err != nil {
		return postgres.MapError(err, "auth_user", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "auth_user", id)
	}
	return nil
}
