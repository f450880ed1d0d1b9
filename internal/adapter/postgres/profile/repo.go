// Package profile implements the Profile repository using PostgreSQL.
package profile

import (
	"context"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

var columns = []string{"id", "user_id", "full_name", "email", "is_active", "created_at", "updated_at"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts an active profile for userID.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, fullName, email string) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	now := time.Now().UTC()
	b := postgres.Builder().
		Insert(domain.TableProfiles).
		Columns("id", "user_id", "full_name", "email", "is_active", "created_at", "updated_at").
		Values(id, userID, strings.TrimSpace(fullName), strings.ToLower(email), true, now, now).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var p domain.Profile
	if err := postgres.Get(ctx, q, &p, b); err != nil {
		return nil, postgres.MapError(err, "profile", id)
	}
	return &p, nil
}

// SetActive sets is_active for the profile owned by userID.
// Returns domain.ErrNotFound if the user has no profile.
func (r *Repo) SetActive(ctx context.Context, userID uuid.UUID, active bool) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Update(domain.TableProfiles).
		Set("is_active", active).
		Set("updated_at", time.Now().UTC()).
		Where(sq.Eq{"user_id": userID})

	n, err := postgres.Exec(ctx, q, b)
	if err != nil {
		return postgres.MapError(err, "profile", userID)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "profile", userID)
	}
	return nil
}

// LockByUserID takes a row lock on the user's profile for the rest of the
// current transaction. Must be called inside RunInTx.
func (r *Repo) LockByUserID(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select("id").From(domain.TableProfiles).
		Where(sq.Eq{"user_id": userID}).
		Suffix("FOR UPDATE")

	var id uuid.UUID
	if err := postgres.Get(ctx, q, &id, b); err != nil {
		return postgres.MapError(err, "profile", userID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByUserID returns the profile owned by userID.
func (r *Repo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(columns...).From(domain.TableProfiles).Where(sq.Eq{"user_id": userID})

	var p domain.Profile
	if err := postgres.Get(ctx, q, &p, b); err != nil {
		return nil, postgres.MapError(err, "profile", userID)
	}
	return &p, nil
}

// List returns profiles ordered by created_at DESC. A non-empty Search is
// matched case-insensitively against full_name and email; Status "active" or
// "inactive" filters on is_active. The role filter is not applied here.
func (r *Repo) List(ctx context.Context, filter domain.UserFilter) ([]domain.Profile, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(columns...).From(domain.TableProfiles).
		OrderBy("created_at DESC")

	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"full_name": pattern},
			sq.ILike{"email": pattern},
		})
	}
	if active := filter.ActiveOnly(); active != nil {
		b = b.Where(sq.Eq{"is_active": *active})
	}

	profiles := []domain.Profile{}
	if err := postgres.Select(ctx, q, &profiles, b); err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}
	return profiles, nil
}

// ListByUserIDs returns the profiles owned by any of userIDs, in no
// particular order. Missing users are simply absent.
func (r *Repo) ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Profile, error) {
	if len(userIDs) == 0 {
		return []domain.Profile{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(columns...).From(domain.TableProfiles).
		Where(sq.Eq{"user_id": userIDs})

	profiles := []domain.Profile{}
	if err := postgres.Select(ctx, q, &profiles, b); err != nil {
		return nil, postgres.MapError(err, "profile", uuid.Nil)
	}
	return profiles, nil
}
