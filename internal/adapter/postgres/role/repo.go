// Package role implements the UserRole repository using PostgreSQL.
package role

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

var columns = []string{"id", "user_id", "role", "created_at"}

// Repo provides user_roles persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new role repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ListAll returns every role row. Rows are returned as stored, duplicates included.
func (r *Repo) ListAll(ctx context.Context) ([]domain.RoleAssignment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(columns...).From(domain.TableUserRoles).OrderBy("created_at ASC")

	rows := []domain.RoleAssignment{}
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "user_role", uuid.Nil)
	}
	return rows, nil
}

// ListByUserID returns all role rows for one user.
func (r *Repo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]domain.RoleAssignment, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := postgres.Builder().Select(columns...).From(domain.TableUserRoles).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at ASC")

	rows := []domain.RoleAssignment{}
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "user_role", userID)
	}
	return rows, nil
}

// EffectiveRole resolves the user's role with the first-admin-wins rule,
// defaulting to client when no row exists.
func (r *Repo) EffectiveRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error) {
	rows, err := r.ListByUserID(ctx, userID)
	if err != nil {
		return "", err
	}
	return domain.EffectiveRole(domain.ResolveRoles(rows), userID), nil
}

// Assign inserts one role row for userID.
func (r *Repo) Assign(ctx context.Context, userID uuid.UUID, role domain.UserRole) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	b := postgres.Builder().Insert(domain.TableUserRoles).
		Columns("id", "user_id", "role", "created_at").
		Values(id, userID, string(role), time.Now().UTC())

	if _, err := postgres.Exec(ctx, q, b); err != nil {
		return postgres.MapError(err, "user_role", id)
	}
	return nil
}

// Replace deletes every role row for userID and inserts a single row with
// role. Callers run it inside RunInTx so the two statements commit together.
func (r *Repo) Replace(ctx context.Context, userID uuid.UUID, role domain.UserRole) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	del := postgres.Builder().Delete(domain.TableUserRoles).Where(sq.Eq{"user_id": userID})
	if _, err := postgres.Exec(ctx, q, del); err != nil {
		return postgres.MapError(err, "user_role", userID)
	}

	return r.Assign(ctx, userID, role)
}
