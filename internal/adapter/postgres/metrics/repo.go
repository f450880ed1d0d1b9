// Package metrics implements read access to the business-metric tables
// (leads, conversions, revenue, campaigns) using PostgreSQL.
package metrics

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	postgres "github.com/heartmarshall/clientforge-backend/internal/adapter/postgres"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

// Repo reads business-metric rows. A nil owner means "all rows" (admin scope);
// otherwise rows are restricted to owner_id = *owner.
type Repo struct {
	db postgres.Querier
}

// New creates a new metrics repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

func scoped(b sq.SelectBuilder, owner *uuid.UUID) sq.SelectBuilder {
	if owner == nil {
		return b
	}
	return b.Where(sq.Eq{"owner_id": *owner})
}

// ListLeads returns leads ordered by created_at ASC.
func (r *Repo) ListLeads(ctx context.Context, owner *uuid.UUID) ([]domain.Lead, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := scoped(postgres.Builder().
		Select("id", "owner_id", "email", "name", "source", "created_at").
		From("leads"), owner).
		OrderBy("created_at ASC")

	rows := []domain.Lead{}
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "lead", uuid.Nil)
	}
	return rows, nil
}

// ListConversions returns conversions ordered by created_at ASC.
func (r *Repo) ListConversions(ctx context.Context, owner *uuid.UUID) ([]domain.Conversion, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := scoped(postgres.Builder().
		Select("id", "owner_id", "lead_id", "value", "created_at").
		From("conversions"), owner).
		OrderBy("created_at ASC")

	rows := []domain.Conversion{}
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "conversion", uuid.Nil)
	}
	return rows, nil
}

// ListRevenue returns revenue entries ordered by recognized_at ASC.
func (r *Repo) ListRevenue(ctx context.Context, owner *uuid.UUID) ([]domain.RevenueEntry, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := scoped(postgres.Builder().
		Select("id", "owner_id", "amount", "description", "recognized_at").
		From("revenue"), owner).
		OrderBy("recognized_at ASC")

	rows := []domain.RevenueEntry{}
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "revenue", uuid.Nil)
	}
	return rows, nil
}

// ListCampaigns returns campaigns ordered by created_at DESC.
func (r *Repo) ListCampaigns(ctx context.Context, owner *uuid.UUID) ([]domain.Campaign, error) {
	q := postgres.QuerierFromCtx(ctx, r.db)

	b := scoped(postgres.Builder().
		Select("id", "owner_id", "name", "status", "created_at").
		From("campaigns"), owner).
		OrderBy("created_at DESC")

	rows := []domain.Campaign{}
	if err := postgres.Select(ctx, q, &rows, b); err != nil {
		return nil, postgres.MapError(err, "campaign", uuid.Nil)
	}
	return rows, nil
}
