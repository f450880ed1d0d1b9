// Package dashboard serves the client dashboard: the four business
// collections and the summaries built from them. Clients see their own rows;
// admins see every row.
package dashboard

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/clientforge-backend/internal/cache"
	"github.com/heartmarshall/clientforge-backend/internal/config"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/pkg/ctxutil"
)

type metricsRepo interface {
	ListLeads(ctx context.Context, owner *uuid.UUID) ([]domain.Lead, error)
	ListConversions(ctx context.Context, owner *uuid.UUID) ([]domain.Conversion, error)
	ListRevenue(ctx context.Context, owner *uuid.UUID) ([]domain.RevenueEntry, error)
	ListCampaigns(ctx context.Context, owner *uuid.UUID) ([]domain.Campaign, error)
}

// Service implements dashboard reads.
type Service struct {
	log     *slog.Logger
	metrics metricsRepo
	cache   *cache.Cache
	cfg     config.DashboardConfig
	now     func() time.Time
}

// NewService creates a new dashboard service instance.
func NewService(logger *slog.Logger, metrics metricsRepo, c *cache.Cache, cfg config.DashboardConfig) *Service {
	return &Service{
		log:     logger.With("service", "dashboard"),
		metrics: metrics,
		cache:   c,
		cfg:     cfg,
		now:     time.Now,
	}
}

// scopeAll is the cache scope of unfiltered (admin) reads.
const scopeAll = "all"

// scope resolves the owner filter for the session in ctx (nil for admins,
// the session's user ID otherwise) and the cache scope naming that filter.
func scope(ctx context.Context) (*uuid.UUID, string, error) {
	sess, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return nil, "", domain.ErrUnauthorized
	}
	if sess.IsAdmin() {
		return nil, scopeAll, nil
	}
	owner := sess.UserID
	return &owner, owner.String(), nil
}

// fetch runs a scoped, cached read of one collection. Entries are keyed by
// visibility, not by caller, so a role change switches the key.
func fetch[T any](ctx context.Context, s *Service, op, prefix string, list func(context.Context, *uuid.UUID) ([]T, error)) ([]T, error) {
	owner, key, err := scope(ctx)
	if err != nil {
		return nil, domain.QueryFailed(op, err)
	}

	rows, err := cache.Fetch(ctx, s.cache, cache.Key(prefix, key), func(ctx context.Context) ([]T, error) {
		return list(ctx, owner)
	})
	if err != nil {
		s.log.ErrorContext(ctx, "dashboard read failed", slog.String("op", op), slog.String("error", err.Error()))
		return nil, domain.QueryFailed(op, err)
	}
	return rows, nil
}

// FetchLeads returns leads oldest first.
func (s *Service) FetchLeads(ctx context.Context) ([]domain.Lead, error) {
	return fetch(ctx, s, "dashboard.FetchLeads", cache.KeyLeads, s.metrics.ListLeads)
}

// FetchConversions returns conversions oldest first.
func (s *Service) FetchConversions(ctx context.Context) ([]domain.Conversion, error) {
	return fetch(ctx, s, "dashboard.FetchConversions", cache.KeyConversions, s.metrics.ListConversions)
}

// FetchRevenue returns revenue entries by recognition time, oldest first.
func (s *Service) FetchRevenue(ctx context.Context) ([]domain.RevenueEntry, error) {
	return fetch(ctx, s, "dashboard.FetchRevenue", cache.KeyRevenue, s.metrics.ListRevenue)
}

// FetchCampaigns returns campaigns newest first.
func (s *Service) FetchCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	return fetch(ctx, s, "dashboard.FetchCampaigns", cache.KeyCampaigns, s.metrics.ListCampaigns)
}
