package admin

import (
	"context"

	"github.com/heartmarshall/clientforge-backend/internal/analytics"
	"github.com/heartmarshall/clientforge-backend/internal/cache"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/pkg/ctxutil"
)

// RevenueReport is the platform-wide revenue view.
type RevenueReport struct {
	Total   float64               `json:"total"`
	Monthly []analytics.Bucket    `json:"monthly"`
	Entries []domain.RevenueEntry `json:"entries"`
}

// RevenueAnalytics aggregates revenue across every owner.
func (s *Service) RevenueAnalytics(ctx context.Context) (*RevenueReport, error) {
	const op = "admin.RevenueAnalytics"

	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.QueryFailed(op, domain.ErrForbidden)
	}

	rows, err := cache.Fetch(ctx, s.cache, cache.Key(cache.KeyRevenue, "all"), func(ctx context.Context) ([]domain.RevenueEntry, error) {
		return s.revenue.ListRevenue(ctx, nil)
	})
	if err != nil {
		return nil, domain.QueryFailed(op, err)
	}

	return &RevenueReport{
		Total:   analytics.TotalRevenue(rows),
		Monthly: analytics.RevenueOverTime(rows),
		Entries: rows,
	}, nil
}
