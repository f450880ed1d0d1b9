package admin

import (
	"context"

	"github.com/heartmarshall/clientforge-backend/internal/cache"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/pkg/ctxutil"
)

// FetchAuditLog returns the most recent audit entries, newest first, with
// the acting admin's identity attached.
func (s *Service) FetchAuditLog(ctx context.Context) ([]domain.AuditLogView, error) {
	const op = "admin.FetchAuditLog"

	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.QueryFailed(op, domain.ErrForbidden)
	}

	views, err := cache.Fetch(ctx, s.cache, cache.KeyAuditLogs, func(ctx context.Context) ([]domain.AuditLogView, error) {
		entries, err := s.audit.ListRecent(ctx, s.cfg.AuditLimit)
		if err != nil {
			return nil, err
		}
		return withActors(ctx, newActorLoader(s.profiles), entries)
	})
	if err != nil {
		return nil, domain.QueryFailed(op, err)
	}
	return views, nil
}
