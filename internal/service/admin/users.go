package admin

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/clientforge-backend/internal/cache"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/pkg/ctxutil"
)

// FetchUsers returns profiles newest first, each joined with its effective
// role. Search and status filter in SQL; the role filter applies in memory
// after roles are resolved. Any failed read yields a QueryError and no rows.
func (s *Service) FetchUsers(ctx context.Context, filter domain.UserFilter) ([]domain.ProfileWithRole, error) {
	const op = "admin.FetchUsers"

	if !ctxutil.IsAdminCtx(ctx) {
		return nil, domain.QueryFailed(op, domain.ErrForbidden)
	}

	filter = filter.Normalize()
	key := cache.Key(cache.KeyAdminUsers, filter.CacheKey())

	users, err := cache.Fetch(ctx, s.cache, key, func(ctx context.Context) ([]domain.ProfileWithRole, error) {
		return s.loadUsers(ctx, filter)
	})
	if err != nil {
		return nil, domain.QueryFailed(op, err)
	}
	return users, nil
}

func (s *Service) loadUsers(ctx context.Context, filter domain.UserFilter) ([]domain.ProfileWithRole, error) {
	var (
		profiles []domain.Profile
		rows     []domain.RoleAssignment
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profiles, err = s.profiles.List(gctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		rows, err = s.roles.ListAll(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	roles := domain.ResolveRoles(rows)
	want, filterByRole := filter.RoleOnly()

	out := make([]domain.ProfileWithRole, 0, len(profiles))
	for _, p := range profiles {
		role := domain.EffectiveRole(roles, p.UserID)
		if filterByRole && role != want {
			continue
		}
		out = append(out, domain.ProfileWithRole{Profile: p, Role: role})
	}
	return out, nil
}
