// Package admin implements the admin panel's data access: the user list,
// status and role mutations, the audit log and the revenue sub-view.
package admin

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/clientforge-backend/internal/cache"
	"github.com/heartmarshall/clientforge-backend/internal/config"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

type profileRepo interface {
	List(ctx context.Context, filter domain.UserFilter) ([]domain.Profile, error)
	ListByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]domain.Profile, error)
	SetActive(ctx context.Context, userID uuid.UUID, active bool) error
	LockByUserID(ctx context.Context, userID uuid.UUID) error
}

type roleRepo interface {
	ListAll(ctx context.Context) ([]domain.RoleAssignment, error)
	Replace(ctx context.Context, userID uuid.UUID, role domain.UserRole) error
}

type auditRepo interface {
	Create(ctx context.Context, entry domain.AdminLogEntry) error
	ListRecent(ctx context.Context, limit uint64) ([]domain.AdminLogEntry, error)
}

type revenueRepo interface {
	ListRevenue(ctx context.Context, owner *uuid.UUID) ([]domain.RevenueEntry, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements admin operations. Every method requires an admin
// session in the context.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
	roles    roleRepo
	audit    auditRepo
	revenue  revenueRepo
	tx       txManager
	cache    *cache.Cache
	cfg      config.DashboardConfig
}

// NewService creates a new admin service instance.
func NewService(
	logger *slog.Logger,
	profiles profileRepo,
	roles roleRepo,
	audit auditRepo,
	revenue revenueRepo,
	tx txManager,
	c *cache.Cache,
	cfg config.DashboardConfig,
) *Service {
	return &Service{
		log:      logger.With("service", "admin"),
		profiles: profiles,
		roles:    roles,
		audit:    audit,
		revenue:  revenue,
		tx:       tx,
		cache:    c,
		cfg:      cfg,
	}
}
