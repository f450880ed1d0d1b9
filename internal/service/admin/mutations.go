package admin

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/clientforge-backend/internal/cache"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/pkg/ctxutil"
)

// ToggleUserActive flips a profile's active flag from currentActive and
// records the change in the audit log within the same transaction.
// Returns the new status. Admins cannot deactivate themselves.
func (s *Service) ToggleUserActive(ctx context.Context, userID uuid.UUID, currentActive bool) (bool, error) {
	const op = "admin.ToggleUserActive"
	newStatus := !currentActive
	action := domain.StatusActionFor(newStatus)

	caller, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return currentActive, domain.MutationFailed(op, domain.ErrUnauthorized)
	}
	if !caller.IsAdmin() {
		return currentActive, domain.MutationFailed(op, domain.ErrForbidden)
	}
	if caller.UserID == userID && !newStatus {
		return currentActive, domain.MutationFailed(op, domain.NewValidationError("user_id", "cannot deactivate yourself"))
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.profiles.SetActive(txCtx, userID, newStatus); err != nil {
			return fmt.Errorf("set active: %w", err)
		}

		entry := domain.NewAdminLogEntry(caller.UserID, action, userID, domain.TableProfiles,
			map[string]any{"new_status": newStatus})
		if err := s.audit.Create(txCtx, entry); err != nil {
			return fmt.Errorf("write audit: %w", err)
		}
		return nil
	})
	observeMutation(action.String(), err)
	if err != nil {
		return currentActive, domain.MutationFailed(op, err)
	}

	s.cache.Invalidate(ctx, cache.KeyAdminUsers, cache.KeyAuditLogs)

	s.log.InfoContext(ctx, "user status changed",
		slog.String("admin_id", caller.UserID.String()),
		slog.String("target_user_id", userID.String()),
		slog.Bool("new_status", newStatus),
	)
	return newStatus, nil
}

// ChangeUserRole replaces every role row of the user with a single newRole
// row and records it in the audit log. The profile row is locked first so
// concurrent changes to one user serialise. Admins cannot demote themselves.
func (s *Service) ChangeUserRole(ctx context.Context, userID uuid.UUID, newRole domain.UserRole) error {
	const op = "admin.ChangeUserRole"
	action := domain.AdminActionChangeRole.String()

	caller, ok := ctxutil.SessionFromCtx(ctx)
	if !ok {
		return domain.MutationFailed(op, domain.ErrUnauthorized)
	}
	if !caller.IsAdmin() {
		return domain.MutationFailed(op, domain.ErrForbidden)
	}
	if !newRole.IsValid() {
		return domain.MutationFailed(op, domain.NewValidationError("role", "invalid role: must be 'admin' or 'client'"))
	}
	if caller.UserID == userID && newRole != domain.UserRoleAdmin {
		return domain.MutationFailed(op, domain.NewValidationError("role", "cannot demote yourself"))
	}

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.profiles.LockByUserID(txCtx, userID); err != nil {
			return fmt.Errorf("lock profile: %w", err)
		}
		if err := s.roles.Replace(txCtx, userID, newRole); err != nil {
			return fmt.Errorf("replace role: %w", err)
		}

		entry := domain.NewAdminLogEntry(caller.UserID, domain.AdminActionChangeRole, userID, domain.TableUserRoles,
			map[string]any{"new_role": newRole.String()})
		if err := s.audit.Create(txCtx, entry); err != nil {
			return fmt.Errorf("write audit: %w", err)
		}
		return nil
	})
	observeMutation(action, err)
	if err != nil {
		return domain.MutationFailed(op, err)
	}

	s.cache.Invalidate(ctx, cache.KeyAdminUsers, cache.KeyAuditLogs)

	s.log.InfoContext(ctx, "user role changed",
		slog.String("admin_id", caller.UserID.String()),
		slog.String("target_user_id", userID.String()),
		slog.String("new_role", newRole.String()),
	)
	return nil
}
