package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/internal/service/admin"
)

type adminService interface {
	FetchUsers(ctx context.Context, filter domain.UserFilter) ([]domain.ProfileWithRole, error)
	ToggleUserActive(ctx context.Context, userID uuid.UUID, currentActive bool) (bool, error)
	ChangeUserRole(ctx context.Context, userID uuid.UUID, newRole domain.UserRole) error
	FetchAuditLog(ctx context.Context) ([]domain.AuditLogView, error)
	RevenueAnalytics(ctx context.Context) (*admin.RevenueReport, error)
}

// AdminHandler serves the admin console. Routes are mounted behind
// middleware.RequireAdmin; the service checks the role again.
type AdminHandler struct {
	svc  adminService
	errs errorPresenter
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(svc adminService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{svc: svc, errs: errorPresenter{log: logger.With("handler", "admin")}}
}

type toggleActiveRequest struct {
	CurrentActive *bool `json:"current_active"`
}

type toggleActiveResponse struct {
	UserID   uuid.UUID `json:"user_id"`
	IsActive bool      `json:"is_active"`
}

type changeRoleRequest struct {
	Role domain.UserRole `json:"role"`
}

type changeRoleResponse struct {
	UserID uuid.UUID       `json:"user_id"`
	Role   domain.UserRole `json:"role"`
}

// Users handles GET /api/admin/users?search=&role=&status=.
func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	users, err := h.svc.FetchUsers(r.Context(), domain.UserFilter{
		Search: q.Get("search"),
		Role:   q.Get("role"),
		Status: q.Get("status"),
	})
	if err != nil {
		h.errs.present(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, users)
}

// ToggleActive handles POST /api/admin/users/{userID}/toggle-active.
func (h *AdminHandler) ToggleActive(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req toggleActiveRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.errs.present(w, r, domain.NewValidationError("body", "invalid request body"))
		return
	}
	if req.CurrentActive == nil {
		h.errs.present(w, r, domain.NewValidationError("current_active", "required"))
		return
	}

	active, err := h.svc.ToggleUserActive(r.Context(), userID, *req.CurrentActive)
	if err != nil {
		h.errs.present(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toggleActiveResponse{UserID: userID, IsActive: active})
}

// ChangeRole handles PUT /api/admin/users/{userID}/role.
func (h *AdminHandler) ChangeRole(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req changeRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.errs.present(w, r, domain.NewValidationError("body", "invalid request body"))
		return
	}

	if err := h.svc.ChangeUserRole(r.Context(), userID, req.Role); err != nil {
		h.errs.present(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, changeRoleResponse{UserID: userID, Role: req.Role})
}

// AuditLog handles GET /api/admin/audit.
func (h *AdminHandler) AuditLog(w http.ResponseWriter, r *http.Request) {
	serve(h.errs, w, r, h.svc.FetchAuditLog)
}

// Revenue handles GET /api/admin/revenue.
func (h *AdminHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	serve(h.errs, w, r, h.svc.RevenueAnalytics)
}

func (h *AdminHandler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		h.errs.present(w, r, domain.NewValidationError("user_id", "must be a UUID"))
		return uuid.Nil, false
	}
	return id, true
}
