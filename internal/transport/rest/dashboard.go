package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/internal/service/dashboard"
)

type dashboardService interface {
	Overview(ctx context.Context) (*dashboard.Overview, error)
	Analytics(ctx context.Context) (*dashboard.Report, error)
	FetchLeads(ctx context.Context) ([]domain.Lead, error)
	FetchConversions(ctx context.Context) ([]domain.Conversion, error)
	FetchRevenue(ctx context.Context) ([]domain.RevenueEntry, error)
	FetchCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

// DashboardHandler serves the per-user dashboard reads.
type DashboardHandler struct {
	svc  dashboardService
	errs errorPresenter
}

// NewDashboardHandler creates a DashboardHandler.
func NewDashboardHandler(svc dashboardService, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{svc: svc, errs: errorPresenter{log: logger.With("handler", "dashboard")}}
}

// Overview handles GET /api/dashboard/overview.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	serve(h.errs, w, r, h.svc.Overview)
}

// Analytics handles GET /api/dashboard/analytics.
func (h *DashboardHandler) Analytics(w http.ResponseWriter, r *http.Request) {
	serve(h.errs, w, r, h.svc.Analytics)
}

// Leads handles GET /api/dashboard/leads.
func (h *DashboardHandler) Leads(w http.ResponseWriter, r *http.Request) {
	serve(h.errs, w, r, h.svc.FetchLeads)
}

// Conversions handles GET /api/dashboard/conversions.
func (h *DashboardHandler) Conversions(w http.ResponseWriter, r *http.Request) {
	serve(h.errs, w, r, h.svc.FetchConversions)
}

// Revenue handles GET /api/dashboard/revenue.
func (h *DashboardHandler) Revenue(w http.ResponseWriter, r *http.Request) {
	serve(h.errs, w, r, h.svc.FetchRevenue)
}

// Campaigns handles GET /api/dashboard/campaigns.
func (h *DashboardHandler) Campaigns(w http.ResponseWriter, r *http.Request) {
	serve(h.errs, w, r, h.svc.FetchCampaigns)
}

// serve runs a parameterless read and writes its result as JSON.
func serve[T any](errs errorPresenter, w http.ResponseWriter, r *http.Request, read func(context.Context) (T, error)) {
	v, err := read(r.Context())
	if err != nil {
		errs.present(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}
