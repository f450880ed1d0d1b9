package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/heartmarshall/clientforge-backend/internal/config"
	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/internal/transport/middleware"
)

// RouterDeps bundles everything the HTTP surface is built from.
type RouterDeps struct {
	Auth      *AuthHandler
	Dashboard *DashboardHandler
	Admin     *AdminHandler
	Health    *HealthHandler

	Tokens  tokenValidator
	// Roles re-reads the stored role on every /api request and refuses
	// disabled accounts.
	Roles   roleResolver
	Limiter *middleware.RateLimiter

	CORS          config.CORSConfig
	AuthPerMinute int
	Logger        *slog.Logger
}

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Session, error)
}

type roleResolver interface {
	EffectiveRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error)
}

// edge is applied to every request, routed or not. Auth runs inside Logger
// so request logs carry the user ID. CORS answers preflights before routing.
func edge(d RouterDeps) middleware.Middleware {
	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(d.Logger),
		middleware.Logger(d.Logger),
		middleware.Metrics,
		middleware.CORS(d.CORS),
		middleware.Auth(d.Tokens),
	)
}

// NewRouter builds the route table.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(edge(d))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found", Code: "NOT_FOUND"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed", Code: "METHOD_NOT_ALLOWED"})
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/auth", func(r chi.Router) {
		r.Use(d.Limiter.Limit(d.AuthPerMinute))

		r.Post("/login", d.Auth.SignIn)
		r.Post("/signup", d.Auth.SignUp)
		r.Post("/refresh", d.Auth.Refresh)
		r.Post("/forgot-password", d.Auth.ForgotPassword)
		r.Post("/reset-password", d.Auth.ResetPassword)
		r.Post("/verify-email", d.Auth.VerifyEmail)
		r.With(middleware.RequireAuth).Post("/logout", d.Auth.SignOut)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuth, middleware.ResolveRole(d.Roles, d.Logger))

		r.Get("/session", d.Auth.Session)

		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/overview", d.Dashboard.Overview)
			r.Get("/leads", d.Dashboard.Leads)
			r.Get("/conversions", d.Dashboard.Conversions)
			r.Get("/revenue", d.Dashboard.Revenue)
			r.Get("/campaigns", d.Dashboard.Campaigns)
			r.Get("/analytics", d.Dashboard.Analytics)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(middleware.AdminOnly)

			r.Get("/users", d.Admin.Users)
			r.Post("/users/{userID}/toggle-active", d.Admin.ToggleActive)
			r.Put("/users/{userID}/role", d.Admin.ChangeRole)
			r.Get("/audit", d.Admin.AuditLog)
			r.Get("/revenue", d.Admin.Revenue)
		})
	})

	return r
}
