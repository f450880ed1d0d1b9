package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/pkg/ctxutil"
)

type roleResolver interface {
	EffectiveRole(ctx context.Context, userID uuid.UUID) (domain.UserRole, error)
}

// ResolveRole replaces the role claimed by the access token with the stored
// one, so a role change or deactivation takes effect on the next request.
// A resolver error wrapping domain.ErrForbidden means the account is
// disabled and yields 403.
func ResolveRole(roles roleResolver, logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := ctxutil.SessionFromCtx(r.Context())
			if !ok {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			role, err := roles.EffectiveRole(r.Context(), sess.UserID)
			switch {
			case errors.Is(err, domain.ErrForbidden):
				writeError(w, http.StatusForbidden, "account disabled")
				return
			case err != nil:
				logger.ErrorContext(r.Context(), "role lookup failed",
					slog.String("user_id", sess.UserID.String()),
					slog.String("error", err.Error()))
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}

			sess.Role = role
			next.ServeHTTP(w, r.WithContext(ctxutil.WithSession(r.Context(), sess)))
		})
	}
}

// AdminOnly rejects sessions whose role is not admin. Mount it behind
// ResolveRole.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, ok := ctxutil.SessionFromCtx(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		if !sess.IsAdmin() {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin resolves the stored role and admits admins only.
func RequireAdmin(roles roleResolver, logger *slog.Logger) Middleware {
	return Chain(ResolveRole(roles, logger), AdminOnly)
}
