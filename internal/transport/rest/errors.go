package rest

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
	"github.com/heartmarshall/clientforge-backend/pkg/ctxutil"
)

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error  string       `json:"error"`
	Code   string       `json:"code"`
	Kind   string       `json:"kind,omitempty"`
	Stale  bool         `json:"stale,omitempty"`
	Fields []fieldError `json:"fields,omitempty"`
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type errorPresenter struct {
	log *slog.Logger
}

// present maps err to a status and body. Query failures are passive and
// flagged stale so the client keeps its previous data. Mutation failures are
// blocking notifications. Auth failures carry their message verbatim.
func (p errorPresenter) present(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := p.classify(err)
	if status >= http.StatusInternalServerError {
		p.log.ErrorContext(r.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
		)
	}
	writeJSON(w, status, resp)
}

func (p errorPresenter) classify(err error) (int, errorResponse) {
	var (
		ae *domain.AuthError
		qe *domain.QueryError
		me *domain.MutationError
	)

	switch {
	case errors.As(err, &ae):
		status, code := codeOf(ae)
		if status >= http.StatusInternalServerError {
			status, code = http.StatusUnauthorized, "UNAUTHENTICATED"
		}
		return status, errorResponse{Error: ae.Message, Code: code, Kind: "auth", Fields: fieldsOf(err)}

	case errors.As(err, &qe):
		status, code := codeOf(qe.Err)
		resp := errorResponse{Code: code, Kind: "query", Error: messageFor(status, qe.Err)}
		resp.Stale = status >= http.StatusInternalServerError
		return status, resp

	case errors.As(err, &me):
		status, code := codeOf(me.Err)
		return status, errorResponse{Code: code, Kind: "mutation", Error: messageFor(status, me.Err), Fields: fieldsOf(err)}

	default:
		status, code := codeOf(err)
		return status, errorResponse{Code: code, Error: messageFor(status, err), Fields: fieldsOf(err)}
	}
}

func codeOf(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrAlreadyExists):
		return http.StatusBadRequest, "ALREADY_EXISTS"
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized, "UNAUTHENTICATED"
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict, "CONFLICT"
	default:
		return http.StatusInternalServerError, "INTERNAL"
	}
}

// messageFor hides internal error text from clients.
func messageFor(status int, err error) string {
	if status >= http.StatusInternalServerError {
		return "internal error"
	}
	var ve *domain.ValidationError
	if errors.As(err, &ve) && len(ve.Errors) == 1 {
		return ve.Errors[0].Message
	}
	return http.StatusText(status)
}

func fieldsOf(err error) []fieldError {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]fieldError, 0, len(ve.Errors))
	for _, fe := range ve.Errors {
		out = append(out, fieldError{Field: fe.Field, Message: fe.Message})
	}
	return out
}
