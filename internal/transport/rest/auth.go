package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/clientforge-backend/internal/service/auth"
)

type authService interface {
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.SignInResult, error)
	SignUp(ctx context.Context, input auth.SignUpInput) (auth.Outcome, error)
	SignOut(ctx context.Context) error
	Refresh(ctx context.Context, refreshToken string) (*auth.Tokens, error)
	RequestPasswordReset(ctx context.Context, email string) (auth.Outcome, error)
	UpdatePassword(ctx context.Context, input auth.UpdatePasswordInput) (auth.Outcome, error)
	VerifyEmail(ctx context.Context, token string) (auth.Outcome, error)
	Session(ctx context.Context) (*auth.SessionView, error)
}

// AuthHandler serves the sign-in, sign-up and recovery endpoints. Every
// response body is an auth.Outcome so the client can drive its form state.
type AuthHandler struct {
	svc  authService
	errs errorPresenter
	log  *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, logger *slog.Logger) *AuthHandler {
	logger = logger.With("handler", "auth")
	return &AuthHandler{svc: svc, errs: errorPresenter{log: logger}, log: logger}
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

type resetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

type verifyEmailRequest struct {
	Token string `json:"token"`
}

// failedOutcome is an auth.Outcome in the failed state plus the error code.
type failedOutcome struct {
	auth.Outcome
	Code string `json:"code"`
}

// SignIn handles POST /auth/login.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.svc.SignIn(r.Context(), auth.SignInInput{Email: req.Email, Password: req.Password})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// SignUp handles POST /auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.svc.SignUp(r.Context(), auth.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, out)
}

// SignOut handles POST /auth/logout.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.SignOut(r.Context()); err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, auth.Succeeded(auth.NextLogin, ""))
}

// Refresh handles POST /auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if !h.decode(w, r, &req) {
		return
	}

	tokens, err := h.svc.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokens)
}

// ForgotPassword handles POST /auth/forgot-password.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.svc.RequestPasswordReset(r.Context(), req.Email)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, out)
}

// ResetPassword handles POST /auth/reset-password. Without a token the
// authenticated session's password is changed.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.svc.UpdatePassword(r.Context(), auth.UpdatePasswordInput{
		Token:           req.Token,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// VerifyEmail handles POST /auth/verify-email.
func (h *AuthHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if !h.decode(w, r, &req) {
		return
	}

	out, err := h.svc.VerifyEmail(r.Context(), req.Token)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, out)
}

// Session handles GET /api/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	view, err := h.svc.Session(r.Context())
	if err != nil {
		h.errs.present(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *AuthHandler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := decodeJSON(w, r, dst); err != nil {
		writeJSON(w, http.StatusBadRequest, failedOutcome{
			Outcome: auth.Outcome{State: auth.StateFailed, Message: "Invalid request body"},
			Code:    "VALIDATION",
		})
		return false
	}
	return true
}

func (h *AuthHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := h.errs.classify(err)
	if status >= http.StatusInternalServerError {
		h.log.ErrorContext(r.Context(), "auth request failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()))
	}
	writeJSON(w, status, failedOutcome{Outcome: auth.Failed(err), Code: resp.Code})
}
