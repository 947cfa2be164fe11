package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/newsqa-backend/internal/service/auth"
	"github.com/heartmarshall/newsqa-backend/internal/transport/session"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	SignUp(ctx context.Context, input auth.SignUpInput) (*auth.SignUpResult, error)
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
	Confirm(ctx context.Context, token string) (*auth.AuthResult, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
	SignOut(ctx context.Context) error
}

// AuthHandler serves auth REST endpoints. Successful sign-ins also set the
// session cookies so that a browser client can switch to the pages.
type AuthHandler struct {
	svc     authService
	cookies *session.Cookies
	log     *slog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(svc authService, cookies *session.Cookies, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, cookies: cookies, log: logger.With("handler", "auth")}
}

type signUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname"`
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// SignUp handles POST /auth/signup. 201 with a session, or 202 when the
// address still has to be confirmed.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.SignUp(r.Context(), auth.SignUpInput{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if res.Pending {
		writeJSON(w, http.StatusAccepted, pendingResponse{Pending: true, Email: res.Email})
		return
	}

	h.cookies.Set(w, res.Session)
	writeJSON(w, http.StatusCreated, toAuthResponse(res.Session))
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.svc.SignIn(r.Context(), auth.SignInInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.cookies.Set(w, res)
	writeJSON(w, http.StatusOK, toAuthResponse(res))
}

// Confirm handles GET /auth/confirm?token=.
func (h *AuthHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Confirm(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.cookies.Set(w, res)
	writeJSON(w, http.StatusOK, toAuthResponse(res))
}

// Refresh handles POST /auth/refresh. The token comes from the body or,
// when the body has none, from the refresh cookie.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req refreshRequest
	if r.ContentLength != 0 && !decodeJSON(w, r, &req) {
		return
	}
	if req.RefreshToken == "" {
		req.RefreshToken = session.RefreshToken(r)
	}

	res, err := h.svc.Refresh(r.Context(), auth.RefreshInput{RefreshToken: req.RefreshToken})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	h.cookies.Set(w, res)
	writeJSON(w, http.StatusOK, toAuthResponse(res))
}

// SignOut handles POST /auth/signout. Cookies are cleared even when no
// session was found.
func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)

	if err := h.svc.SignOut(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
