package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/service/auth"
)

const (
	modeSignUp = "signup"
	modeSignIn = "signin"
)

type authView struct {
	Mode    string
	Form    form
	Message string
}

func (v authView) SignUp() bool { return v.Mode == modeSignUp }

func authMode(raw string) string {
	if raw == modeSignIn {
		return modeSignIn
	}
	return modeSignUp
}

func authTitle(mode string) string {
	if mode == modeSignIn {
		return "ログイン"
	}
	return "新規登録"
}

// AuthPage handles GET /auth?mode=signup|signin.
func (h *Handler) AuthPage(w http.ResponseWriter, r *http.Request) {
	mode := authMode(r.URL.Query().Get("mode"))
	h.render(w, r, http.StatusOK, pageAuth, authTitle(mode), "", authView{Mode: mode})
}

// AuthSubmit handles POST /auth for both modes.
func (h *Handler) AuthSubmit(w http.ResponseWriter, r *http.Request) {
	mode := authMode(r.PostFormValue("mode"))
	f := newForm(r, "email", "nickname")
	password := r.PostFormValue("password")

	if mode == modeSignIn {
		h.signIn(w, r, f, password)
		return
	}
	h.signUp(w, r, f, password)
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request, f form, password string) {
	res, err := h.auth.SignUp(r.Context(), auth.SignUpInput{
		Email:    f.Get("email"),
		Password: password,
		Nickname: f.Get("nickname"),
	})
	if err != nil {
		var status int
		switch {
		case errors.Is(err, domain.ErrAlreadyExists):
			status, f.Errors = http.StatusConflict, []string{msgEmailTaken}
		default:
			status, f.Errors = h.formError(r, err, msgGeneric)
		}
		h.render(w, r, status, pageAuth, authTitle(modeSignUp), "", authView{Mode: modeSignUp, Form: f})
		return
	}

	if res.Pending {
		h.render(w, r, http.StatusAccepted, pageAuth, authTitle(modeSignUp), "",
			authView{Mode: modeSignIn, Message: msgPending})
		return
	}

	h.cookies.Set(w, res.Session)
	redirect(w, r, "/")
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request, f form, password string) {
	res, err := h.auth.SignIn(r.Context(), auth.SignInInput{Email: f.Get("email"), Password: password})
	if err != nil {
		var status int
		switch {
		case errors.Is(err, domain.ErrUnauthorized):
			status, f.Errors = http.StatusUnauthorized, []string{msgBadCredentials}
		case errors.Is(err, domain.ErrEmailNotConfirmed):
			status, f.Errors = http.StatusForbidden, []string{msgNotConfirmed}
		default:
			status, f.Errors = h.formError(r, err, msgGeneric)
		}
		h.render(w, r, status, pageAuth, authTitle(modeSignIn), "", authView{Mode: modeSignIn, Form: f})
		return
	}

	h.cookies.Set(w, res)
	redirect(w, r, afterSignIn(res))
}

// Confirm handles GET /auth/confirm?token=.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request) {
	res, err := h.auth.Confirm(r.Context(), r.URL.Query().Get("token"))
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, domain.ErrUnauthorized) {
			h.log.ErrorContext(r.Context(), "confirm email", slog.String("error", err.Error()))
			status = http.StatusInternalServerError
		}
		h.render(w, r, status, pageAuth, authTitle(modeSignIn), "",
			authView{Mode: modeSignIn, Form: form{Errors: []string{msgBadConfirm}}})
		return
	}

	h.cookies.Set(w, res)
	redirect(w, r, afterSignIn(res))
}

// SignOut handles POST /signout. Cookies are cleared whatever the outcome.
func (h *Handler) SignOut(w http.ResponseWriter, r *http.Request) {
	h.cookies.Clear(w)

	if err := h.auth.SignOut(r.Context()); err != nil && !errors.Is(err, domain.ErrUnauthorized) {
		h.log.ErrorContext(r.Context(), "sign out", slog.String("error", err.Error()))
	}
	redirect(w, r, "/")
}

func afterSignIn(res *auth.AuthResult) string {
	if res.NeedsNickname() {
		return "/profile?notice=nickname"
	}
	return "/"
}
