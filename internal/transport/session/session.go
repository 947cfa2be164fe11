// Package session keeps the browser session in cookies: it writes the token
// pair after sign-in, clears it on sign-out and silently rotates an expired
// access cookie using the refresh cookie.
package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/service/auth"
	"github.com/heartmarshall/newsqa-backend/internal/transport/middleware"
	"github.com/heartmarshall/newsqa-backend/pkg/ctxutil"
)

type refresher interface {
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
}

// Cookies writes and clears the session cookies.
type Cookies struct {
	secure bool
}

// NewCookies creates a cookie writer. secure sets the Secure attribute.
func NewCookies(secure bool) *Cookies {
	return &Cookies{secure: secure}
}

// Set stores the token pair of a fresh session.
func (c *Cookies) Set(w http.ResponseWriter, res *auth.AuthResult) {
	http.SetCookie(w, c.cookie(middleware.AccessCookie, res.AccessToken, res.RefreshExpiresAt))
	http.SetCookie(w, c.cookie(middleware.RefreshCookie, res.RefreshToken, res.RefreshExpiresAt))
}

// Clear expires both session cookies.
func (c *Cookies) Clear(w http.ResponseWriter) {
	for _, name := range []string{middleware.AccessCookie, middleware.RefreshCookie} {
		ck := c.cookie(name, "", time.Unix(0, 0))
		ck.MaxAge = -1
		http.SetCookie(w, ck)
	}
}

// The access cookie outlives its JWT on purpose: an expired token in the
// cookie is what triggers the silent refresh.
func (c *Cookies) cookie(name, value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// RefreshToken returns the raw refresh cookie or "".
func RefreshToken(r *http.Request) string {
	ck, err := r.Cookie(middleware.RefreshCookie)
	if err != nil {
		return ""
	}
	return ck.Value
}

// Refresh returns middleware that runs after middleware.Auth. When the
// request carries no valid access token but has a refresh cookie, it rotates
// the pair, writes the new cookies and continues as the refreshed user.
// A rejected refresh cookie is cleared.
func Refresh(svc refresher, cookies *Cookies, logger *slog.Logger) middleware.Middleware {
	log := logger.With("middleware", "session")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			raw := RefreshToken(r)
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			res, err := svc.Refresh(r.Context(), auth.RefreshInput{RefreshToken: raw})
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) || errors.Is(err, domain.ErrValidation) {
					cookies.Clear(w)
				} else {
					log.WarnContext(r.Context(), "session refresh failed", slog.String("error", err.Error()))
				}
				next.ServeHTTP(w, r)
				return
			}

			cookies.Set(w, res)
			ctx := ctxutil.WithUserID(r.Context(), res.User.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
