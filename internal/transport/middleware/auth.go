package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/pkg/ctxutil"
)

// Session cookie names shared by the page and API handlers.
const (
	AccessCookie  = "newsqa_access"
	RefreshCookie = "newsqa_refresh"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Auth resolves the session user from a Bearer header or, failing that, the
// access cookie. Requests without credentials pass through anonymously.
// A bad Bearer token is rejected with 401; a bad cookie is ignored so that
// the page session middleware can refresh it.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token := extractBearerToken(r); token != "" {
				userID, err := validator.ValidateToken(r.Context(), token)
				if err != nil {
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = w.Write([]byte(`{"error":"unauthorized","redirect":"/auth"}`))
					return
				}
				next.ServeHTTP(w, r.WithContext(ctxutil.WithSession(r.Context(), userID, ctxutil.SessionBearer)))
				return
			}

			c, err := r.Cookie(AccessCookie)
			if err != nil || c.Value == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			userID, err := validator.ValidateToken(r.Context(), c.Value)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(ctxutil.WithSession(r.Context(), userID, ctxutil.SessionCookie)))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	const prefix = "bearer "
	if len(auth) < len(prefix) || !strings.EqualFold(auth[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(auth[len(prefix):])
}
