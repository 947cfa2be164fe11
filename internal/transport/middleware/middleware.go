// Package middleware holds the HTTP middleware shared by the API and the
// server-rendered pages.
package middleware

import (
	"net/http"
	"strings"
)

// Middleware is a function that wraps an http.Handler.
type Middleware func(http.Handler) http.Handler

// isAPI reports whether the request targets the JSON API rather than a page.
func isAPI(r *http.Request) bool {
	return r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/")
}
