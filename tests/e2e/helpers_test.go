//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/newsqa-backend/internal/app"
	"github.com/heartmarshall/newsqa-backend/internal/config"
	"github.com/heartmarshall/newsqa-backend/internal/event"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	Hub    *event.Hub
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// testConfig mirrors the defaults of config.Load with a test secret and a
// cheap bcrypt cost. The title fetcher is off so that no test leaves the
// machine.
func testConfig(emailConfirmation bool) *config.Config {
	return &config.Config{
		Server: config.ServerConfig{PublicURL: "http://localhost:8080"},
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret-at-least-32-chars-long!!",
			JWTIssuer:         "test-issuer",
			AccessTokenTTL:    15 * time.Minute,
			RefreshTokenTTL:   720 * time.Hour,
			PasswordHashCost:  4,
			EmailConfirmation: emailConfirmation,
			ConfirmationTTL:   time.Hour,
		},
		CORS: config.CORSConfig{
			AllowedOrigins:   "*",
			AllowedMethods:   "GET,POST,PUT,OPTIONS",
			AllowedHeaders:   "Authorization,Content-Type",
			AllowCredentials: true,
			MaxAge:           86400,
		},
		RateLimit: config.RateLimitConfig{
			AuthPerMinute:   1000,
			PostPerMinute:   1000,
			APIPerMinute:    1000,
			CleanupInterval: time.Minute,
		},
		Site: config.SiteConfig{Title: "英語ニュースQA", Timezone: "Asia/Tokyo"},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container (shared via testhelper).
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	return setupTestServerWith(t, testConfig(false))
}

func setupTestServerWith(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	hub := event.NewHub(logger, event.DefaultBuffer)
	handler, limiter := app.NewHandler(logger, cfg, pool, hub, hub, nil)
	t.Cleanup(limiter.Stop)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		Hub:    hub,
	}
}

// ---------------------------------------------------------------------------
// JSON API helpers.
// ---------------------------------------------------------------------------

// apiRequest sends a JSON request to /api and returns the response.
func apiRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+"/api"+path, rd)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	return resp
}

// apiJSON is apiRequest plus status check and decoding.
func apiJSON[T any](t *testing.T, ts *testServer, method, path, token string, body any, wantStatus int) T {
	t.Helper()

	resp := apiRequest(t, ts, method, path, token, body)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, wantStatus, resp.StatusCode, "body: %s", raw)

	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

// ---------------------------------------------------------------------------
// GraphQL helpers.
// ---------------------------------------------------------------------------

type gqlError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path"`
	Extensions map[string]any `json:"extensions"`
}

type gqlResponse[T any] struct {
	Data   T          `json:"data"`
	Errors []gqlError `json:"errors"`
}

// graphQL posts a document to /api/graphql. Field errors come back with
// status 200 and sit in Errors.
func graphQL[T any](t *testing.T, ts *testServer, token, query string, vars map[string]any) gqlResponse[T] {
	t.Helper()

	body := map[string]any{"query": query}
	if vars != nil {
		body["variables"] = vars
	}
	return apiJSON[gqlResponse[T]](t, ts, http.MethodPost, "/graphql", token, body, http.StatusOK)
}

// mustGraphQL is graphQL for documents that must succeed.
func mustGraphQL[T any](t *testing.T, ts *testServer, token, query string, vars map[string]any) T {
	t.Helper()

	resp := graphQL[T](t, ts, token, query, vars)
	require.Empty(t, resp.Errors)
	return resp.Data
}

// errorCode returns the code of the only error in resp.
func errorCode[T any](t *testing.T, resp gqlResponse[T]) string {
	t.Helper()

	require.Len(t, resp.Errors, 1)
	code, _ := resp.Errors[0].Extensions["code"].(string)
	return code
}

type sessionJSON struct {
	SignedIn bool    `json:"signedIn"`
	UserID   *string `json:"userId"`
	Email    *string `json:"email"`
	Nickname *string `json:"nickname"`
	Label    string  `json:"label"`
}

const sessionQuery = `query { session { signedIn userId email nickname label } }`

func currentSession(t *testing.T, ts *testServer, token string) sessionJSON {
	t.Helper()

	data := mustGraphQL[struct {
		Session sessionJSON `json:"session"`
	}](t, ts, token, sessionQuery, nil)
	return data.Session
}

// signUp registers a user through the API and returns the access token.
func signUp(t *testing.T, ts *testServer, email, nickname string) string {
	t.Helper()

	body := apiJSON[map[string]any](t, ts, http.MethodPost, "/auth/signup", "", map[string]string{
		"email":    email,
		"password": "securepassword123",
		"nickname": nickname,
	}, http.StatusCreated)

	token, ok := body["accessToken"].(string)
	require.True(t, ok, "expected accessToken in sign-up response")
	return token
}

// dropProfile removes the user's profile row so that the account has no
// nickname, a state reachable through email confirmation without one.
func dropProfile(t *testing.T, ts *testServer, token string) {
	t.Helper()

	sess := currentSession(t, ts, token)
	require.NotNil(t, sess.UserID, "expected userId in session")

	_, err := ts.Pool.Exec(context.Background(), `DELETE FROM profiles WHERE id = $1`, *sess.UserID)
	require.NoError(t, err)
}

// uniqueEmail keeps tests independent on the shared database.
func uniqueEmail(t *testing.T, prefix string) string {
	t.Helper()
	name := strings.NewReplacer("/", "-", " ", "-").Replace(strings.ToLower(t.Name()))
	return prefix + "-" + name + "-" + time.Now().Format("150405.000000") + "@example.com"
}

// ---------------------------------------------------------------------------
// Browser helpers.
// ---------------------------------------------------------------------------

// browser is an HTTP client with a cookie jar that does not follow
// redirects, so that tests can assert on them.
func browser(t *testing.T, ts *testServer) *http.Client {
	t.Helper()

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &http.Client{
		Transport: ts.Client.Transport,
		Jar:       jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postForm(t *testing.T, c *http.Client, target string, values url.Values) *http.Response {
	t.Helper()
	resp, err := c.PostForm(target, values)
	require.NoError(t, err)
	return resp
}

func getPage(t *testing.T, c *http.Client, target string) (int, string) {
	t.Helper()
	resp, err := c.Get(target)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(b)
}
