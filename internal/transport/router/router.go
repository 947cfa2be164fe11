// Package router assembles the HTTP routes. Server-rendered pages live at
// the root, GraphQL and the auth, title lookup and event endpoints live
// under /api, and the health endpoints sit beside them.
package router

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/config"
	"github.com/heartmarshall/newsqa-backend/internal/service/auth"
	"github.com/heartmarshall/newsqa-backend/internal/transport/loader"
	"github.com/heartmarshall/newsqa-backend/internal/transport/middleware"
	"github.com/heartmarshall/newsqa-backend/internal/transport/rest"
	"github.com/heartmarshall/newsqa-backend/internal/transport/session"
	"github.com/heartmarshall/newsqa-backend/internal/transport/web"
)

// sessionService validates access tokens and rotates refresh tokens.
type sessionService interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
	Refresh(ctx context.Context, input auth.RefreshInput) (*auth.AuthResult, error)
}

// Deps is everything the router wires together.
type Deps struct {
	Logger    *slog.Logger
	Sessions  sessionService
	Cookies   *session.Cookies
	Loaders   *loader.Repos
	Limiter   *middleware.RateLimiter
	RateLimit config.RateLimitConfig
	CORS      config.CORSConfig

	Health   *rest.HealthHandler
	Auth     *rest.AuthHandler
	Articles *rest.ArticleHandler
	Events   *rest.EventHandler
	GraphQL  http.Handler
	Web      *web.Handler
}

// New builds the application router.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(chimw.RealIP)
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.Auth(d.Sessions))
	r.Use(middleware.Logger(d.Logger))
	r.Use(loader.Middleware(d.Loaders))

	authLimit := d.Limiter.Limit("auth", d.RateLimit.AuthPerMinute)
	postLimit := d.Limiter.Limit("post", d.RateLimit.PostPerMinute)
	apiLimit := d.Limiter.Limit("api", d.RateLimit.APIPerMinute)

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.CORS(d.CORS))

		r.With(authLimit).Post("/auth/signup", d.Auth.SignUp)
		r.With(authLimit).Post("/auth/signin", d.Auth.SignIn)
		r.With(authLimit).Post("/auth/refresh", d.Auth.Refresh)
		r.Post("/auth/signout", d.Auth.SignOut)
		r.Get("/auth/confirm", d.Auth.Confirm)

		r.With(apiLimit).Handle("/graphql", d.GraphQL)

		r.With(postLimit).Get("/articles/title", d.Articles.SuggestTitle)
		r.Get("/articles/events", d.Events.Articles)
		r.Get("/articles/{id}/events", d.Events.Article)
	})

	r.Group(func(r chi.Router) {
		r.Use(session.Refresh(d.Sessions, d.Cookies, d.Logger))

		r.Get("/", d.Web.Home)
		r.Get("/new-article", d.Web.NewArticle)
		r.With(postLimit).Post("/new-article", d.Web.CreateArticle)
		r.Get("/articles/{id}", d.Web.Article)
		r.With(postLimit).Post("/articles/{id}/questions", d.Web.AskQuestion)
		r.With(postLimit).Post("/questions/{id}/answers", d.Web.PostAnswer)
		r.Get("/auth", d.Web.AuthPage)
		r.With(authLimit).Post("/auth", d.Web.AuthSubmit)
		r.Get("/auth/confirm", d.Web.Confirm)
		r.Get("/profile", d.Web.Profile)
		r.Post("/profile", d.Web.SaveProfile)
		r.Post("/signout", d.Web.SignOut)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	return r
}
