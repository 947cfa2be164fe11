package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/answer"
	articlerepo "github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/article"
	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/confirmation"
	profilerepo "github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/profile"
	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/question"
	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/newsqa-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/newsqa-backend/internal/adapter/provider/readability"
	"github.com/heartmarshall/newsqa-backend/internal/adapter/redis"
	authpkg "github.com/heartmarshall/newsqa-backend/internal/auth"
	"github.com/heartmarshall/newsqa-backend/internal/config"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/event"
	articlesvc "github.com/heartmarshall/newsqa-backend/internal/service/article"
	authsvc "github.com/heartmarshall/newsqa-backend/internal/service/auth"
	profilesvc "github.com/heartmarshall/newsqa-backend/internal/service/profile"
	"github.com/heartmarshall/newsqa-backend/internal/service/qa"
	"github.com/heartmarshall/newsqa-backend/internal/transport/graphql"
	"github.com/heartmarshall/newsqa-backend/internal/transport/graphql/resolver"
	"github.com/heartmarshall/newsqa-backend/internal/transport/loader"
	"github.com/heartmarshall/newsqa-backend/internal/transport/middleware"
	"github.com/heartmarshall/newsqa-backend/internal/transport/rest"
	"github.com/heartmarshall/newsqa-backend/internal/transport/router"
	"github.com/heartmarshall/newsqa-backend/internal/transport/session"
	"github.com/heartmarshall/newsqa-backend/internal/transport/web"
)

// EventPublisher is where services send change events: the local hub, or
// Redis when several instances share the load.
type EventPublisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

type titleFetcher interface {
	FetchTitle(ctx context.Context, rawURL string) (string, error)
}

// Pinger is an optional dependency reported by /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL (and Redis when configured), wires services and handlers and
// serves HTTP until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	// Events: the hub feeds SSE subscribers of this process. With Redis,
	// services publish to Redis and the broker relays every message back
	// into the hub, so each instance sees each event once.
	hub := event.NewHub(logger, event.DefaultBuffer)
	var (
		events EventPublisher = hub
		broker Pinger
	)
	if cfg.Redis.URL != "" {
		b, err := redis.NewBroker(ctx, cfg.Redis.URL, cfg.Redis.Channel, hub, logger)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer b.Close() //nolint:errcheck
		if err := b.Start(ctx); err != nil {
			return err
		}
		events, broker = b, b
	}

	handler, limiter := NewHandler(logger, cfg, pool, hub, events, broker)
	defer limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("stopped")
	return nil
}

// NewHandler wires repositories, services and transport on top of pool.
// Services publish to events; SSE handlers subscribe to hub. broker may be
// nil. The returned limiter must be stopped by the caller.
func NewHandler(
	logger *slog.Logger,
	cfg *config.Config,
	pool *pgxpool.Pool,
	hub *event.Hub,
	events EventPublisher,
	broker Pinger,
) (http.Handler, *middleware.RateLimiter) {
	txm := postgres.NewTxManager(pool)

	users := userrepo.New(pool)
	profiles := profilerepo.New(pool)
	tokens := token.New(pool)
	confirmations := confirmation.New(pool)
	articles := articlerepo.New(pool)
	questions := question.New(pool)
	answers := answer.New(pool)

	var titles titleFetcher
	if cfg.Fetcher.Enabled {
		titles = readability.NewProvider(cfg.Fetcher, logger)
	}

	jwtMgr := authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	authService := authsvc.NewService(logger, users, profiles, tokens, confirmations, txm, jwtMgr,
		cfg.Auth, cfg.Server.PublicURL)
	profileService := profilesvc.NewService(logger, profiles)
	articleService := articlesvc.NewService(logger, articles, titles, events, cfg.Site.Location())
	qaService := qa.NewService(logger, articles, questions, answers, profiles, events)

	cookies := session.NewCookies(cfg.Auth.CookieSecure)
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)

	handler := router.New(router.Deps{
		Logger:    logger,
		Sessions:  authService,
		Cookies:   cookies,
		Loaders:   &loader.Repos{User: users, Profile: profiles},
		Limiter:   limiter,
		RateLimit: cfg.RateLimit,
		CORS:      cfg.CORS,
		Health:    rest.NewHealthHandler(BuildVersion(), pool, broker, hub),
		Auth:      rest.NewAuthHandler(authService, cookies, logger),
		Articles:  rest.NewArticleHandler(articleService, logger),
		Events:    rest.NewEventHandler(hub, rest.DefaultHeartbeat, logger),
		GraphQL: graphql.NewHandler(graphql.NewExecutableSchema(graphql.Config{
			Resolvers: resolver.NewResolver(logger, articleService, qaService, profileService),
		}), logger),
		Web: web.NewHandler(logger, articleService, qaService, authService, profileService, cookies,
			web.Site{Title: cfg.Site.Title, Location: cfg.Site.Location()}),
	})

	return handler, limiter
}
