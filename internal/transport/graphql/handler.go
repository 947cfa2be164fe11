// Package graphql serves the article, Q&A, profile and session API over
// GraphQL. The schema lives in schema.graphqls; resolvers in the resolver
// package.
package graphql

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/99designs/gqlgen/graphql"
	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/handler/transport"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/newsqa-backend/pkg/ctxutil"
)

// NewHandler serves es over POST, and over GET for queries.
func NewHandler(es graphql.ExecutableSchema, log *slog.Logger) *handler.Server {
	srv := handler.New(es)

	srv.AddTransport(transport.Options{})
	srv.AddTransport(transport.GET{})
	srv.AddTransport(transport.POST{})

	srv.SetErrorPresenter(NewErrorPresenter(log))
	srv.SetRecoverFunc(func(ctx context.Context, p any) error {
		log.ErrorContext(ctx, "panic in resolver",
			slog.String("panic", fmt.Sprint(p)),
			slog.String("stack", string(debug.Stack())),
			slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
		)
		return &gqlerror.Error{
			Message:    "internal error",
			Extensions: map[string]any{"code": "INTERNAL"},
		}
	})

	return srv
}
