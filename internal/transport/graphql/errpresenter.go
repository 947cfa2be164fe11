package graphql

import (
	"context"
	"errors"
	"log/slog"

	"github.com/99designs/gqlgen/graphql"
	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/pkg/ctxutil"
)

// NewErrorPresenter returns a gqlgen error presenter that maps domain errors
// to GraphQL error codes.
func NewErrorPresenter(log *slog.Logger) graphql.ErrorPresenterFunc {
	return func(ctx context.Context, err error) *gqlerror.Error {
		gqlErr := graphql.DefaultErrorPresenter(ctx, err)

		// Parse and validation errors carry no cause and are safe to show.
		var reqErr *gqlerror.Error
		if errors.As(err, &reqErr) && reqErr.Unwrap() == nil {
			return gqlErr
		}

		var ve *domain.ValidationError
		switch {
		case errors.As(err, &ve):
			fields := make([]map[string]string, len(ve.Errors))
			for i, fe := range ve.Errors {
				fields[i] = map[string]string{"field": fe.Field, "message": fe.Message}
			}
			gqlErr.Extensions = map[string]any{"code": "VALIDATION", "fields": fields}

		case errors.Is(err, domain.ErrValidation):
			gqlErr.Extensions = map[string]any{"code": "VALIDATION"}

		case errors.Is(err, domain.ErrUnauthorized):
			gqlErr.Message = "unauthorized"
			gqlErr.Extensions = map[string]any{"code": "UNAUTHENTICATED", "redirect": "/auth"}

		case errors.Is(err, domain.ErrNicknameRequired):
			gqlErr.Message = "nickname required"
			gqlErr.Extensions = map[string]any{"code": "NICKNAME_REQUIRED", "redirect": "/profile"}

		case errors.Is(err, domain.ErrEmailNotConfirmed):
			gqlErr.Extensions = map[string]any{"code": "EMAIL_NOT_CONFIRMED"}

		case errors.Is(err, domain.ErrForbidden):
			gqlErr.Extensions = map[string]any{"code": "FORBIDDEN"}

		case errors.Is(err, domain.ErrNotFound):
			gqlErr.Message = "not found"
			gqlErr.Extensions = map[string]any{"code": "NOT_FOUND"}

		case errors.Is(err, domain.ErrAlreadyExists):
			gqlErr.Extensions = map[string]any{"code": "ALREADY_EXISTS"}

		case errors.Is(err, domain.ErrConflict):
			gqlErr.Extensions = map[string]any{"code": "CONFLICT"}

		default:
			// Unexpected error: log it, return generic message to client.
			log.ErrorContext(ctx, "unexpected GraphQL error",
				slog.String("error", err.Error()),
				slog.String("request_id", ctxutil.RequestIDFromCtx(ctx)),
			)
			gqlErr.Message = "internal error"
			gqlErr.Extensions = map[string]any{"code": "INTERNAL"}
		}

		return gqlErr
	}
}
