package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/pkg/ctxutil"
)

// SignOut revokes all refresh tokens for the authenticated user.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) SignOut(ctx context.Context) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.tokens.RevokeAllByUser(ctx, userID); err != nil {
		return fmt.Errorf("auth.SignOut: %w", err)
	}

	s.log.InfoContext(ctx, "user signed out", slog.String("user_id", userID.String()))
	return nil
}

// ValidateToken validates an access token and returns the user ID.
// Returns ErrUnauthorized if the token is invalid or expired.
func (s *Service) ValidateToken(_ context.Context, token string) (uuid.UUID, error) {
	userID, err := s.jwt.ValidateAccessToken(token)
	if err != nil {
		return uuid.Nil, domain.ErrUnauthorized
	}
	return userID, nil
}

// CleanupExpired removes expired or revoked refresh tokens and expired
// confirmation links. This is a maintenance operation.
func (s *Service) CleanupExpired(ctx context.Context) (tokens int, confirmations int, err error) {
	tokens, err = s.tokens.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "token cleanup failed", slog.String("error", err.Error()))
		return 0, 0, fmt.Errorf("auth.CleanupExpired tokens: %w", err)
	}

	confirmations, err = s.confirmations.DeleteExpired(ctx)
	if err != nil {
		s.log.ErrorContext(ctx, "confirmation cleanup failed", slog.String("error", err.Error()))
		return tokens, 0, fmt.Errorf("auth.CleanupExpired confirmations: %w", err)
	}

	if tokens > 0 || confirmations > 0 {
		s.log.InfoContext(ctx, "cleaned up expired credentials",
			slog.Int("tokens", tokens),
			slog.Int("confirmations", confirmations),
		)
	}

	return tokens, confirmations, nil
}
