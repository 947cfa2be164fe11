package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/newsqa-backend/internal/auth"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// Refresh rotates a refresh token: the presented token is revoked and a new
// pair is issued in the same transaction. Unknown, revoked and expired
// tokens, deleted users and unconfirmed sign-ups all end in ErrUnauthorized,
// which sends the browser back to the sign-in page.
func (s *Service) Refresh(ctx context.Context, input RefreshInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	token, err := s.tokens.GetByHash(ctx, auth.HashToken(input.RefreshToken))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "unknown or revoked refresh token presented")
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Refresh get token: %w", err)
	}
	if token.IsExpired(time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, token.UserID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		s.log.WarnContext(ctx, "refresh for deleted user", slog.String("user_id", token.UserID.String()))
		return nil, domain.ErrUnauthorized
	case err != nil:
		return nil, fmt.Errorf("auth.Refresh get user: %w", err)
	case !user.IsConfirmed():
		return nil, domain.ErrUnauthorized
	}

	var result *AuthResult
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.tokens.RevokeByID(txCtx, token.ID); err != nil {
			return fmt.Errorf("revoke token: %w", err)
		}
		result, err = s.issueTokens(txCtx, user)
		return err
	})
	if errors.Is(err, domain.ErrNotFound) {
		// Another request rotated this token between lookup and revoke.
		s.log.WarnContext(ctx, "refresh token reused",
			slog.String("user_id", user.ID.String()),
			slog.String("token_id", token.ID.String()))
		return nil, domain.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh: %w", err)
	}

	result.Profile, err = s.loadProfile(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.Refresh load profile: %w", err)
	}
	return result, nil
}
