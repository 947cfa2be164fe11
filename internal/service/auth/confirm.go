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

// Confirm completes a pending sign-up: it marks the user confirmed, stores
// the nickname given at sign-up, consumes the link and opens a session.
// Unknown or expired links yield ErrUnauthorized.
func (s *Service) Confirm(ctx context.Context, rawToken string) (*AuthResult, error) {
	if rawToken == "" || len(rawToken) > 512 {
		return nil, domain.ErrUnauthorized
	}

	hash := auth.HashToken(rawToken)

	pending, err := s.confirmations.GetByHash(ctx, hash)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.Confirm get confirmation: %w", err)
	}

	if pending.IsExpired(time.Now()) {
		if err := s.confirmations.Delete(ctx, hash); err != nil {
			s.log.WarnContext(ctx, "delete expired confirmation", slog.String("error", err.Error()))
		}
		return nil, domain.ErrUnauthorized
	}

	var profile *domain.Profile
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.users.MarkConfirmed(txCtx, pending.UserID); err != nil {
			return fmt.Errorf("mark confirmed: %w", err)
		}
		if pending.Nickname != nil && *pending.Nickname != "" {
			p, err := s.profiles.Upsert(txCtx, pending.UserID, pending.Nickname)
			if err != nil {
				return fmt.Errorf("create profile: %w", err)
			}
			profile = p
		}
		if err := s.confirmations.Delete(txCtx, hash); err != nil {
			return fmt.Errorf("delete confirmation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("auth.Confirm: %w", err)
	}

	user, err := s.users.GetByID(ctx, pending.UserID)
	if err != nil {
		return nil, fmt.Errorf("auth.Confirm get user: %w", err)
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.Confirm issue tokens: %w", err)
	}
	if profile == nil {
		profile = &domain.Profile{ID: user.ID}
	}
	result.Profile = profile

	s.log.InfoContext(ctx, "email confirmed", slog.String("user_id", user.ID.String()))

	return result, nil
}
