package profile

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/pkg/ctxutil"
)

// Get returns the authenticated user's profile. A user who never saved a
// nickname gets an empty profile, not ErrNotFound.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) Get(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Profile{ID: userID}, nil
		}
		return nil, fmt.Errorf("profile.Get: %w", err)
	}

	return p, nil
}

// SaveNickname upserts the authenticated user's nickname.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) SaveNickname(ctx context.Context, input SaveNicknameInput) (*domain.Profile, error) {
	input.Nickname = domain.NormalizeNickname(input.Nickname)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.Upsert(ctx, userID, &input.Nickname)
	if err != nil {
		return nil, fmt.Errorf("profile.SaveNickname: %w", err)
	}

	s.log.InfoContext(ctx, "nickname saved",
		slog.String("user_id", userID.String()))

	return p, nil
}
