package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// SignIn authenticates a user with email + password.
// Returns ErrUnauthorized if the email is not found or the password is wrong,
// and ErrEmailNotConfirmed while the confirmation link has not been followed.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	input.Email = domain.NormalizeEmail(input.Email)

	if err := input.Validate(); err != nil {
		return nil, err
	}

	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("auth.SignIn get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	if !user.IsConfirmed() {
		return nil, domain.ErrEmailNotConfirmed
	}

	result, err := s.issueTokens(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn issue tokens: %w", err)
	}

	result.Profile, err = s.loadProfile(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn load profile: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in", slog.String("user_id", user.ID.String()))

	return result, nil
}
