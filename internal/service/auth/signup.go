package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/newsqa-backend/internal/auth"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// SignUp creates a user with e-mail + password and stores the nickname.
// Without e-mail confirmation the profile is written in the same transaction
// and a session is returned. With confirmation enabled a pending
// confirmation holds the nickname until Confirm is called.
// Returns ErrAlreadyExists if the email is already registered.
func (s *Service) SignUp(ctx context.Context, input SignUpInput) (*SignUpResult, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cfg.PasswordHashCost)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp hash password: %w", err)
	}

	var (
		created     *domain.User
		profile     *domain.Profile
		rawConfirm  string
		needConfirm = s.cfg.EmailConfirmation
	)

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		newUser := &domain.User{
			Email:        input.Email,
			PasswordHash: string(hash),
		}
		if !needConfirm {
			now := time.Now()
			newUser.ConfirmedAt = &now
		}

		user, err := s.users.Create(txCtx, newUser)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		created = user

		nickname := input.Nickname
		if !needConfirm {
			profile, err = s.profiles.Upsert(txCtx, user.ID, &nickname)
			if err != nil {
				return fmt.Errorf("create profile: %w", err)
			}
			return nil
		}

		raw, tokenHash, err := auth.NewOpaqueToken()
		if err != nil {
			return fmt.Errorf("generate confirmation token: %w", err)
		}
		_, err = s.confirmations.Create(txCtx, &domain.EmailConfirmation{
			TokenHash: tokenHash,
			UserID:    user.ID,
			Nickname:  &nickname,
			ExpiresAt: time.Now().Add(s.cfg.ConfirmationTTL),
		})
		if err != nil {
			return fmt.Errorf("create confirmation: %w", err)
		}
		rawConfirm = raw
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("auth.SignUp: %w", domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("auth.SignUp: %w", err)
	}

	if needConfirm {
		// No mailer: the link goes to the log for the operator to deliver.
		s.log.InfoContext(ctx, "confirmation link issued",
			slog.String("user_id", created.ID.String()),
			slog.String("email", created.Email),
			slog.String("link", s.confirmationLink(rawConfirm)),
		)
		return &SignUpResult{Pending: true, Email: created.Email}, nil
	}

	result, err := s.issueTokens(ctx, created)
	if err != nil {
		return nil, fmt.Errorf("auth.SignUp issue tokens: %w", err)
	}
	result.Profile = profile

	s.log.InfoContext(ctx, "user signed up", slog.String("user_id", created.ID.String()))

	return &SignUpResult{Email: created.Email, Session: result}, nil
}

func (s *Service) confirmationLink(raw string) string {
	return strings.TrimRight(s.publicURL, "/") + "/auth/confirm?token=" + url.QueryEscape(raw)
}
