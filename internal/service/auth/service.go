// Package auth implements sign-up, sign-in, e-mail confirmation and session
// rotation.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/config"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	MarkConfirmed(ctx context.Context, id uuid.UUID) error
}

// profileRepo defines the profile repository interface needed by auth service.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, id uuid.UUID, username *string) (*domain.Profile, error)
}

// tokenRepo defines the refresh token repository interface needed by auth service.
type tokenRepo interface {
	Create(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) (*domain.RefreshToken, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error)
	RevokeByID(ctx context.Context, id uuid.UUID) error
	RevokeAllByUser(ctx context.Context, userID uuid.UUID) error
	DeleteExpired(ctx context.Context) (int, error)
}

// confirmationRepo defines the pending sign-up storage needed by auth service.
type confirmationRepo interface {
	Create(ctx context.Context, c *domain.EmailConfirmation) (*domain.EmailConfirmation, error)
	GetByHash(ctx context.Context, tokenHash string) (*domain.EmailConfirmation, error)
	Delete(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context) (int, error)
}

// txManager defines the transaction manager interface needed by auth service.
type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// jwtManager defines the JWT token management interface needed by auth service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID) (string, error)
	ValidateAccessToken(token string) (uuid.UUID, error)
	GenerateRefreshToken() (raw string, hash string, err error)
}

// Service implements auth operations.
type Service struct {
	log           *slog.Logger
	users         userRepo
	profiles      profileRepo
	tokens        tokenRepo
	confirmations confirmationRepo
	tx            txManager
	jwt           jwtManager
	cfg           config.AuthConfig
	publicURL     string
}

// NewService creates a new auth service instance. publicURL is the base of
// the confirmation links written to the log.
func NewService(
	logger *slog.Logger,
	users userRepo,
	profiles profileRepo,
	tokens tokenRepo,
	confirmations confirmationRepo,
	tx txManager,
	jwt jwtManager,
	cfg config.AuthConfig,
	publicURL string,
) *Service {
	return &Service{
		log:           logger.With("service", "auth"),
		users:         users,
		profiles:      profiles,
		tokens:        tokens,
		confirmations: confirmations,
		tx:            tx,
		jwt:           jwt,
		cfg:           cfg,
		publicURL:     publicURL,
	}
}

// issueTokens generates access and refresh tokens for the given user, stores
// the refresh token hash in DB, and returns an AuthResult.
func (s *Service) issueTokens(ctx context.Context, user *domain.User) (*AuthResult, error) {
	accessToken, err := s.jwt.GenerateAccessToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	rawRefresh, hashRefresh, err := s.jwt.GenerateRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token: %w", err)
	}

	now := time.Now()
	refreshExpires := now.Add(s.cfg.RefreshTokenTTL)
	if _, err := s.tokens.Create(ctx, user.ID, hashRefresh, refreshExpires); err != nil {
		return nil, fmt.Errorf("store refresh token: %w", err)
	}

	return &AuthResult{
		AccessToken:      accessToken,
		RefreshToken:     rawRefresh,
		AccessExpiresAt:  now.Add(s.cfg.AccessTokenTTL),
		RefreshExpiresAt: refreshExpires,
		User:             user,
	}, nil
}

// loadProfile returns the user's profile, or an empty one when none exists.
func (s *Service) loadProfile(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.Profile{ID: userID}, nil
		}
		return nil, err
	}
	return p, nil
}
