package profile

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by profile service.
type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
	Upsert(ctx context.Context, id uuid.UUID, username *string) (*domain.Profile, error)
}

// Service implements nickname read and save for the session user.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
}

// NewService creates a new profile service instance.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "profile"),
		profiles: profiles,
	}
}
