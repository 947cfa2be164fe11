// Package qa implements the article page: reading an article with its
// questions and answers, and posting to it.
package qa

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type articleRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
}

type questionRepo interface {
	Create(ctx context.Context, articleID, userID uuid.UUID, phrase string, comment *string) (*domain.Question, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error)
	ListByArticle(ctx context.Context, articleID uuid.UUID) ([]domain.Question, error)
}

type answerRepo interface {
	Create(ctx context.Context, a *domain.Answer) (*domain.Answer, error)
	ListByQuestionIDs(ctx context.Context, questionIDs []uuid.UUID) ([]domain.Answer, error)
}

type profileRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error)
}

type publisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the Q&A business logic.
type Service struct {
	log       *slog.Logger
	articles  articleRepo
	questions questionRepo
	answers   answerRepo
	profiles  profileRepo
	events    publisher
}

// NewService creates a new Q&A service. events may be nil.
func NewService(
	logger *slog.Logger,
	articles articleRepo,
	questions questionRepo,
	answers answerRepo,
	profiles profileRepo,
	events publisher,
) *Service {
	return &Service{
		log:       logger.With("service", "qa"),
		articles:  articles,
		questions: questions,
		answers:   answers,
		profiles:  profiles,
		events:    events,
	}
}

func (s *Service) publish(ctx context.Context, e domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.WarnContext(ctx, "publish event failed",
			slog.String("kind", string(e.Kind)),
			slog.String("article_id", e.ArticleID.String()),
			slog.String("error", err.Error()))
	}
}
