package article

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type articleRepo interface {
	Create(ctx context.Context, title, url *string) (*domain.Article, error)
	List(ctx context.Context) ([]domain.Article, error)
}

// titleFetcher extracts a readable title from a page.
type titleFetcher interface {
	FetchTitle(ctx context.Context, rawURL string) (string, error)
}

type publisher interface {
	Publish(ctx context.Context, e domain.Event) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements article registration and listing.
type Service struct {
	log      *slog.Logger
	articles articleRepo
	titles   titleFetcher
	events   publisher
	loc      *time.Location
}

// NewService creates a new article service. titles may be nil, which turns
// off title lookup. loc is the timezone used to group the list by date.
func NewService(
	logger *slog.Logger,
	articles articleRepo,
	titles titleFetcher,
	events publisher,
	loc *time.Location,
) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		log:      logger.With("service", "article"),
		articles: articles,
		titles:   titles,
		events:   events,
		loc:      loc,
	}
}
