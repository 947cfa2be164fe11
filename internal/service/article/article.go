package article

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/pkg/ctxutil"
)

// Create registers an article. A session is required; a nickname is not.
// An empty title is filled from the page when the fetcher is on; a failed
// fetch leaves it empty.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Article, error) {
	input.normalize()

	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	title := domain.OptionalText(input.Title)
	if title == nil && s.titles != nil {
		fetched, err := s.titles.FetchTitle(ctx, input.URL)
		if err != nil {
			s.log.WarnContext(ctx, "title fetch failed",
				slog.String("url", input.URL),
				slog.String("error", err.Error()))
		} else {
			title = domain.OptionalText(fetched)
		}
	}

	a, err := s.articles.Create(ctx, title, &input.URL)
	if err != nil {
		return nil, fmt.Errorf("article.Create: %w", err)
	}

	s.publish(ctx, domain.NewEvent(domain.EventArticlesChanged, a.ID))

	s.log.InfoContext(ctx, "article created",
		slog.String("article_id", a.ID.String()),
		slog.String("user_id", userID.String()))

	return a, nil
}

// SuggestTitle fetches the readable title of rawURL for the form. Like
// Create it needs a session, so anonymous callers cannot drive the fetcher.
// Returns ErrNotFound when lookup is off or the page has no usable title.
func (s *Service) SuggestTitle(ctx context.Context, rawURL string) (string, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return "", domain.ErrUnauthorized
	}

	rawURL = strings.TrimSpace(rawURL)
	if errs := appendURLErrors(nil, rawURL); len(errs) > 0 {
		return "", domain.NewValidationErrors(errs)
	}

	if s.titles == nil {
		return "", domain.ErrNotFound
	}

	title, err := s.titles.FetchTitle(ctx, rawURL)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("article.SuggestTitle: %w", ctx.Err())
		}
		s.log.WarnContext(ctx, "title suggestion failed",
			slog.String("url", rawURL),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("article.SuggestTitle: %w", domain.ErrNotFound)
	}

	return title, nil
}

// publish delivers a change signal. Delivery failures are logged only: the
// row is already stored and listeners catch up on their next load.
func (s *Service) publish(ctx context.Context, e domain.Event) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, e); err != nil {
		s.log.WarnContext(ctx, "publish event failed",
			slog.String("kind", string(e.Kind)),
			slog.String("error", err.Error()))
	}
}
