package article

import (
	"context"
	"fmt"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// List returns every article, newest first.
func (s *Service) List(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.articles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("article.List: %w", err)
	}
	return articles, nil
}

// ListGrouped returns the same list split into calendar days of the site timezone.
func (s *Service) ListGrouped(ctx context.Context) ([]domain.ArticleGroup, error) {
	articles, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.GroupArticlesByDate(articles, s.loc), nil
}
