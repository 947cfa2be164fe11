package resolver

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/transport/loader"
)

// Session resolves the header viewer through the request's loaders, so the
// lookup is shared with anything else on the request asking for it.
func (r *queryResolver) Session(ctx context.Context) (*domain.Viewer, error) {
	return loader.FromContext(ctx).Viewer(ctx)
}

func (r *queryResolver) Profile(ctx context.Context) (*domain.Profile, error) {
	return r.profile.Get(ctx)
}

func (r *queryResolver) Articles(ctx context.Context) ([]domain.Article, error) {
	return r.articles.List(ctx)
}

func (r *queryResolver) ArticleGroups(ctx context.Context) ([]domain.ArticleGroup, error) {
	return r.articles.ListGrouped(ctx)
}

func (r *queryResolver) Article(ctx context.Context, id uuid.UUID) (*domain.ArticleDetail, error) {
	return r.qa.ArticleDetail(ctx, id)
}
