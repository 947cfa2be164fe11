package resolver

import (
	"context"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/transport/loader"
)

// Author loads the asker's profile. All authors on a page share one batch.
func (r *questionResolver) Author(ctx context.Context, obj *domain.Question) (*domain.Profile, error) {
	return loader.FromContext(ctx).ProfileByID.Load(ctx, obj.UserID)()
}

// Author loads the answerer's profile.
func (r *answerResolver) Author(ctx context.Context, obj *domain.Answer) (*domain.Profile, error) {
	return loader.FromContext(ctx).ProfileByID.Load(ctx, obj.UserID)()
}
