package resolver

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/service/article"
	"github.com/heartmarshall/newsqa-backend/internal/service/profile"
	"github.com/heartmarshall/newsqa-backend/internal/service/qa"
	"github.com/heartmarshall/newsqa-backend/internal/transport/graphql"
)

// articleService defines what resolver needs from Article service.
type articleService interface {
	Create(ctx context.Context, input article.CreateInput) (*domain.Article, error)
	List(ctx context.Context) ([]domain.Article, error)
	ListGrouped(ctx context.Context) ([]domain.ArticleGroup, error)
}

// qaService defines what resolver needs from Q&A service.
type qaService interface {
	ArticleDetail(ctx context.Context, articleID uuid.UUID) (*domain.ArticleDetail, error)
	AskQuestion(ctx context.Context, input qa.AskQuestionInput) (*domain.Question, error)
	PostAnswer(ctx context.Context, input qa.PostAnswerInput) (*domain.Answer, error)
}

// profileService defines what resolver needs from Profile service.
type profileService interface {
	Get(ctx context.Context) (*domain.Profile, error)
	SaveNickname(ctx context.Context, input profile.SaveNicknameInput) (*domain.Profile, error)
}

// Resolver is the root resolver containing all service dependencies.
type Resolver struct {
	articles articleService
	qa       qaService
	profile  profileService
	log      *slog.Logger
}

// NewResolver creates a new Resolver with all service dependencies.
func NewResolver(
	log *slog.Logger,
	articles articleService,
	qa qaService,
	profile profileService,
) *Resolver {
	return &Resolver{
		articles: articles,
		qa:       qa,
		profile:  profile,
		log:      log.With("component", "graphql"),
	}
}

var _ graphql.ResolverRoot = (*Resolver)(nil)

// Query returns the Query root resolver.
func (r *Resolver) Query() graphql.QueryResolver { return &queryResolver{r} }

// Mutation returns the Mutation root resolver.
func (r *Resolver) Mutation() graphql.MutationResolver { return &mutationResolver{r} }

// Question returns the Question field resolver.
func (r *Resolver) Question() graphql.QuestionResolver { return &questionResolver{r} }

// Answer returns the Answer field resolver.
func (r *Resolver) Answer() graphql.AnswerResolver { return &answerResolver{r} }

type queryResolver struct{ *Resolver }

type mutationResolver struct{ *Resolver }

type questionResolver struct{ *Resolver }

type answerResolver struct{ *Resolver }
