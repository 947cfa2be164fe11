package resolver

import (
	"context"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/internal/service/article"
	"github.com/heartmarshall/newsqa-backend/internal/service/profile"
	"github.com/heartmarshall/newsqa-backend/internal/service/qa"
	"github.com/heartmarshall/newsqa-backend/internal/transport/graphql/model"
	"github.com/heartmarshall/newsqa-backend/internal/transport/loader"
)

func (r *mutationResolver) CreateArticle(ctx context.Context, input model.CreateArticleInput) (*domain.Article, error) {
	return r.articles.Create(ctx, article.CreateInput{
		URL:   input.URL,
		Title: model.Deref(input.Title),
	})
}

func (r *mutationResolver) AskQuestion(ctx context.Context, input model.AskQuestionInput) (*domain.Question, error) {
	return r.qa.AskQuestion(ctx, qa.AskQuestionInput{
		ArticleID: input.ArticleID,
		Phrase:    input.Phrase,
		Comment:   model.Deref(input.Comment),
	})
}

func (r *mutationResolver) PostAnswer(ctx context.Context, input model.PostAnswerInput) (*domain.Answer, error) {
	return r.qa.PostAnswer(ctx, qa.PostAnswerInput{
		QuestionID: input.QuestionID,
		Phrase:     model.Deref(input.Phrase),
		Meaning:    model.Deref(input.Meaning),
		Nuance:     model.Deref(input.Nuance),
	})
}

// SaveNickname saves the nickname and drops the cached profile so that a
// session field later in the request shows the new label.
func (r *mutationResolver) SaveNickname(ctx context.Context, input model.SaveNicknameInput) (*domain.Profile, error) {
	p, err := r.profile.SaveNickname(ctx, profile.SaveNicknameInput{Nickname: input.Nickname})
	if err != nil {
		return nil, err
	}
	loader.FromContext(ctx).ForgetProfile(ctx, p.ID)
	return p, nil
}
