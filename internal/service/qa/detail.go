package qa

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// ArticleDetail loads an article with its questions (oldest first) and the
// answers to each. The article and its questions load in parallel; answers
// for all questions come from a single batch query.
func (s *Service) ArticleDetail(ctx context.Context, articleID uuid.UUID) (*domain.ArticleDetail, error) {
	if articleID == uuid.Nil {
		return nil, fmt.Errorf("qa.ArticleDetail: %w", domain.ErrNotFound)
	}

	var (
		article   *domain.Article
		questions []domain.Question
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		article, err = s.articles.GetByID(gctx, articleID)
		if err != nil {
			return fmt.Errorf("get article: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		questions, err = s.questions.ListByArticle(gctx, articleID)
		if err != nil {
			return fmt.Errorf("list questions: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("qa.ArticleDetail: %w", err)
	}

	answers := []domain.Answer{}
	if len(questions) > 0 {
		ids := make([]uuid.UUID, len(questions))
		for i, q := range questions {
			ids[i] = q.ID
		}

		var err error
		answers, err = s.answers.ListByQuestionIDs(ctx, ids)
		if err != nil {
			return nil, fmt.Errorf("qa.ArticleDetail list answers: %w", err)
		}
		for i := range answers {
			answers[i].ArticleID = articleID
		}
	}

	return &domain.ArticleDetail{
		Article:   *article,
		Questions: domain.GroupAnswers(questions, answers),
	}, nil
}
