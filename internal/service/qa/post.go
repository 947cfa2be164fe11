package qa

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
	"github.com/heartmarshall/newsqa-backend/pkg/ctxutil"
)

// AskQuestion posts a question on an article.
// Gate order: input, session (ErrUnauthorized), nickname (ErrNicknameRequired).
// An unknown article yields ErrNotFound.
func (s *Service) AskQuestion(ctx context.Context, input AskQuestionInput) (*domain.Question, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := s.poster(ctx)
	if err != nil {
		return nil, fmt.Errorf("qa.AskQuestion: %w", err)
	}

	q, err := s.questions.Create(ctx, input.ArticleID, userID,
		*domain.OptionalText(input.Phrase), domain.OptionalText(input.Comment))
	if err != nil {
		return nil, fmt.Errorf("qa.AskQuestion: %w", err)
	}

	s.publish(ctx, domain.NewEvent(domain.EventQAPosted, q.ArticleID))

	s.log.InfoContext(ctx, "question posted",
		slog.String("question_id", q.ID.String()),
		slog.String("article_id", q.ArticleID.String()),
		slog.String("user_id", userID.String()))

	return q, nil
}

// PostAnswer posts an answer to a question. Same gates as AskQuestion.
// An unknown question yields ErrNotFound.
func (s *Service) PostAnswer(ctx context.Context, input PostAnswerInput) (*domain.Answer, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, err := s.poster(ctx)
	if err != nil {
		return nil, fmt.Errorf("qa.PostAnswer: %w", err)
	}

	q, err := s.questions.GetByID(ctx, input.QuestionID)
	if err != nil {
		return nil, fmt.Errorf("qa.PostAnswer get question: %w", err)
	}

	a, err := s.answers.Create(ctx, &domain.Answer{
		QuestionID: q.ID,
		UserID:     userID,
		Phrase:     domain.OptionalText(input.Phrase),
		Meaning:    domain.OptionalText(input.Meaning),
		Nuance:     domain.OptionalText(input.Nuance),
	})
	if err != nil {
		return nil, fmt.Errorf("qa.PostAnswer: %w", err)
	}

	a.ArticleID = q.ArticleID
	s.publish(ctx, domain.NewEvent(domain.EventQAPosted, q.ArticleID))

	s.log.InfoContext(ctx, "answer posted",
		slog.String("answer_id", a.ID.String()),
		slog.String("question_id", q.ID.String()),
		slog.String("user_id", userID.String()))

	return a, nil
}

// poster resolves the session user and requires a nickname.
func (s *Service) poster(ctx context.Context) (uuid.UUID, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return uuid.Nil, domain.ErrUnauthorized
	}

	p, err := s.profiles.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, domain.ErrNicknameRequired
		}
		return uuid.Nil, fmt.Errorf("load profile: %w", err)
	}
	if !p.HasNickname() {
		return uuid.Nil, domain.ErrNicknameRequired
	}

	return userID, nil
}
