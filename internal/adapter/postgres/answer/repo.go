// Package answer implements the Answer repository using PostgreSQL.
package answer

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

var selectColumns = []string{
	"a.id", "a.question_id", "a.phrase", "a.meaning", "a.nuance", "a.user_id",
	"p.username AS author_name", "a.created_at",
}

// Repo provides answer persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new answer repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	QuestionID uuid.UUID `db:"question_id"`
	Phrase     *string   `db:"phrase"`
	Meaning    *string   `db:"meaning"`
	Nuance     *string   `db:"nuance"`
	UserID     uuid.UUID `db:"user_id"`
	AuthorName *string   `db:"author_name"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Answer {
	return domain.Answer{
		ID:         r.ID,
		QuestionID: r.QuestionID,
		Phrase:     r.Phrase,
		Meaning:    r.Meaning,
		Nuance:     r.Nuance,
		UserID:     r.UserID,
		AuthorName: r.AuthorName,
		CreatedAt:  r.CreatedAt,
	}
}

// Create inserts an answer and returns it with the author's nickname.
// An unknown question or user yields domain.ErrNotFound; an answer with all
// three fields empty violates a check constraint (domain.ErrValidation).
func (r *Repo) Create(ctx context.Context, a *domain.Answer) (*domain.Answer, error) {
	insert := squirrel.Insert("answers").
		Columns("question_id", "user_id", "phrase", "meaning", "nuance").
		Values(a.QuestionID, a.UserID, a.Phrase, a.Meaning, a.Nuance).
		Suffix("RETURNING id, question_id, phrase, meaning, nuance, user_id, created_at")

	b := postgres.Builder.Select(selectColumns...).
		PrefixExpr(squirrel.ConcatExpr("WITH a AS (", insert, ")")).
		From("a").
		LeftJoin("profiles p ON p.id = a.user_id")

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "answer", a.QuestionID.String())
	}

	created := out.toDomain()
	return &created, nil
}

// ListByQuestionIDs loads the answers of many questions with one IN query,
// oldest first.
func (r *Repo) ListByQuestionIDs(ctx context.Context, questionIDs []uuid.UUID) ([]domain.Answer, error) {
	if len(questionIDs) == 0 {
		return []domain.Answer{}, nil
	}

	b := postgres.Builder.Select(selectColumns...).
		From("answers a").
		LeftJoin("profiles p ON p.id = a.user_id").
		Where(squirrel.Eq{"a.question_id": questionIDs}).
		OrderBy("a.created_at ASC", "a.id ASC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, postgres.MapError(err, "answer", "")
	}

	answers := make([]domain.Answer, len(rows))
	for i, rw := range rows {
		answers[i] = rw.toDomain()
	}
	return answers, nil
}
