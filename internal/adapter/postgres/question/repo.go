// Package question implements the Question repository using PostgreSQL.
package question

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// selectColumns reads a question with its author's nickname.
var selectColumns = []string{
	"q.id", "q.article_id", "q.phrase", "q.comment", "q.user_id",
	"p.username AS author_name", "q.created_at",
}

// Repo provides question persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new question repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID         uuid.UUID `db:"id"`
	ArticleID  uuid.UUID `db:"article_id"`
	Phrase     string    `db:"phrase"`
	Comment    *string   `db:"comment"`
	UserID     uuid.UUID `db:"user_id"`
	AuthorName *string   `db:"author_name"`
	CreatedAt  time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Question {
	return domain.Question{
		ID:         r.ID,
		ArticleID:  r.ArticleID,
		Phrase:     r.Phrase,
		Comment:    r.Comment,
		UserID:     r.UserID,
		AuthorName: r.AuthorName,
		CreatedAt:  r.CreatedAt,
	}
}

func selectQuestions() squirrel.SelectBuilder {
	return postgres.Builder.Select(selectColumns...).
		From("questions q").
		LeftJoin("profiles p ON p.id = q.user_id")
}

// Create inserts a question and returns it with the author's nickname.
// An unknown article or user yields domain.ErrNotFound.
func (r *Repo) Create(ctx context.Context, articleID, userID uuid.UUID, phrase string, comment *string) (*domain.Question, error) {
	// Inner placeholders stay "?" so the outer builder numbers them.
	insert := squirrel.Insert("questions").
		Columns("article_id", "user_id", "phrase", "comment").
		Values(articleID, userID, phrase, comment).
		Suffix("RETURNING id, article_id, phrase, comment, user_id, created_at")

	b := postgres.Builder.Select(selectColumns...).
		PrefixExpr(squirrel.ConcatExpr("WITH q AS (", insert, ")")).
		From("q").
		LeftJoin("profiles p ON p.id = q.user_id")

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "question", articleID.String())
	}

	q := out.toDomain()
	return &q, nil
}

// GetByID returns a question or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	b := selectQuestions().Where(squirrel.Eq{"q.id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "question", id.String())
	}

	q := out.toDomain()
	return &q, nil
}

// ListByArticle returns the questions of an article, oldest first.
func (r *Repo) ListByArticle(ctx context.Context, articleID uuid.UUID) ([]domain.Question, error) {
	b := selectQuestions().
		Where(squirrel.Eq{"q.article_id": articleID}).
		OrderBy("q.created_at ASC", "q.id ASC")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, postgres.MapError(err, "question", articleID.String())
	}

	questions := make([]domain.Question, len(rows))
	for i, rw := range rows {
		questions[i] = rw.toDomain()
	}
	return questions, nil
}
