// Package article implements the Article repository using PostgreSQL.
package article

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

const table = "articles"

var columns = []string{"id", "title", "url", "created_at"}

// Repo provides article persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new article repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Title     *string   `db:"title"`
	URL       *string   `db:"url"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Article {
	return domain.Article{ID: r.ID, Title: r.Title, URL: r.URL, CreatedAt: r.CreatedAt}
}

// Create inserts an article; id and created_at are assigned by the database.
func (r *Repo) Create(ctx context.Context, title, url *string) (*domain.Article, error) {
	b := postgres.Builder.Insert(table).
		Columns("title", "url").
		Values(title, url).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "article", "")
	}

	a := out.toDomain()
	return &a, nil
}

// GetByID returns an article or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	b := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "article", id.String())
	}

	a := out.toDomain()
	return &a, nil
}

// List returns every article, newest first. Ties on created_at are broken
// by id so the order is stable.
func (r *Repo) List(ctx context.Context) ([]domain.Article, error) {
	b := postgres.Builder.Select(columns...).From(table).OrderBy("created_at DESC", "id")

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, postgres.MapError(err, "article", "")
	}

	articles := make([]domain.Article, len(rows))
	for i, rw := range rows {
		articles[i] = rw.toDomain()
	}
	return articles, nil
}
