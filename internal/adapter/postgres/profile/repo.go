// Package profile implements the Profile repository using PostgreSQL.
// A profile row shares its id with the owning user.
package profile

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

const table = "profiles"

var columns = []string{"id", "username", "updated_at"}

// Repo provides profile persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new profile repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID        uuid.UUID `db:"id"`
	Username  *string   `db:"username"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.Profile {
	return domain.Profile{ID: r.ID, Username: r.Username, UpdatedAt: r.UpdatedAt}
}

// GetByID returns the profile of a user or domain.ErrNotFound.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Profile, error) {
	b := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "profile", id.String())
	}

	p := out.toDomain()
	return &p, nil
}

// GetByIDs returns the profiles that exist for the given user ids.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Profile, error) {
	if len(ids) == 0 {
		return []domain.Profile{}, nil
	}

	b := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": ids})

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, postgres.MapError(err, "profile", "")
	}

	profiles := make([]domain.Profile, len(rows))
	for i, rw := range rows {
		profiles[i] = rw.toDomain()
	}
	return profiles, nil
}

// Upsert creates the profile or replaces its username.
func (r *Repo) Upsert(ctx context.Context, id uuid.UUID, username *string) (*domain.Profile, error) {
	b := postgres.Builder.Insert(table).
		Columns("id", "username", "updated_at").
		Values(id, username, squirrel.Expr("now()")).
		Suffix("ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username, updated_at = EXCLUDED.updated_at").
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "profile", id.String())
	}

	p := out.toDomain()
	return &p, nil
}
