// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

const table = "users"

var columns = []string{"id", "email", "password_hash", "confirmed_at", "created_at", "updated_at"}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	ID           uuid.UUID  `db:"id"`
	Email        string     `db:"email"`
	PasswordHash string     `db:"password_hash"`
	ConfirmedAt  *time.Time `db:"confirmed_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		ConfirmedAt:  r.ConfirmedAt,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	b := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": id})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "user", id.String())
	}

	u := out.toDomain()
	return &u, nil
}

// GetByEmail returns a user by (normalized) email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	b := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"email": email})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "user", email)
	}

	u := out.toDomain()
	return &u, nil
}

// GetByIDs returns the users with the given ids in no particular order.
// Missing ids are simply absent from the result.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	b := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"id": ids})

	var rows []row
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, b); err != nil {
		return nil, postgres.MapError(err, "user", "")
	}

	users := make([]domain.User, len(rows))
	for i, rw := range rows {
		users[i] = rw.toDomain()
	}
	return users, nil
}

// Create inserts a new user and returns the persisted row.
// A duplicate email yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	insertCols := []string{"email", "password_hash", "confirmed_at"}
	values := []any{u.Email, u.PasswordHash, u.ConfirmedAt}
	if u.ID != uuid.Nil {
		insertCols = append(insertCols, "id")
		values = append(values, u.ID)
	}

	b := postgres.Builder.Insert(table).
		Columns(insertCols...).
		Values(values...).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "user", u.Email)
	}

	created := out.toDomain()
	return &created, nil
}

// MarkConfirmed sets confirmed_at for the user. Confirming twice keeps the
// first timestamp.
func (r *Repo) MarkConfirmed(ctx context.Context, id uuid.UUID) error {
	b := postgres.Builder.Update(table).
		Set("confirmed_at", squirrel.Expr("COALESCE(confirmed_at, now())")).
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id})

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return postgres.MapError(err, "user", id.String())
	}
	if n == 0 {
		return fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}

	return nil
}
