// Package confirmation stores pending e-mail confirmations for sign-ups.
package confirmation

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/newsqa-backend/internal/adapter/postgres"
	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

const table = "email_confirmations"

var columns = []string{"token_hash", "user_id", "nickname", "expires_at", "created_at"}

// Repo provides email-confirmation persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new confirmation repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type row struct {
	TokenHash string    `db:"token_hash"`
	UserID    uuid.UUID `db:"user_id"`
	Nickname  *string   `db:"nickname"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}

// Create stores a pending confirmation.
func (r *Repo) Create(ctx context.Context, c *domain.EmailConfirmation) (*domain.EmailConfirmation, error) {
	b := postgres.Builder.Insert(table).
		Columns("token_hash", "user_id", "nickname", "expires_at").
		Values(c.TokenHash, c.UserID, c.Nickname, c.ExpiresAt).
		Suffix("RETURNING " + strings.Join(columns, ", "))

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "email_confirmation", c.UserID.String())
	}

	return &domain.EmailConfirmation{
		TokenHash: out.TokenHash,
		UserID:    out.UserID,
		Nickname:  out.Nickname,
		ExpiresAt: out.ExpiresAt,
		CreatedAt: out.CreatedAt,
	}, nil
}

// GetByHash returns the confirmation for tokenHash, expired or not.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.EmailConfirmation, error) {
	b := postgres.Builder.Select(columns...).From(table).Where(squirrel.Eq{"token_hash": tokenHash})

	var out row
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, b); err != nil {
		return nil, postgres.MapError(err, "email_confirmation", "")
	}

	return &domain.EmailConfirmation{
		TokenHash: out.TokenHash,
		UserID:    out.UserID,
		Nickname:  out.Nickname,
		ExpiresAt: out.ExpiresAt,
		CreatedAt: out.CreatedAt,
	}, nil
}

// Delete removes a confirmation. Deleting a missing row is not an error.
func (r *Repo) Delete(ctx context.Context, tokenHash string) error {
	b := postgres.Builder.Delete(table).Where(squirrel.Eq{"token_hash": tokenHash})

	if _, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), b); err != nil {
		return postgres.MapError(err, "email_confirmation", "")
	}
	return nil
}

// DeleteExpired removes confirmations past their expiry and returns the count.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	b := postgres.Builder.Delete(table).Where("expires_at <= now()")

	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), b)
	if err != nil {
		return 0, postgres.MapError(err, "email_confirmation", "")
	}
	return int(n), nil
}
