package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/newsqa-backend/internal/domain"
)

// PostgreSQL error codes that map onto domain sentinels.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeInvalidText         = "22P02"
)

// MapError converts pgx/pgconn errors to domain errors. key identifies the
// row (an id, a hash, an email) and may be empty.
// context.DeadlineExceeded and context.Canceled are NOT mapped.
func MapError(err error, entity string, key string) error {
	if err == nil {
		return nil
	}

	label := entity
	if key != "" {
		label = entity + " " + key
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", label, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%s: %w", label, domain.ErrAlreadyExists)
		case codeForeignKeyViolation, codeInvalidText:
			return fmt.Errorf("%s: %w", label, domain.ErrNotFound)
		case codeCheckViolation:
			return fmt.Errorf("%s: %w", label, domain.ErrValidation)
		}
	}

	return fmt.Errorf("%s: %w", label, err)
}
