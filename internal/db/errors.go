package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/lukk-cs/attribo-backend/internal/models"
)

// SQLSTATE codes the engine distinguishes.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// Classify maps a store error onto the service error kinds. Errors that are
// already classified pass through unchanged.
func Classify(err error) error {
	if err == nil || models.IsClassified(err) {
		return err
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %w", models.ErrNotFound, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %s: %w", models.ErrConflict, pgErr.ConstraintName, err)
		case codeForeignKeyViolation, codeCheckViolation:
			return fmt.Errorf("%w: %s: %w", models.ErrInvalidState, pgErr.ConstraintName, err)
		}
	}
	return fmt.Errorf("%w: %w", models.ErrPersistence, err)
}
