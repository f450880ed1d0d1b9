package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/clientforge-backend/internal/domain"
)

// pgDomainErrors maps SQLSTATE codes onto domain sentinels.
var pgDomainErrors = map[string]error{
	pgerrcode.UniqueViolation:           domain.ErrAlreadyExists,
	pgerrcode.ForeignKeyViolation:       domain.ErrNotFound,
	pgerrcode.CheckViolation:            domain.ErrValidation,
	pgerrcode.NotNullViolation:          domain.ErrValidation,
	pgerrcode.InvalidTextRepresentation: domain.ErrValidation,
	pgerrcode.SerializationFailure:      domain.ErrConflict,
	pgerrcode.DeadlockDetected:          domain.ErrConflict,
	pgerrcode.LockNotAvailable:          domain.ErrConflict,
}

// MapError labels err with entity and id and translates driver errors into
// domain sentinels. Context cancellation and unknown errors are wrapped as is.
func MapError(err error, entity string, id uuid.UUID) error {
	if err == nil {
		return nil
	}

	target := err
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
	case errors.Is(err, pgx.ErrNoRows), pgxscan.NotFound(err):
		target = domain.ErrNotFound
	default:
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if mapped, ok := pgDomainErrors[pgErr.Code]; ok {
				target = mapped
			}
		}
	}

	return fmt.Errorf("%s %s: %w", entity, id, target)
}
