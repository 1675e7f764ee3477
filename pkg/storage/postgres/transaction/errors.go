package transaction

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

const _uniqueViolationCode = "23505"

// HandleError wraps a transaction step failure with the operation and step
// that produced it, so the caller sees where inside the transaction it died.
func HandleError(operation, step string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %s: %w", operation, step, err)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == _uniqueViolationCode
}
