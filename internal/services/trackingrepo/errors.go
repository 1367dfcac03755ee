package trackingrepo

import (
	"errors"

	"github.com/lib/pq"
)

const (
	ValidationError = constError("invalid record")
	// ErrAmbiguousNumber is returned when more than one record holds the same number.
	ErrAmbiguousNumber = constError("tracking number matches more than one record")

	// UndefinedTable is returned by postgres when migrations have not been run.
	UndefinedTable = pq.ErrorCode("42P01")
)

// IsUndefinedTableError checks if the error is an undefined table error.
func IsUndefinedTableError(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == UndefinedTable
}

func IsValidationError(err error) bool {
	return errors.Is(err, ValidationError)
}

type constError string

func (e constError) Error() string {
	return string(e)
}
