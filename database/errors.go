package database

import (
	"errors"

	"github.com/lib/pq"
)

// SQLSTATE class 22 "data exception", numeric_value_out_of_range
const pqNumericOutOfRange = "22003"

// IsNumericOutOfRange reports whether err is PostgreSQL rejecting a value
// that exceeds a numeric column's precision/scale. Callers treat this as
// bad client input rather than an infrastructure failure.
func IsNumericOutOfRange(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pqNumericOutOfRange
	}
	return false
}
