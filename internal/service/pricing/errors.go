package pricing

import "errors"

var (
	// ErrNegativeValue is returned when the reference value is negative
	ErrNegativeValue = errors.New("pricing: reference value must not be negative")
)
