package create_quote

import "errors"

var (
	// ErrInvalidInput is returned when required fields are missing
	ErrInvalidInput = errors.New("create_quote: invalid input data")

	// ErrVehicleNotFound is returned when the plate has no FIPE record
	ErrVehicleNotFound = errors.New("create_quote: vehicle not found")

	// ErrValuationUnavailable is returned when the valuation service
	// cannot be reached or rejects the request
	ErrValuationUnavailable = errors.New("create_quote: valuation service unavailable")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("create_quote: internal error")
)
