package fipeapi

import "errors"

var (
	// ErrVehicleNotFound is returned when the plate has no FIPE record
	ErrVehicleNotFound = errors.New("fipeapi client: vehicle not found")

	// ErrUnavailable is returned when the valuation API cannot be reached
	ErrUnavailable = errors.New("fipeapi client: valuation service unavailable")

	// ErrInvalidResponse is returned when the valuation API answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("fipeapi client: invalid response")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("fipeapi client: internal error")
)
