package get_availability

import "errors"

var (
	// ErrCalendarUnavailable is returned when the external calendar cannot
	// be queried. The handler surfaces this as an explicit upstream failure;
	// availability never silently degrades to mock data once credentials
	// are configured.
	ErrCalendarUnavailable = errors.New("get_availability: calendar unavailable")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("get_availability: internal error")
)
