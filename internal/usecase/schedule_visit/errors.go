package schedule_visit

import "errors"

var (
	// ErrInvalidInput is returned when required booking fields are missing
	ErrInvalidInput = errors.New("schedule_visit: invalid input data")

	// ErrSlotTaken is returned when the guard re-check finds a conflicting
	// busy interval. The caller should re-fetch availability instead of
	// retrying the same slot.
	ErrSlotTaken = errors.New("schedule_visit: slot is no longer available")

	// ErrCalendarUnavailable is returned when the external calendar cannot
	// be queried or written
	ErrCalendarUnavailable = errors.New("schedule_visit: calendar unavailable")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("schedule_visit: internal error")
)
