package googlecalendar

import "errors"

var (
	// ErrInvalidPrivateKey is returned when the configured service-account
	// key is not a PEM private key after normalization
	ErrInvalidPrivateKey = errors.New("googlecalendar client: invalid private key format")

	// ErrUnavailable is returned when the calendar API cannot be reached
	ErrUnavailable = errors.New("googlecalendar client: calendar service unavailable")

	// ErrUnauthorized is returned when the calendar API rejects the credentials
	ErrUnauthorized = errors.New("googlecalendar client: credentials rejected")

	// ErrInvalidResponse is returned when the calendar API answers with an
	// unexpected status or body
	ErrInvalidResponse = errors.New("googlecalendar client: invalid response")

	// ErrInternal is returned on internal client errors
	ErrInternal = errors.New("googlecalendar client: internal error")
)
