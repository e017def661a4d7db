package schedule_visit

import (
	"fmt"
	"strings"
)

// validateRequest checks the fields the calendar event cannot exist without
func validateRequest(req *Request) error {
	if req.Start.IsZero() {
		return fmt.Errorf("%w: startIso is required", ErrInvalidInput)
	}
	if req.End.IsZero() {
		return fmt.Errorf("%w: endIso is required", ErrInvalidInput)
	}
	if !req.Start.Before(req.End) {
		return fmt.Errorf("%w: slot start must be before its end", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Email) == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	return nil
}
