package domain

import (
	"fmt"
	"time"
)

// HourWindow is a half-open range of whole hours within a working day
type HourWindow struct {
	StartHour int
	EndHour   int
}

// WorkHoursConfig is the immutable slot-generation configuration of the
// service. It is built once at startup and passed into each component.
type WorkHoursConfig struct {
	Morning              HourWindow
	Afternoon            HourWindow
	VisitDurationMinutes int
	BufferMinutes        int
	MaxSlotsPerWindow    int
}

// VisitDuration returns the customer-visible appointment duration
func (c WorkHoursConfig) VisitDuration() time.Duration {
	return time.Duration(c.VisitDurationMinutes) * time.Minute
}

// Buffer returns the padding reserved after a visit to avoid back-to-back
// collisions. It participates in conflict arithmetic only and is never part
// of the slot shown to the customer.
func (c WorkHoursConfig) Buffer() time.Duration {
	return time.Duration(c.BufferMinutes) * time.Minute
}

// SlotEnd returns the customer-visible end of a slot starting at start
func (c WorkHoursConfig) SlotEnd(start time.Time) time.Time {
	return start.Add(c.VisitDuration())
}

// ConflictEnd returns the end of the interval a slot reserves for conflict
// detection: visit duration plus buffer.
func (c WorkHoursConfig) ConflictEnd(start time.Time) time.Time {
	return start.Add(c.VisitDuration() + c.Buffer())
}

// Validate checks the configuration invariants
func (c WorkHoursConfig) Validate() error {
	if c.Morning.StartHour >= c.Morning.EndHour {
		return fmt.Errorf("morning window is empty: %d-%d", c.Morning.StartHour, c.Morning.EndHour)
	}
	if c.Afternoon.StartHour >= c.Afternoon.EndHour {
		return fmt.Errorf("afternoon window is empty: %d-%d", c.Afternoon.StartHour, c.Afternoon.EndHour)
	}
	if c.VisitDurationMinutes <= 0 {
		return fmt.Errorf("visit duration must be positive, got %d", c.VisitDurationMinutes)
	}
	if c.BufferMinutes < 0 {
		return fmt.Errorf("buffer must not be negative, got %d", c.BufferMinutes)
	}
	if c.MaxSlotsPerWindow <= 0 {
		return fmt.Errorf("max slots per window must be positive, got %d", c.MaxSlotsPerWindow)
	}
	return nil
}

// BlockedDateSet is a static set of calendar dates (holidays) excluded from
// slot generation regardless of busy data. Dates are compared as civil dates
// in the service's fixed timezone, never in the caller's.
type BlockedDateSet map[string]struct{}

// NewBlockedDateSet builds a set from YYYY-MM-DD strings
func NewBlockedDateSet(dates []string) (BlockedDateSet, error) {
	set := make(BlockedDateSet, len(dates))
	for _, d := range dates {
		if _, err := time.ParseInLocation(DateFormat, d, Location); err != nil {
			return nil, fmt.Errorf("invalid blocked date %q: %v", d, err)
		}
		set[d] = struct{}{}
	}
	return set, nil
}

// IsBlocked reports whether the instant falls on a blocked calendar date.
// The input is converted to the service timezone before the civil date is
// taken, so a UTC timestamp close to midnight lands on the correct day.
func (s BlockedDateSet) IsBlocked(t time.Time) bool {
	_, ok := s[t.In(Location).Format(DateFormat)]
	return ok
}
