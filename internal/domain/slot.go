package domain

import "time"

// TimeSlot represents a candidate or confirmed inspection appointment window.
// Start and End carry the fixed UTC-3 offset; Display is the customer-facing
// "HH:MM" label.
type TimeSlot struct {
	Start   time.Time
	End     time.Time
	Display string
}

// BusyInterval is an occupied time range reported by the external calendar.
// It is opaque to this system and not owned by it.
type BusyInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether [start, end) intersects the busy interval.
// Intervals that merely touch at a boundary do not overlap.
func (b BusyInterval) Overlaps(start, end time.Time) bool {
	return start.Before(b.End) && end.After(b.Start)
}
