package get_availability

import "github.com/repasseautors/lead-service/internal/domain"

// Response is the resolved availability
type Response struct {
	Slots      []domain.TimeSlot // chronological: day ascending, hour ascending
	Mock       bool              // true when served from the credential-less fallback
	CalendarID string            // set only when a real calendar was consulted
}
