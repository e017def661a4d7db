package get_availability

import (
	"github.com/repasseautors/lead-service/internal/domain"
	getAvailability "github.com/repasseautors/lead-service/internal/usecase/get_availability"
)

// Slot is the wire representation of a bookable slot
type Slot struct {
	Start   string `json:"start"`   // 2026-02-12T15:00:00-03:00
	End     string `json:"end"`     // visit end, buffer excluded
	Display string `json:"display"` // "15:00"
}

// AvailabilityResponse is the success payload
type AvailabilityResponse struct {
	OK         bool   `json:"ok"`
	Slots      []Slot `json:"slots"`
	Mock       bool   `json:"mock,omitempty"`
	CalendarID string `json:"calendarId,omitempty"`
}

// AvailabilityError is the failure payload; slots stays present and empty
// so the wizard can render without special-casing.
type AvailabilityError struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
	Slots []Slot `json:"slots"`
}

// FromUseCaseResponse converts the use case result into the wire model
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			Start:   s.Start.Format(domain.ISOFormat),
			End:     s.End.Format(domain.ISOFormat),
			Display: s.Display,
		}
	}

	return &AvailabilityResponse{
		OK:         true,
		Slots:      slots,
		Mock:       resp.Mock,
		CalendarID: resp.CalendarID,
	}
}
