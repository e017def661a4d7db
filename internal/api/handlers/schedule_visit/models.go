package schedule_visit

import (
	"time"

	scheduleVisit "github.com/repasseautors/lead-service/internal/usecase/schedule_visit"
)

// ScheduleRequest is the wizard's booking submission
type ScheduleRequest struct {
	StartISO      string   `json:"startIso"`
	EndISO        string   `json:"endIso"`
	Name          string   `json:"name"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	ReadableSlot  string   `json:"readableSlot"`
	Description   string   `json:"description,omitempty"`
	ValorFipe     *float64 `json:"valorFipe,omitempty"`
	ValorProposta *float64 `json:"valorProposta,omitempty"`
}

// ScheduleResponse is the success payload
type ScheduleResponse struct {
	OK           bool   `json:"ok"`
	EventID      string `json:"eventId"`
	HangoutLink  string `json:"hangoutLink,omitempty"`
	ReadableSlot string `json:"readableSlot,omitempty"`
	Mock         bool   `json:"mock,omitempty"`
	Message      string `json:"message,omitempty"`
}

// ScheduleError is the failure payload
type ScheduleError struct {
	OK      bool   `json:"ok"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ToUseCaseRequest parses the ISO timestamps and converts to the use case
// model. The offsets in startIso/endIso are preserved as sent, so the
// instants compared against busy intervals are exactly the ones the
// availability endpoint emitted.
func (r *ScheduleRequest) ToUseCaseRequest() (*scheduleVisit.Request, error) {
	var start, end time.Time
	var err error

	if r.StartISO != "" {
		start, err = time.Parse(time.RFC3339, r.StartISO)
		if err != nil {
			return nil, err
		}
	}
	if r.EndISO != "" {
		end, err = time.Parse(time.RFC3339, r.EndISO)
		if err != nil {
			return nil, err
		}
	}

	return &scheduleVisit.Request{
		Start:         start,
		End:           end,
		Name:          r.Name,
		Email:         r.Email,
		Phone:         r.Phone,
		ReadableSlot:  r.ReadableSlot,
		Description:   r.Description,
		ValorFipe:     r.ValorFipe,
		ValorProposta: r.ValorProposta,
	}, nil
}

// FromUseCaseResponse converts the use case result into the wire model
func FromUseCaseResponse(resp *scheduleVisit.Response) *ScheduleResponse {
	out := &ScheduleResponse{
		OK:           true,
		EventID:      resp.EventID,
		HangoutLink:  resp.HangoutLink,
		ReadableSlot: resp.ReadableSlot,
		Mock:         resp.Mock,
	}
	if resp.Mock {
		out.Message = "Agendamento registrado (modo desenvolvimento)"
	}
	return out
}
