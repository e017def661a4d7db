package schedule_visit

import (
	"context"
	"fmt"

	"github.com/repasseautors/lead-service/internal/domain"
	"github.com/repasseautors/lead-service/internal/integrations/googlecalendar"
)

// UseCase commits an inspection booking to the shared calendar.
//
// The commit re-checks busy intervals in a narrow window around the chosen
// slot right before inserting the event. This closes most of the race
// between two customers acting on the same availability snapshot, but it is
// best-effort only: there is no lock, and two commits inside the same
// few-hundred-millisecond window can both pass the check. Accepted gap.
type UseCase struct {
	calendar     CalendarClient // nil when the deployment has no calendar credentials
	workHours    domain.WorkHoursConfig
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking use case. Pass a nil calendar to run in
// mock mode.
func NewUseCase(calendar CalendarClient, workHours domain.WorkHoursConfig, logger Logger) *UseCase {
	return &UseCase{
		calendar:     calendar,
		workHours:    workHours,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute validates the request, re-checks for conflicts and creates the
// calendar event. Once started it runs to completion; there is no
// cancellation between the guard check and the insert.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScheduleVisit: name=%s, email=%s, slot=%s", req.Name, req.Email, req.ReadableSlot)

	// 1. Validate required fields
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ScheduleVisit: validation failed: %v", err)
		return nil, err
	}

	// 2. Degraded mode: no calendar credentials, log the lead and answer
	// with a synthetic event id so the funnel keeps working
	if uc.calendar == nil {
		eventID := fmt.Sprintf("mock-%d", uc.timeProvider.Now().UnixMilli())
		uc.logger.Warn("ScheduleVisit: no calendar configured, registered booking without event: name=%s, email=%s, phone=%s, slot=%s",
			req.Name, req.Email, req.Phone, req.ReadableSlot)
		return &Response{
			EventID:      eventID,
			ReadableSlot: req.ReadableSlot,
			Mock:         true,
		}, nil
	}

	// 3. Guard window around the chosen slot
	checkStart := req.Start.Add(-uc.workHours.Buffer())
	checkEnd := uc.workHours.ConflictEnd(req.Start)

	busy, err := uc.calendar.FreeBusy(ctx, checkStart, checkEnd)
	if err != nil {
		uc.logger.Error("ScheduleVisit: guard freebusy query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	// 4. Conflict test with each busy interval extended by the buffer past
	// its own end, so a visit ending right before ours still blocks us
	visitEnd := req.Start.Add(uc.workHours.VisitDuration())
	for _, b := range busy {
		busyEndWithBuffer := b.End.Add(uc.workHours.Buffer())
		if req.Start.Before(busyEndWithBuffer) && visitEnd.After(b.Start) {
			uc.logger.Warn("ScheduleVisit: slot %s conflicts with busy interval [%s, %s)",
				req.Start.Format(domain.ISOFormat), b.Start.Format(domain.ISOFormat), b.End.Format(domain.ISOFormat))
			return nil, ErrSlotTaken
		}
	}

	// 5. Create the event
	event := uc.buildEvent(req)

	created, err := uc.calendar.InsertEvent(ctx, event)
	if err != nil {
		uc.logger.Error("ScheduleVisit: event insert failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	meetingLink := created.HangoutLink
	if meetingLink == "" {
		meetingLink = created.HTMLLink
	}

	uc.logger.Info("ScheduleVisit: booking created, event_id=%s, name=%s, slot=%s",
		created.ID, req.Name, req.ReadableSlot)

	return &Response{
		EventID:      created.ID,
		HangoutLink:  meetingLink,
		ReadableSlot: req.ReadableSlot,
	}, nil
}

// buildEvent assembles the calendar event. No attendees: the integration
// account has no delegated authority to send invites.
func (uc *UseCase) buildEvent(req *Request) *googlecalendar.Event {
	description := req.Description
	if description == "" {
		description = "Vistoria de veículo agendada"
	}

	fullDescription := fmt.Sprintf(
		"Cliente: %s\nEmail: %s\nTelefone: %s\n\n%s\n\n=== VALORES ===\nTabela FIPE: %s\nProposta: %s",
		req.Name, req.Email, req.Phone,
		description,
		formatCurrency(req.ValorFipe),
		formatCurrency(req.ValorProposta),
	)

	return &googlecalendar.Event{
		Summary:     fmt.Sprintf("Vistoria - %s", req.Name),
		Description: fullDescription,
		Start: googlecalendar.EventTime{
			DateTime: req.Start.Format(domain.ISOFormat),
			TimeZone: domain.TimeZoneName,
		},
		End: googlecalendar.EventTime{
			DateTime: req.End.Format(domain.ISOFormat),
			TimeZone: domain.TimeZoneName,
		},
		Reminders: &googlecalendar.Reminders{
			UseDefault: false,
			Overrides: []googlecalendar.ReminderOverride{
				{Method: "email", Minutes: 24 * 60},
				{Method: "popup", Minutes: 30},
			},
		},
		ConferenceData: &googlecalendar.ConferenceData{
			CreateRequest: &googlecalendar.ConferenceCreateRequest{
				RequestID:             fmt.Sprintf("meet-%d", uc.timeProvider.Now().UnixMilli()),
				ConferenceSolutionKey: googlecalendar.ConferenceSolutionKey{Type: "hangoutsMeet"},
			},
		},
	}
}
