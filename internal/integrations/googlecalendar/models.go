package googlecalendar

// Event is the payload for the Calendar v3 events.insert call. Only the
// fields this service actually sets are modeled. The integration account has
// no delegated authority to invite attendees, so the event carries none.
type Event struct {
	Summary        string          `json:"summary"`
	Description    string          `json:"description"`
	Start          EventTime       `json:"start"`
	End            EventTime       `json:"end"`
	Reminders      *Reminders      `json:"reminders,omitempty"`
	ConferenceData *ConferenceData `json:"conferenceData,omitempty"`
}

// EventTime is a Calendar v3 event boundary
type EventTime struct {
	DateTime string `json:"dateTime"`
	TimeZone string `json:"timeZone,omitempty"`
}

// Reminders overrides the calendar's default notification settings
type Reminders struct {
	UseDefault bool               `json:"useDefault"`
	Overrides  []ReminderOverride `json:"overrides,omitempty"`
}

// ReminderOverride is a single reminder rule
type ReminderOverride struct {
	Method  string `json:"method"` // "email" or "popup"
	Minutes int    `json:"minutes"`
}

// ConferenceData requests a conference attached to the event
type ConferenceData struct {
	CreateRequest *ConferenceCreateRequest `json:"createRequest"`
}

// ConferenceCreateRequest asks the calendar to create a Meet room
type ConferenceCreateRequest struct {
	RequestID             string                `json:"requestId"`
	ConferenceSolutionKey ConferenceSolutionKey `json:"conferenceSolutionKey"`
}

// ConferenceSolutionKey selects the conference provider
type ConferenceSolutionKey struct {
	Type string `json:"type"` // "hangoutsMeet"
}

// CreatedEvent is the subset of the events.insert response the service uses
type CreatedEvent struct {
	ID          string `json:"id"`
	HangoutLink string `json:"hangoutLink"`
	HTMLLink    string `json:"htmlLink"`
}

// freeBusyRequest is the payload for the freebusy.query call
type freeBusyRequest struct {
	TimeMin string         `json:"timeMin"`
	TimeMax string         `json:"timeMax"`
	Items   []freeBusyItem `json:"items"`
}

type freeBusyItem struct {
	ID string `json:"id"`
}

type freeBusyResponse struct {
	Calendars map[string]freeBusyCalendar `json:"calendars"`
}

type freeBusyCalendar struct {
	Busy   []busyPeriod    `json:"busy"`
	Errors []freeBusyError `json:"errors"`
}

type busyPeriod struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type freeBusyError struct {
	Domain string `json:"domain"`
	Reason string `json:"reason"`
}

// Logger is the logging interface the client depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
