package schedule_visit

import (
	"context"
	"time"

	"github.com/repasseautors/lead-service/internal/domain"
	"github.com/repasseautors/lead-service/internal/integrations/googlecalendar"
)

// CalendarClient is the calendar capability the committer consumes: a busy
// re-check and an event insert, nothing more. A nil client puts the use case
// into the credential-less mock mode.
type CalendarClient interface {
	FreeBusy(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error)
	InsertEvent(ctx context.Context, event *googlecalendar.Event) (*googlecalendar.CreatedEvent, error)
}

// TimeProvider supplies the current time (injectable for tests)
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface for the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider
type RealTimeProvider struct{}

// Now returns the current time
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
