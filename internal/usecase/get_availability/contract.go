package get_availability

import (
	"context"
	"time"

	"github.com/repasseautors/lead-service/internal/domain"
)

// CalendarClient is the narrow calendar capability this use case consumes.
// A nil client means the deployment has no calendar credentials and the
// deterministic fallback slots are served instead.
type CalendarClient interface {
	FreeBusy(ctx context.Context, timeMin, timeMax time.Time) ([]domain.BusyInterval, error)
	CalendarID() string
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
