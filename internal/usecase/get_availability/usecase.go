package get_availability

import (
	"context"
	"fmt"

	"github.com/repasseautors/lead-service/internal/domain"
)

// UseCase resolves the bookable inspection slots: generated candidates minus
// the busy intervals of the shared calendar.
type UseCase struct {
	calendar     CalendarClient // nil when the deployment has no calendar credentials
	workHours    domain.WorkHoursConfig
	blocked      domain.BlockedDateSet
	horizonDays  int
	fallbackDays int
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the availability use case. Pass a nil calendar to run
// in mock mode.
func NewUseCase(
	calendar CalendarClient,
	workHours domain.WorkHoursConfig,
	blocked domain.BlockedDateSet,
	horizonDays int,
	fallbackDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		calendar:     calendar,
		workHours:    workHours,
		blocked:      blocked,
		horizonDays:  horizonDays,
		fallbackDays: fallbackDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute resolves the current availability. Each call is a fresh
// generation run; nothing is cached between requests.
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Single instant for the whole resolution run
	now := uc.timeProvider.Now()

	// 2. Without credentials, serve the deterministic fallback and flag it
	if uc.calendar == nil {
		slots := generateFallbackSlots(now, uc.fallbackDays, uc.workHours, uc.blocked)
		uc.logger.Info("GetAvailability: no calendar configured, serving %d mock slots", len(slots))
		return &Response{Slots: slots, Mock: true}, nil
	}

	// 3. Generate candidate slots over the read horizon
	candidates := generateCandidateSlots(now, uc.horizonDays, uc.workHours, uc.blocked)

	// 4. Fetch busy intervals for the same range
	rangeEnd := now.AddDate(0, 0, uc.horizonDays)
	busy, err := uc.calendar.FreeBusy(ctx, now, rangeEnd)
	if err != nil {
		uc.logger.Error("GetAvailability: freebusy query failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrCalendarUnavailable, err)
	}

	// 5. Drop candidates whose reserved interval overlaps a busy interval
	available := filterConflictingSlots(candidates, busy, uc.workHours)

	uc.logger.Info("GetAvailability: %d candidates, %d busy intervals, %d available",
		len(candidates), len(busy), len(available))

	return &Response{
		Slots:      available,
		CalendarID: uc.calendar.CalendarID(),
	}, nil
}
