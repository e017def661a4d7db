package get_availability

import (
	"fmt"
	"time"

	"github.com/repasseautors/lead-service/internal/domain"
)

// generateCandidateSlots produces the candidate inspection slots for the
// next horizonDays days, before any busy-interval filtering.
//
// Per day: weekends and blocked dates are skipped entirely; the morning and
// afternoon windows are walked hour by hour, each window stopping early once
// maxSlotsPerWindow candidates were produced for it. The cap applies to
// candidates, not to the final availability: busy filtering afterwards may
// leave fewer than the cap in a window. A candidate whose start is not
// strictly in the future is discarded without counting against the cap.
//
// All emitted timestamps are civil times in the fixed UTC-3 service zone.
func generateCandidateSlots(
	now time.Time,
	horizonDays int,
	cfg domain.WorkHoursConfig,
	blocked domain.BlockedDateSet,
) []domain.TimeSlot {
	local := now.In(domain.Location)
	startDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, domain.Location)

	slots := make([]domain.TimeSlot, 0)

	for day := 0; day < horizonDays; day++ {
		date := startDay.AddDate(0, 0, day)

		if isWeekend(date) || blocked.IsBlocked(date) {
			continue
		}

		for _, window := range []domain.HourWindow{cfg.Morning, cfg.Afternoon} {
			produced := 0
			for hour := window.StartHour; hour < window.EndHour && produced < cfg.MaxSlotsPerWindow; hour++ {
				start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, domain.Location)
				if !start.After(now) {
					continue
				}

				slots = append(slots, domain.TimeSlot{
					Start:   start,
					End:     cfg.SlotEnd(start),
					Display: fmt.Sprintf("%02d:00", hour),
				})
				produced++
			}
		}
	}

	return slots
}

// filterConflictingSlots removes every candidate whose reserved interval
// [start, start+visit+buffer) overlaps a busy interval. The buffer belongs
// to conflict arithmetic only; the slot the customer sees keeps its
// visit-duration end.
func filterConflictingSlots(
	candidates []domain.TimeSlot,
	busy []domain.BusyInterval,
	cfg domain.WorkHoursConfig,
) []domain.TimeSlot {
	available := make([]domain.TimeSlot, 0, len(candidates))

	for _, slot := range candidates {
		conflictEnd := cfg.ConflictEnd(slot.Start)

		occupied := false
		for _, b := range busy {
			if b.Overlaps(slot.Start, conflictEnd) {
				occupied = true
				break
			}
		}

		if !occupied {
			available = append(available, slot)
		}
	}

	return available
}

// generateFallbackSlots builds the deterministic slot list served when no
// calendar credentials are configured: two fixed morning hours and four
// fixed afternoon hours per non-blocked weekday over the fallback horizon.
func generateFallbackSlots(
	now time.Time,
	horizonDays int,
	cfg domain.WorkHoursConfig,
	blocked domain.BlockedDateSet,
) []domain.TimeSlot {
	local := now.In(domain.Location)
	startDay := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, domain.Location)

	slots := make([]domain.TimeSlot, 0)

	for day := 0; day < horizonDays; day++ {
		date := startDay.AddDate(0, 0, day)

		if isWeekend(date) || blocked.IsBlocked(date) {
			continue
		}

		for _, hours := range [][]int{domain.FallbackMorningHours, domain.FallbackAfternoonHours} {
			for _, hour := range hours {
				start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, domain.Location)
				if !start.After(now) {
					continue
				}

				slots = append(slots, domain.TimeSlot{
					Start:   start,
					End:     cfg.SlotEnd(start),
					Display: fmt.Sprintf("%02d:00", hour),
				})
			}
		}
	}

	return slots
}

func isWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
