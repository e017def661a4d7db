package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repasseautors/lead-service/internal/domain"
)

func testWorkHours() domain.WorkHoursConfig {
	return domain.WorkHoursConfig{
		Morning:              domain.HourWindow{StartHour: 9, EndHour: 11},
		Afternoon:            domain.HourWindow{StartHour: 14, EndHour: 18},
		VisitDurationMinutes: 60,
		BufferMinutes:        30,
		MaxSlotsPerWindow:    4,
	}
}

// 2026-03-02 is a Monday
func testNow() time.Time {
	return time.Date(2026, 3, 2, 8, 0, 0, 0, domain.Location)
}

func TestGenerateCandidateSlots_SlotInvariants(t *testing.T) {
	cfg := testWorkHours()
	now := testNow()
	blocked, err := domain.NewBlockedDateSet([]string{"2026-03-04"})
	require.NoError(t, err)

	slots := generateCandidateSlots(now, 30, cfg, blocked)
	require.NotEmpty(t, slots)

	for _, slot := range slots {
		local := slot.Start.In(domain.Location)

		// weekday only
		assert.NotEqual(t, time.Saturday, local.Weekday())
		assert.NotEqual(t, time.Sunday, local.Weekday())

		// never on a blocked date
		assert.False(t, blocked.IsBlocked(slot.Start), "slot on blocked date: %s", slot.Start)

		// inside a work-hour window
		hour := local.Hour()
		inMorning := hour >= cfg.Morning.StartHour && hour < cfg.Morning.EndHour
		inAfternoon := hour >= cfg.Afternoon.StartHour && hour < cfg.Afternoon.EndHour
		assert.True(t, inMorning || inAfternoon, "slot outside work hours: %s", slot.Start)

		// strictly in the future, customer-visible end is visit duration only
		assert.True(t, slot.Start.After(now))
		assert.Equal(t, slot.Start.Add(60*time.Minute), slot.End)
		assert.True(t, slot.Start.Before(slot.End))

		// fixed UTC-3 offset
		_, offset := slot.Start.Zone()
		assert.Equal(t, -3*60*60, offset)
	}
}

func TestGenerateCandidateSlots_ChronologicalOrder(t *testing.T) {
	slots := generateCandidateSlots(testNow(), 30, testWorkHours(), nil)
	require.NotEmpty(t, slots)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].Start.Before(slots[i].Start))
	}
}

func TestGenerateCandidateSlots_ExcludesPastHoursOfToday(t *testing.T) {
	// 09:30 on a Monday: today's 09:00 already started, 10:00 has not
	now := time.Date(2026, 3, 2, 9, 30, 0, 0, domain.Location)

	slots := generateCandidateSlots(now, 1, testWorkHours(), nil)

	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.Start.Format("15:04")
	}
	assert.Equal(t, []string{"10:00", "14:00", "15:00", "16:00", "17:00"}, starts)
}

func TestGenerateCandidateSlots_CapsCandidatesPerWindow(t *testing.T) {
	cfg := testWorkHours()
	cfg.MaxSlotsPerWindow = 2

	slots := generateCandidateSlots(testNow(), 1, cfg, nil)

	starts := make([]string, len(slots))
	for i, s := range slots {
		starts[i] = s.Start.Format("15:04")
	}
	// two per window even though the afternoon has four workable hours
	assert.Equal(t, []string{"09:00", "10:00", "14:00", "15:00"}, starts)
}

func TestGenerateCandidateSlots_SkipsWeekendsAndBlockedDates(t *testing.T) {
	blocked, err := domain.NewBlockedDateSet([]string{"2026-03-03"})
	require.NoError(t, err)

	// Monday through next Monday: Tuesday blocked, Saturday/Sunday skipped
	slots := generateCandidateSlots(testNow(), 8, testWorkHours(), blocked)

	days := map[string]bool{}
	for _, s := range slots {
		days[s.Start.Format(domain.DateFormat)] = true
	}
	assert.Equal(t, map[string]bool{
		"2026-03-02": true,
		"2026-03-04": true,
		"2026-03-05": true,
		"2026-03-06": true,
		"2026-03-09": true,
	}, days)
}

func TestGenerateCandidateSlots_Idempotent(t *testing.T) {
	cfg := testWorkHours()
	now := testNow()

	first := generateCandidateSlots(now, 30, cfg, nil)
	second := generateCandidateSlots(now, 30, cfg, nil)

	assert.Equal(t, first, second)
}

func TestFilterConflictingSlots_OverlapRule(t *testing.T) {
	cfg := testWorkHours()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, domain.Location)

	slot := domain.TimeSlot{
		Start:   day.Add(9 * time.Hour),
		End:     day.Add(10 * time.Hour),
		Display: "09:00",
	}
	// reserved interval is [09:00, 10:30): visit plus buffer

	tests := []struct {
		name string
		busy domain.BusyInterval
		kept bool
	}{
		{
			name: "busy inside reserved interval",
			busy: domain.BusyInterval{Start: day.Add(9*time.Hour + 30*time.Minute), End: day.Add(10 * time.Hour)},
			kept: false,
		},
		{
			name: "busy overlaps only the buffer tail",
			busy: domain.BusyInterval{Start: day.Add(10 * time.Hour), End: day.Add(10*time.Hour + 15*time.Minute)},
			kept: false,
		},
		{
			name: "busy ends exactly at slot start",
			busy: domain.BusyInterval{Start: day.Add(8 * time.Hour), End: day.Add(9 * time.Hour)},
			kept: true,
		},
		{
			name: "busy starts exactly at reserved end",
			busy: domain.BusyInterval{Start: day.Add(10*time.Hour + 30*time.Minute), End: day.Add(11 * time.Hour)},
			kept: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := filterConflictingSlots([]domain.TimeSlot{slot}, []domain.BusyInterval{tt.busy}, cfg)
			if tt.kept {
				assert.Len(t, got, 1)
			} else {
				assert.Empty(t, got)
			}
		})
	}
}

func TestGenerateFallbackSlots_FixedHours(t *testing.T) {
	cfg := testWorkHours()
	blocked, err := domain.NewBlockedDateSet([]string{"2026-03-05"})
	require.NoError(t, err)

	slots := generateFallbackSlots(testNow(), 15, cfg, blocked)
	require.NotEmpty(t, slots)

	allowedHours := map[int]bool{9: true, 10: true, 14: true, 15: true, 16: true, 17: true}
	for _, slot := range slots {
		local := slot.Start.In(domain.Location)
		assert.True(t, allowedHours[local.Hour()], "unexpected fallback hour %d", local.Hour())
		assert.NotEqual(t, time.Saturday, local.Weekday())
		assert.NotEqual(t, time.Sunday, local.Weekday())
		assert.False(t, blocked.IsBlocked(slot.Start))
		assert.True(t, slot.Start.After(testNow()))
	}
}
