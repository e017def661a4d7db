package schedule_visit

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/repasseautors/lead-service/pkg/ptr"
)

// Request is a booking submission. It exists only for the duration of the
// call; its durable trace is the calendar event it produces.
type Request struct {
	Start         time.Time // chosen slot start, fixed UTC-3 offset
	End           time.Time // chosen slot end (visit duration, no buffer)
	Name          string
	Email         string
	Phone         string
	ReadableSlot  string   // human-readable slot label shown back to the customer
	Description   string   // optional free text
	ValorFipe     *float64 // optional FIPE reference value from the quote step
	ValorProposta *float64 // optional offer value from the quote step
}

// Response is the booking outcome
type Response struct {
	EventID      string
	HangoutLink  string // meeting link when the calendar supplied one
	ReadableSlot string
	Mock         bool // true for the credential-less degraded mode
}

// formatCurrency renders a BRL value the way the event description shows it:
// "R$ 85.000,00". Absent values render as "N/A".
func formatCurrency(value *float64) string {
	v := ptr.Deref(value, 0)
	if v == 0 {
		return "N/A"
	}

	cents := int64(math.Round(v * 100))
	intPart := cents / 100
	fracPart := cents % 100
	if fracPart < 0 {
		fracPart = -fracPart
	}

	return fmt.Sprintf("R$ %s,%02d", groupThousands(intPart), fracPart)
}

// groupThousands inserts "." thousand separators (pt-BR convention)
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)

	neg := false
	if s[0] == '-' {
		neg = true
		s = s[1:]
	}

	for i := len(s) - 3; i > 0; i -= 3 {
		s = s[:i] + "." + s[i:]
	}

	if neg {
		return "-" + s
	}
	return s
}
