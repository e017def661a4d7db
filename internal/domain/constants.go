package domain

import "time"

// Time format constants
const (
	ISOFormat     = "2006-01-02T15:04:05-07:00" // 2026-02-12T15:00:00-03:00
	DateFormat    = "2006-01-02"                // YYYY-MM-DD
	DisplayFormat = "15:04"                     // HH:MM
)

// TimeZoneName is the IANA zone sent to the calendar service on event times.
const TimeZoneName = "America/Sao_Paulo"

// Location is the fixed civil timezone of the service (UTC-3).
// São Paulo has not observed daylight saving since 2019, so the fixed
// offset always yields the same civil date as the IANA zone.
var Location = time.FixedZone("-03", -3*60*60)

// Default schedule configuration values
const (
	DefaultMorningStartHour     = 9
	DefaultMorningEndHour       = 11
	DefaultAfternoonStartHour   = 14
	DefaultAfternoonEndHour     = 18
	DefaultVisitDurationMinutes = 60
	DefaultBufferMinutes        = 30
	DefaultMaxSlotsPerWindow    = 4
	DefaultHorizonDays          = 30
	DefaultFallbackHorizonDays  = 15
)

// DefaultDiscountRate is the fixed discount applied to the FIPE reference
// value when computing a purchase offer (18%).
const DefaultDiscountRate = 0.18

// FallbackMorningHours and FallbackAfternoonHours are the fixed slot hours
// produced when the deployment has no calendar credentials.
var (
	FallbackMorningHours   = []int{9, 10}
	FallbackAfternoonHours = []int{14, 15, 16, 17}
)
