package domain

// Quote represents a purchase proposal computed for a single request.
// Quotes are transient: they are never stored and only survive as figures
// embedded in the calendar event a booking eventually produces.
type Quote struct {
	VehicleModel   string
	VehicleYear    string
	ReferenceValue float64 // FIPE table value
	OfferValue     float64 // reference value minus the fixed discount, floored
	IsMocked       bool    // true when the valuation lookup was not consulted
}
