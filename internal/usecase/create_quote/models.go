package create_quote

import "github.com/repasseautors/lead-service/internal/domain"

// Request is the quote request collected by the wizard
type Request struct {
	Plate   string // license plate, required
	Mileage int64  // odometer km, required
	Name    string // customer name, display only
}

// Response carries the computed quote
type Response struct {
	Quote domain.Quote
}

// mockValuation is the fixed vehicle substituted when no valuation API key
// is configured. Values mirror a real FIPE payload so the rest of the flow
// is exercised unchanged.
const (
	mockModel = "Toyota Corolla XEi 2.0 Flex 16V Aut."
	mockYear  = "2020"
	mockValue = 85000.0
)
