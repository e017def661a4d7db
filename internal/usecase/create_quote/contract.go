package create_quote

import (
	"context"

	"github.com/repasseautors/lead-service/internal/integrations/fipeapi"
)

// ValuationClient is the vehicle valuation lookup. A nil client means no
// API key is configured and the fixed mocked vehicle is substituted.
type ValuationClient interface {
	LookupPlate(ctx context.Context, plate string) (*fipeapi.Valuation, error)
}

// PricingService computes the purchase offer from a reference value
type PricingService interface {
	ComputeOffer(referenceValue float64) (float64, error)
}

// Logger is the logging interface for the use case
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
