package create_quote

import (
	"context"
	"errors"
	"fmt"

	"github.com/repasseautors/lead-service/internal/domain"
	"github.com/repasseautors/lead-service/internal/integrations/fipeapi"
)

// UseCase produces a purchase proposal for a vehicle plate
type UseCase struct {
	valuation ValuationClient // nil when no FIPE API key is configured
	pricing   PricingService
	logger    Logger
}

// NewUseCase creates the quote use case. Pass a nil valuation client to
// serve the fixed mocked vehicle.
func NewUseCase(valuation ValuationClient, pricing PricingService, logger Logger) *UseCase {
	return &UseCase{
		valuation: valuation,
		pricing:   pricing,
		logger:    logger,
	}
}

// Execute looks up the vehicle and computes the offer
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateQuote: plate=%s, mileage=%d", req.Plate, req.Mileage)

	// 1. Validate required fields
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateQuote: validation failed: %v", err)
		return nil, err
	}

	// 2. Resolve the reference value (live lookup or mocked record)
	var (
		model          string
		year           string
		referenceValue float64
		mocked         bool
	)

	if uc.valuation == nil {
		model, year, referenceValue = mockModel, mockYear, mockValue
		mocked = true
		uc.logger.Warn("CreateQuote: FIPE API key not configured, using mocked valuation for plate=%s", req.Plate)
	} else {
		valuation, err := uc.valuation.LookupPlate(ctx, req.Plate)
		if err != nil {
			switch {
			case errors.Is(err, fipeapi.ErrVehicleNotFound):
				uc.logger.Warn("CreateQuote: plate=%s not found in FIPE table", req.Plate)
				return nil, ErrVehicleNotFound
			case errors.Is(err, fipeapi.ErrUnavailable), errors.Is(err, fipeapi.ErrInvalidResponse):
				uc.logger.Error("CreateQuote: valuation lookup failed for plate=%s: %v", req.Plate, err)
				return nil, fmt.Errorf("%w: %v", ErrValuationUnavailable, err)
			default:
				uc.logger.Error("CreateQuote: unexpected valuation error for plate=%s: %v", req.Plate, err)
				return nil, fmt.Errorf("%w: %v", ErrInternal, err)
			}
		}
		model, year, referenceValue = valuation.Model, valuation.Year, valuation.Value
	}

	// 3. Apply the fixed discount
	offer, err := uc.pricing.ComputeOffer(referenceValue)
	if err != nil {
		uc.logger.Error("CreateQuote: pricing failed for plate=%s, value=%f: %v", req.Plate, referenceValue, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateQuote: plate=%s, model=%s, fipe=%.2f, offer=%.2f, mock=%t",
		req.Plate, model, referenceValue, offer, mocked)

	return &Response{
		Quote: domain.Quote{
			VehicleModel:   model,
			VehicleYear:    year,
			ReferenceValue: referenceValue,
			OfferValue:     offer,
			IsMocked:       mocked,
		},
	}, nil
}
