package pricing

import "math"

// Service computes purchase offers from FIPE reference values.
// Pure and deterministic: same input, same offer, no side effects.
type Service struct {
	discountRate float64
}

// NewService creates a pricing service with the given fixed discount rate
// (0.18 means an 18% discount off the reference value).
func NewService(discountRate float64) *Service {
	return &Service{discountRate: discountRate}
}

// ComputeOffer applies the fixed discount and floors the result.
// The offer is never greater than the reference value.
func (s *Service) ComputeOffer(referenceValue float64) (float64, error) {
	if referenceValue < 0 {
		return 0, ErrNegativeValue
	}
	return math.Floor(referenceValue * (1 - s.discountRate)), nil
}
