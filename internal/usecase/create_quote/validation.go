package create_quote

import (
	"fmt"
	"strings"
)

// validateRequest checks the required quote fields. The customer name is
// collected for the sales funnel only and is not required here.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.Plate) == "" {
		return fmt.Errorf("%w: plate is required", ErrInvalidInput)
	}
	if req.Mileage <= 0 {
		return fmt.Errorf("%w: mileage is required", ErrInvalidInput)
	}
	return nil
}
