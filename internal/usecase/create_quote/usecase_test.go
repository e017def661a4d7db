package create_quote

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repasseautors/lead-service/internal/integrations/fipeapi"
	"github.com/repasseautors/lead-service/internal/service/pricing"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubValuationClient struct {
	valuation *fipeapi.Valuation
	err       error

	gotPlate string
}

func (s *stubValuationClient) LookupPlate(_ context.Context, plate string) (*fipeapi.Valuation, error) {
	s.gotPlate = plate
	if s.err != nil {
		return nil, s.err
	}
	return s.valuation, nil
}

func newTestUseCase(valuation ValuationClient) *UseCase {
	return NewUseCase(valuation, pricing.NewService(0.18), nopLogger{})
}

func TestExecute_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		req  *Request
	}{
		{"missing plate", &Request{Mileage: 50000}},
		{"blank plate", &Request{Plate: "  ", Mileage: 50000}},
		{"zero mileage", &Request{Plate: "ABC1D23"}},
		{"negative mileage", &Request{Plate: "ABC1D23", Mileage: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(&stubValuationClient{})

			resp, err := uc.Execute(context.Background(), tt.req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_MockModeWithoutAPIKey(t *testing.T) {
	uc := newTestUseCase(nil)

	resp, err := uc.Execute(context.Background(), &Request{Plate: "ABC1D23", Mileage: 50000})
	require.NoError(t, err)

	assert.Equal(t, "Toyota Corolla XEi 2.0 Flex 16V Aut.", resp.Quote.VehicleModel)
	assert.Equal(t, "2020", resp.Quote.VehicleYear)
	assert.Equal(t, 85000.0, resp.Quote.ReferenceValue)
	assert.Equal(t, 69700.0, resp.Quote.OfferValue)
	assert.True(t, resp.Quote.IsMocked)
}

func TestExecute_LiveLookup(t *testing.T) {
	valuation := &stubValuationClient{
		valuation: &fipeapi.Valuation{
			Model: "Honda Civic EXL 2.0",
			Year:  "2021",
			Value: 120000,
		},
	}
	uc := newTestUseCase(valuation)

	resp, err := uc.Execute(context.Background(), &Request{Plate: "XYZ9A87", Mileage: 30000, Name: "Maria"})
	require.NoError(t, err)

	assert.Equal(t, "XYZ9A87", valuation.gotPlate)
	assert.Equal(t, "Honda Civic EXL 2.0", resp.Quote.VehicleModel)
	assert.Equal(t, 120000.0, resp.Quote.ReferenceValue)
	assert.Equal(t, 98400.0, resp.Quote.OfferValue)
	assert.False(t, resp.Quote.IsMocked)
}

func TestExecute_VehicleNotFound(t *testing.T) {
	uc := newTestUseCase(&stubValuationClient{err: fipeapi.ErrVehicleNotFound})

	resp, err := uc.Execute(context.Background(), &Request{Plate: "NOP1E23", Mileage: 10000})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestExecute_ValuationUnavailable(t *testing.T) {
	for _, upstream := range []error{fipeapi.ErrUnavailable, fipeapi.ErrInvalidResponse} {
		t.Run(upstream.Error(), func(t *testing.T) {
			wrapped := fmt.Errorf("%w: request failed", upstream)
			uc := newTestUseCase(&stubValuationClient{err: wrapped})

			resp, err := uc.Execute(context.Background(), &Request{Plate: "ABC1D23", Mileage: 10000})
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, ErrValuationUnavailable)
		})
	}
}

func TestExecute_UnexpectedValuationError(t *testing.T) {
	uc := newTestUseCase(&stubValuationClient{err: errors.New("boom")})

	resp, err := uc.Execute(context.Background(), &Request{Plate: "ABC1D23", Mileage: 10000})
	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrInternal)
}
