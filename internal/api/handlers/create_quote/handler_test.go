package create_quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repasseautors/lead-service/internal/domain"
	createQuote "github.com/repasseautors/lead-service/internal/usecase/create_quote"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *createQuote.Response
	err  error

	gotReq *createQuote.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createQuote.Request) (*createQuote.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

func doRequest(t *testing.T, useCase CreateQuoteUseCase, debug bool, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, debug, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	useCase := &stubUseCase{
		resp: &createQuote.Response{
			Quote: domain.Quote{
				VehicleModel:   "Toyota Corolla XEi 2.0 Flex 16V Aut.",
				VehicleYear:    "2020",
				ReferenceValue: 85000,
				OfferValue:     69700,
			},
		},
	}

	rec := doRequest(t, useCase, false, `{"plate": "ABC1D23", "mileage": 50000, "name": "João"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, useCase.gotReq)
	assert.Equal(t, "ABC1D23", useCase.gotReq.Plate)
	assert.Equal(t, int64(50000), useCase.gotReq.Mileage)

	var body QuoteResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Sucesso)
	assert.Equal(t, "Toyota Corolla XEi 2.0 Flex 16V Aut.", body.Modelo)
	assert.Equal(t, "2020", body.Ano)
	assert.Equal(t, 85000.0, body.ValorFipe)
	assert.Equal(t, 69700.0, body.ValorProposta)
}

func TestHandle_MockOmittedWhenFalse(t *testing.T) {
	useCase := &stubUseCase{resp: &createQuote.Response{Quote: domain.Quote{OfferValue: 1}}}

	rec := doRequest(t, useCase, false, `{"plate": "ABC1D23", "mileage": 1}`)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body, "mock")
}

func TestHandle_InvalidBody(t *testing.T) {
	useCase := &stubUseCase{}

	rec := doRequest(t, useCase, false, `{"plate": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, useCase.gotReq)

	var body QuoteError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "corpo da requisição inválido", body.Error)
}

func TestHandle_ValidationError(t *testing.T) {
	useCase := &stubUseCase{err: fmt.Errorf("%w: plate is required", createQuote.ErrInvalidInput)}

	rec := doRequest(t, useCase, false, `{"mileage": 50000}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body QuoteError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Dados incompletos", body.Error)
}

func TestHandle_VehicleNotFound(t *testing.T) {
	useCase := &stubUseCase{err: createQuote.ErrVehicleNotFound}

	rec := doRequest(t, useCase, false, `{"plate": "NOP1E23", "mileage": 1}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body QuoteError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Veículo não encontrado na base FIPE", body.Error)
}

func TestHandle_ValuationUnavailable(t *testing.T) {
	useCase := &stubUseCase{err: fmt.Errorf("%w: timeout", createQuote.ErrValuationUnavailable)}

	rec := doRequest(t, useCase, false, `{"plate": "ABC1D23", "mileage": 1}`)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var body QuoteError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Falha ao gerar cotação. Tente novamente.", body.Error)
	assert.Empty(t, body.Details)
}

func TestHandle_DebugExposesDetails(t *testing.T) {
	useCase := &stubUseCase{err: fmt.Errorf("%w: timeout after 10s", createQuote.ErrValuationUnavailable)}

	rec := doRequest(t, useCase, true, `{"plate": "ABC1D23", "mileage": 1}`)

	var body QuoteError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Details, "timeout after 10s")
}

func TestHandle_InternalError(t *testing.T) {
	useCase := &stubUseCase{err: fmt.Errorf("boom")}

	rec := doRequest(t, useCase, false, `{"plate": "ABC1D23", "mileage": 1}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
