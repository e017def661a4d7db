package get_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repasseautors/lead-service/internal/domain"
	getAvailability "github.com/repasseautors/lead-service/internal/usecase/get_availability"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type stubUseCase struct {
	resp *getAvailability.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context) (*getAvailability.Response, error) {
	return s.resp, s.err
}

func doRequest(t *testing.T, useCase GetAvailabilityUseCase) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(useCase, nopLogger{})
	req := httptest.NewRequest(http.MethodGet, "/api/availability", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, domain.Location)
	useCase := &stubUseCase{
		resp: &getAvailability.Response{
			Slots: []domain.TimeSlot{
				{Start: start, End: start.Add(time.Hour), Display: "09:00"},
			},
			CalendarID: "vistorias@repasseautors.com.br",
		},
	}

	rec := doRequest(t, useCase)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var body AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.OK)
	require.Len(t, body.Slots, 1)
	assert.Equal(t, "2026-03-02T09:00:00-03:00", body.Slots[0].Start)
	assert.Equal(t, "2026-03-02T10:00:00-03:00", body.Slots[0].End)
	assert.Equal(t, "09:00", body.Slots[0].Display)
	assert.Equal(t, "vistorias@repasseautors.com.br", body.CalendarID)
	assert.False(t, body.Mock)
}

func TestHandle_MockMode(t *testing.T) {
	useCase := &stubUseCase{
		resp: &getAvailability.Response{Slots: []domain.TimeSlot{}, Mock: true},
	}

	rec := doRequest(t, useCase)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["mock"])
	assert.NotContains(t, body, "calendarId")
}

func TestHandle_CalendarUnavailable(t *testing.T) {
	useCase := &stubUseCase{
		err: fmt.Errorf("%w: connection refused", getAvailability.ErrCalendarUnavailable),
	}

	rec := doRequest(t, useCase)

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var body AvailabilityError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Equal(t, "não foi possível consultar a agenda, tente novamente", body.Error)
	assert.NotNil(t, body.Slots)
	assert.Empty(t, body.Slots)
}

func TestHandle_InternalError(t *testing.T) {
	useCase := &stubUseCase{err: fmt.Errorf("boom")}

	rec := doRequest(t, useCase)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body AvailabilityError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.OK)
	assert.Equal(t, "erro interno ao buscar disponibilidade", body.Error)
}
