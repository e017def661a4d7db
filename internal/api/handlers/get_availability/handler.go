package get_availability

import (
	"errors"
	"net/http"

	"github.com/repasseautors/lead-service/internal/api/handlers"
	getAvailability "github.com/repasseautors/lead-service/internal/usecase/get_availability"
)

const (
	msgCalendarUnavailable = "não foi possível consultar a agenda, tente novamente"
	msgInternalError       = "erro interno ao buscar disponibilidade"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.useCase.Execute(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrCalendarUnavailable):
			h.logger.Error("GET /availability - Calendar unavailable: %v", err)
			handlers.RespondJSON(w, http.StatusBadGateway, &AvailabilityError{
				Error: msgCalendarUnavailable,
				Slots: []Slot{},
			})

		default:
			h.logger.Error("GET /availability - Failed to resolve availability: %v", err)
			handlers.RespondJSON(w, http.StatusInternalServerError, &AvailabilityError{
				Error: msgInternalError,
				Slots: []Slot{},
			})
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /availability - %d slots returned, mock=%t", len(response.Slots), response.Mock)
	handlers.RespondJSON(w, http.StatusOK, response)
}
