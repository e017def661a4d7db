package schedule_visit

import (
	"errors"
	"net/http"

	"github.com/repasseautors/lead-service/internal/api/handlers"
	scheduleVisit "github.com/repasseautors/lead-service/internal/usecase/schedule_visit"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidTimestamp   = "formato de data inválido, esperado ISO 8601"
	msgIncompleteData     = "Dados incompletos"
	msgSlotTaken          = "Este horário acabou de ser reservado. Escolha outro horário."
	msgScheduleFailed     = "Erro ao criar agendamento"
)

type Handler struct {
	useCase ScheduleVisitUseCase
	debug   bool // expose error details on 5xx responses (development only)
	logger  Logger
}

func NewHandler(useCase ScheduleVisitUseCase, debug bool, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		debug:   debug,
		logger:  logger,
	}
}

// Handle POST /api/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /schedule - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, &ScheduleError{Error: msgInvalidRequestBody})
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /schedule - Failed to parse timestamps: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, &ScheduleError{Error: msgInvalidTimestamp})
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, scheduleVisit.ErrInvalidInput):
			h.logger.Warn("POST /schedule - Validation failed: name=%s: %v", req.Name, err)
			handlers.RespondJSON(w, http.StatusBadRequest, &ScheduleError{Error: msgIncompleteData})

		case errors.Is(err, scheduleVisit.ErrSlotTaken):
			h.logger.Warn("POST /schedule - Slot taken: name=%s, slot=%s", req.Name, req.ReadableSlot)
			handlers.RespondJSON(w, http.StatusConflict, &ScheduleError{Error: msgSlotTaken})

		case errors.Is(err, scheduleVisit.ErrCalendarUnavailable):
			h.logger.Error("POST /schedule - Calendar unavailable: name=%s: %v", req.Name, err)
			handlers.RespondJSON(w, http.StatusBadGateway, h.scheduleError(msgScheduleFailed, err))

		default:
			h.logger.Error("POST /schedule - Failed to schedule: name=%s: %v", req.Name, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, h.scheduleError(msgScheduleFailed, err))
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /schedule - Booking confirmed: event_id=%s, name=%s, slot=%s, mock=%t",
		response.EventID, req.Name, req.ReadableSlot, response.Mock)
	handlers.RespondJSON(w, http.StatusOK, response)
}

func (h *Handler) scheduleError(msg string, err error) *ScheduleError {
	out := &ScheduleError{Error: msg}
	if h.debug {
		out.Details = err.Error()
	}
	return out
}
