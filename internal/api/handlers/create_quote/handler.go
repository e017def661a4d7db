package create_quote

import (
	"errors"
	"net/http"

	"github.com/repasseautors/lead-service/internal/api/handlers"
	createQuote "github.com/repasseautors/lead-service/internal/usecase/create_quote"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgIncompleteData     = "Dados incompletos"
	msgVehicleNotFound    = "Veículo não encontrado na base FIPE"
	msgQuoteFailed        = "Falha ao gerar cotação. Tente novamente."
)

type Handler struct {
	useCase CreateQuoteUseCase
	debug   bool // expose error details on 5xx responses (development only)
	logger  Logger
}

func NewHandler(useCase CreateQuoteUseCase, debug bool, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		debug:   debug,
		logger:  logger,
	}
}

// Handle POST /api/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quote - Invalid request body: %v", err)
		handlers.RespondJSON(w, http.StatusBadRequest, &QuoteError{Error: msgInvalidRequestBody})
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createQuote.ErrInvalidInput):
			h.logger.Warn("POST /quote - Validation failed: plate=%s: %v", req.Plate, err)
			handlers.RespondJSON(w, http.StatusBadRequest, &QuoteError{Error: msgIncompleteData})

		case errors.Is(err, createQuote.ErrVehicleNotFound):
			h.logger.Warn("POST /quote - Vehicle not found: plate=%s", req.Plate)
			handlers.RespondJSON(w, http.StatusNotFound, &QuoteError{Error: msgVehicleNotFound})

		case errors.Is(err, createQuote.ErrValuationUnavailable):
			h.logger.Error("POST /quote - Valuation unavailable: plate=%s: %v", req.Plate, err)
			handlers.RespondJSON(w, http.StatusBadGateway, h.quoteError(msgQuoteFailed, err))

		default:
			h.logger.Error("POST /quote - Failed to create quote: plate=%s: %v", req.Plate, err)
			handlers.RespondJSON(w, http.StatusInternalServerError, h.quoteError(msgQuoteFailed, err))
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /quote - Quote created: plate=%s, modelo=%s, proposta=%.0f, mock=%t",
		req.Plate, response.Modelo, response.ValorProposta, response.Mock)
	handlers.RespondJSON(w, http.StatusOK, response)
}

func (h *Handler) quoteError(msg string, err error) *QuoteError {
	out := &QuoteError{Error: msg}
	if h.debug {
		out.Details = err.Error()
	}
	return out
}
