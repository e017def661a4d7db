package create_quote

import (
	createQuote "github.com/repasseautors/lead-service/internal/usecase/create_quote"
)

// QuoteRequest is the wizard's quote submission
type QuoteRequest struct {
	Plate   string `json:"plate"`
	Mileage int64  `json:"mileage"`
	Name    string `json:"name"`
}

// QuoteResponse keeps the field names the frontend was built against
type QuoteResponse struct {
	Sucesso       bool    `json:"sucesso"`
	Modelo        string  `json:"modelo"`
	Ano           string  `json:"ano"`
	ValorFipe     float64 `json:"valorFipe"`
	ValorProposta float64 `json:"valorProposta"`
	Mock          bool    `json:"mock,omitempty"`
}

// QuoteError is the failure payload
type QuoteError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model
func (r *QuoteRequest) ToUseCaseRequest() *createQuote.Request {
	return &createQuote.Request{
		Plate:   r.Plate,
		Mileage: r.Mileage,
		Name:    r.Name,
	}
}

// FromUseCaseResponse converts the use case result into the wire model
func FromUseCaseResponse(resp *createQuote.Response) *QuoteResponse {
	return &QuoteResponse{
		Sucesso:       true,
		Modelo:        resp.Quote.VehicleModel,
		Ano:           resp.Quote.VehicleYear,
		ValorFipe:     resp.Quote.ReferenceValue,
		ValorProposta: resp.Quote.OfferValue,
		Mock:          resp.Quote.IsMocked,
	}
}
