package fipeapi

import "strings"

// Valuation is the normalized result of a plate lookup
type Valuation struct {
	Model string  // marca/modelo as published in the FIPE table
	Year  string  // model year, e.g. "2020"
	Value float64 // FIPE table value in BRL
}

// plateResponse mirrors the placas.fipeapi.com.br payload
type plateResponse struct {
	Data plateData `json:"data"`
}

type plateData struct {
	Veiculo vehicleInfo `json:"veiculo"`
	Fipes   []fipeEntry `json:"fipes"`
}

type vehicleInfo struct {
	UF          string `json:"uf"`
	Ano         string `json:"ano"` // "2020/2020" (fabricação/modelo)
	Cor         string `json:"cor"`
	Placa       string `json:"placa"`
	Combustivel string `json:"combustivel"`
	MarcaModelo string `json:"marca_modelo"`
	Municipio   string `json:"municipio"`
}

type fipeEntry struct {
	Valor       float64 `json:"valor"`
	Codigo      string  `json:"codigo"`
	MarcaModelo string  `json:"marca_modelo"`
}

// toValuation picks the first FIPE entry and normalizes the vehicle fields
func (r *plateResponse) toValuation() *Valuation {
	entry := r.Data.Fipes[0]

	model := entry.MarcaModelo
	if model == "" {
		model = r.Data.Veiculo.MarcaModelo
	}

	year := "N/A"
	if r.Data.Veiculo.Ano != "" {
		year = strings.SplitN(r.Data.Veiculo.Ano, "/", 2)[0]
	}

	return &Valuation{
		Model: model,
		Year:  year,
		Value: entry.Valor,
	}
}

// Logger is the logging interface the client depends on
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
