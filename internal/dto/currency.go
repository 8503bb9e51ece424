package dto

import "github.com/SscSPs/invoicely/internal/core/domain"

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: curr.CurrencyCode,
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		Precision:    curr.Precision,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}

// TemplateResponse defines the data returned for an invoice template.
type TemplateResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	HeaderColor string `json:"headerColor"`
	FontFamily  string `json:"fontFamily"`
}

// ToListTemplateResponse converts templates to response DTOs.
func ToListTemplateResponse(templates []domain.Template) []TemplateResponse {
	res := make([]TemplateResponse, len(templates))
	for i, t := range templates {
		res[i] = TemplateResponse{
			ID:          t.ID,
			Name:        t.Name,
			Description: t.Description,
			HeaderColor: t.HeaderColor,
			FontFamily:  t.FontFamily,
		}
	}
	return res
}
