package services

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
)

type currencyService struct{}

// NewCurrencyService exposes the built-in currency table.
func NewCurrencyService() portssvc.CurrencySvc {
	return currencyService{}
}

func (currencyService) GetCurrencyByCode(_ context.Context, currencyCode string) (*domain.Currency, error) {
	c, ok := domain.LookupCurrency(currencyCode)
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (currencyService) ListCurrencies(_ context.Context) ([]domain.Currency, error) {
	return domain.SupportedCurrencies(), nil
}

type templateService struct{}

// NewTemplateService exposes the built-in invoice templates.
func NewTemplateService() portssvc.TemplateSvc {
	return templateService{}
}

func (templateService) ListTemplates(_ context.Context) ([]domain.Template, error) {
	return domain.Templates(), nil
}

func (templateService) GetTemplate(_ context.Context, templateID string) (*domain.Template, error) {
	t, ok := domain.LookupTemplate(templateID)
	if !ok {
		return nil, nil
	}
	return &t, nil
}
