package services

import (
	"context"

	"github.com/SscSPs/invoicely/internal/core/domain"
)

// TemplateSvc exposes the built-in invoice templates.
type TemplateSvc interface {
	ListTemplates(ctx context.Context) ([]domain.Template, error)
	GetTemplate(ctx context.Context, templateID string) (*domain.Template, error)
}
