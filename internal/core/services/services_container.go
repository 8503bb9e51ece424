package services

import (
	"github.com/SscSPs/invoicely/internal/core/domain"
	portsrepo "github.com/SscSPs/invoicely/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/invoicely/internal/core/ports/services"
	"github.com/SscSPs/invoicely/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos *portsrepo.RepositoryProvider, opts ...ServiceOption) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Profile first: it supplies the currency and due-day defaults to the others
	container.Profile = NewProfileService(repos.ProfileRepo, domain.Preferences{
		DefaultCurrency: cfg.DefaultCurrency,
		DefaultDueDays:  cfg.DefaultDueDays,
	}, opts...)

	container.Client = NewClientService(repos.ClientRepo, container.Profile, opts...)
	container.PaymentMethod = NewPaymentMethodService(repos.PaymentMethodRepo, opts...)

	var policy domain.TransitionPolicy = domain.StrictTransitions{}
	if !cfg.StrictStatusTransitions {
		policy = domain.PermissiveTransitions{}
	}
	container.Invoice = NewInvoiceService(repos.InvoiceRepo, InvoiceDependencies{
		Clients:        container.Client,
		PaymentMethods: container.PaymentMethod,
		Profile:        container.Profile,
		Policy:         policy,
	}, opts...)

	container.Reporting = NewReportingService(repos.InvoiceRepo, opts...)
	container.Currency = NewCurrencyService()
	container.Template = NewTemplateService()

	return container
}
