package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used by the HTTP handlers, the CLI and the overdue sweeper.
type ServiceContainer struct {
	Client        ClientSvcFacade
	Invoice       InvoiceSvcFacade
	PaymentMethod PaymentMethodSvcFacade
	Reporting     ReportingSvc
	Profile       ProfileSvcFacade
	Currency      CurrencySvc
	Template      TemplateSvc
}

// EventTracker receives product analytics events. Implementations must not block.
type EventTracker interface {
	Enqueue(distinctID string, event string, properties map[string]any)
}
