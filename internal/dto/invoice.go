package dto

import (
	"time"

	"github.com/SscSPs/invoicely/internal/core/domain"
	"github.com/SscSPs/invoicely/internal/utils"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one billable row. The amount is always derived.
type LineItemRequest struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity" binding:"gte=0"`
	Rate        decimal.Decimal `json:"rate" binding:"gte=0"`
}

// CreateInvoiceRequest defines the data needed to author a new invoice.
// Dates use the YYYY-MM-DD layout. Omitted fields take their authoring defaults.
type CreateInvoiceRequest struct {
	InvoiceNumber   string               `json:"invoiceNumber"`
	ClientID        string               `json:"clientId"`
	NewClient       *CreateClientRequest `json:"newClient"`
	ClientName      string               `json:"clientName"`
	ClientEmail     string               `json:"clientEmail" binding:"omitempty,email"`
	ClientAddress   string               `json:"clientAddress"`
	ClientCurrency  string               `json:"clientCurrency" binding:"omitempty,currency"`
	IssueDate       string               `json:"issueDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate         string               `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	TemplateID      string               `json:"templateId"`
	PaymentMethodID string               `json:"paymentMethodId"`
	Items           []LineItemRequest    `json:"items" binding:"dive"`
	Notes           string               `json:"notes"`
	Terms           *string              `json:"terms"` // nil means "use the default terms"
}

// UpdateInvoiceRequest is a partial patch; nil fields are left untouched.
// A non-nil Items replaces the whole list.
type UpdateInvoiceRequest struct {
	InvoiceNumber   *string               `json:"invoiceNumber" binding:"omitempty,min=1"`
	ClientID        *string               `json:"clientId"`
	ClientName      *string               `json:"clientName"`
	ClientEmail     *string               `json:"clientEmail" binding:"omitempty,email"`
	ClientAddress   *string               `json:"clientAddress"`
	ClientCurrency  *string               `json:"clientCurrency" binding:"omitempty,currency"`
	IssueDate       *string               `json:"issueDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate         *string               `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	TemplateID      *string               `json:"templateId"`
	PaymentMethodID *string               `json:"paymentMethodId"`
	Items           []LineItemRequest     `json:"items" binding:"omitempty,dive"`
	Notes           *string               `json:"notes"`
	Terms           *string               `json:"terms"`
	Status          *domain.InvoiceStatus `json:"status" binding:"omitempty,invoicestatus"`
}

// MarkPaidRequest carries the optional payment date; today is used when it is empty.
type MarkPaidRequest struct {
	PaidDate string `json:"paidDate" binding:"omitempty,datetime=2006-01-02"`
}

// ListInvoicesParams defines query parameters for listing invoices.
type ListInvoicesParams struct {
	Search    string `form:"search"`
	Status    string `form:"status" binding:"omitempty,oneof=all draft sent paid overdue"`
	Sort      string `form:"sort" binding:"omitempty,oneof=asc desc"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// LineItemResponse is a line item as returned by the API.
type LineItemResponse struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	ID              string             `json:"id"`
	InvoiceNumber   string             `json:"invoiceNumber"`
	ClientID        string             `json:"clientId,omitempty"`
	ClientName      string             `json:"clientName"`
	ClientEmail     string             `json:"clientEmail"`
	ClientAddress   string             `json:"clientAddress"`
	ClientCurrency  string             `json:"clientCurrency"`
	IssueDate       string             `json:"issueDate"`
	DueDate         string             `json:"dueDate"`
	TemplateID      string             `json:"templateId"`
	PaymentMethodID string             `json:"paymentMethodId,omitempty"`
	Items           []LineItemResponse `json:"items"`
	Notes           string             `json:"notes"`
	Terms           string             `json:"terms"`
	Total           decimal.Decimal    `json:"total"`
	FormattedTotal  string             `json:"formattedTotal"`
	Status          string             `json:"status"`
	SentAt          *time.Time         `json:"sentAt,omitempty"`
	PaidAt          *string            `json:"paidAt,omitempty"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

// ListInvoicesResponse is one page of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// InvoiceNumberResponse carries the number the next invoice would receive.
type InvoiceNumberResponse struct {
	InvoiceNumber string `json:"invoiceNumber"`
}

// SweepResponse reports the invoices an overdue sweep changed.
type SweepResponse struct {
	AsOf     string            `json:"asOf"`
	Invoices []InvoiceResponse `json:"invoices"`
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(domain.DateLayout)
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	items := make([]LineItemResponse, len(inv.Items))
	for i, item := range inv.Items {
		items[i] = LineItemResponse{
			Description: item.Description,
			Quantity:    item.Quantity,
			Rate:        item.Rate,
			Amount:      item.Amount,
		}
	}

	res := InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		ClientID:        inv.ClientID,
		ClientName:      inv.ClientName,
		ClientEmail:     inv.ClientEmail,
		ClientAddress:   inv.ClientAddress,
		ClientCurrency:  inv.ClientCurrency,
		IssueDate:       formatDate(inv.IssueDate),
		DueDate:         formatDate(inv.DueDate),
		TemplateID:      inv.TemplateID,
		PaymentMethodID: inv.PaymentMethodID,
		Items:           items,
		Notes:           inv.Notes,
		Terms:           inv.Terms,
		Total:           inv.Total,
		FormattedTotal:  utils.FormatAmount(inv.Total, inv.ClientCurrency),
		Status:          string(inv.Status),
		SentAt:          inv.SentAt,
		CreatedAt:       inv.CreatedAt,
		UpdatedAt:       inv.UpdatedAt,
	}
	if inv.PaidAt != nil {
		paid := formatDate(*inv.PaidAt)
		res.PaidAt = &paid
	}
	return res
}

// ToListInvoiceResponse converts a slice of domain.Invoice to a slice of InvoiceResponse DTOs
func ToListInvoiceResponse(invoices []domain.Invoice) []InvoiceResponse {
	res := make([]InvoiceResponse, len(invoices))
	for i := range invoices {
		res[i] = ToInvoiceResponse(&invoices[i])
	}
	return res
}
