package dto

import (
	"github.com/SscSPs/invoicely/internal/core/domain"
	"github.com/SscSPs/invoicely/internal/utils"
	"github.com/shopspring/decimal"
)

// InvoiceStatsResponse is the dashboard summary. Pending covers every invoice that is
// not paid, drafts included.
type InvoiceStatsResponse struct {
	Total         int             `json:"total"`
	Draft         int             `json:"draft"`
	Sent          int             `json:"sent"`
	Paid          int             `json:"paid"`
	Overdue       int             `json:"overdue"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
	Formatted     struct {
		TotalAmount   string `json:"totalAmount"`
		PaidAmount    string `json:"paidAmount"`
		PendingAmount string `json:"pendingAmount"`
	} `json:"formatted"`
}

// ToInvoiceStatsResponse converts domain stats, formatting the sums in currencyCode.
func ToInvoiceStatsResponse(s domain.InvoiceStats, currencyCode string) InvoiceStatsResponse {
	res := InvoiceStatsResponse{
		Total:         s.Total,
		Draft:         s.Draft,
		Sent:          s.Sent,
		Paid:          s.Paid,
		Overdue:       s.Overdue,
		TotalAmount:   s.TotalAmount,
		PaidAmount:    s.PaidAmount,
		PendingAmount: s.PendingAmount,
	}
	res.Formatted.TotalAmount = utils.FormatAmount(s.TotalAmount, currencyCode)
	res.Formatted.PaidAmount = utils.FormatAmount(s.PaidAmount, currencyCode)
	res.Formatted.PendingAmount = utils.FormatAmount(s.PendingAmount, currencyCode)
	return res
}
