package domain

import "github.com/shopspring/decimal"

// InvoiceStats summarizes the invoice collection for the dashboard.
// PendingAmount is TotalAmount minus PaidAmount, so drafts count as pending.
type InvoiceStats struct {
	Total         int             `json:"total"`
	Draft         int             `json:"draft"`
	Sent          int             `json:"sent"`
	Paid          int             `json:"paid"`
	Overdue       int             `json:"overdue"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	PendingAmount decimal.Decimal `json:"pendingAmount"`
}

// ComputeInvoiceStats scans invoices once. Statuses are matched exactly; a record with
// an unrecognized status is counted in Total and TotalAmount only.
func ComputeInvoiceStats(invoices []Invoice) InvoiceStats {
	stats := InvoiceStats{
		Total:       len(invoices),
		TotalAmount: decimal.Zero,
		PaidAmount:  decimal.Zero,
	}
	for _, inv := range invoices {
		stats.TotalAmount = stats.TotalAmount.Add(inv.Total)
		switch inv.Status {
		case StatusDraft:
			stats.Draft++
		case StatusSent:
			stats.Sent++
		case StatusPaid:
			stats.Paid++
			stats.PaidAmount = stats.PaidAmount.Add(inv.Total)
		case StatusOverdue:
			stats.Overdue++
		}
	}
	stats.PendingAmount = stats.TotalAmount.Sub(stats.PaidAmount)
	return stats
}
