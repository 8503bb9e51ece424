package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceNumberPrefix is the literal that starts every generated invoice number.
const InvoiceNumberPrefix = "INV"

// LineItem is one billable row. Amount is derived from Quantity and Rate and is
// recomputed by every setter; it is never written on its own.
type LineItem struct {
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Rate        decimal.Decimal `json:"rate"`
	Amount      decimal.Decimal `json:"amount"`
}

// NewLineItem builds a line item with its amount already derived.
func NewLineItem(description string, quantity, rate decimal.Decimal) LineItem {
	item := LineItem{Description: description, Quantity: quantity, Rate: rate}
	item.Recompute()
	return item
}

// SetQuantity writes the quantity and refreshes the amount.
func (li *LineItem) SetQuantity(q decimal.Decimal) {
	li.Quantity = q
	li.Recompute()
}

// SetRate writes the rate and refreshes the amount.
func (li *LineItem) SetRate(r decimal.Decimal) {
	li.Rate = r
	li.Recompute()
}

// Recompute sets Amount = Quantity × Rate.
func (li *LineItem) Recompute() {
	li.Amount = li.Quantity.Mul(li.Rate)
}

// ClientSnapshot is the client data copied onto an invoice when it is authored.
type ClientSnapshot struct {
	ClientName     string `json:"clientName"`
	ClientEmail    string `json:"clientEmail"`
	ClientAddress  string `json:"clientAddress"`
	ClientCurrency string `json:"clientCurrency"`
}

// Invoice is a billing document for one client.
type Invoice struct {
	ID            string `json:"id"`
	InvoiceNumber string `json:"invoiceNumber"`
	ClientID      string `json:"clientId,omitempty"` // optional back-reference, never dereferenced for display
	ClientSnapshot
	IssueDate       time.Time       `json:"issueDate"`
	DueDate         time.Time       `json:"dueDate"`
	TemplateID      string          `json:"templateId"`
	PaymentMethodID string          `json:"paymentMethodId,omitempty"`
	Items           []LineItem      `json:"items"`
	Notes           string          `json:"notes"`
	Terms           string          `json:"terms"`
	Total           decimal.Decimal `json:"total"`
	Status          InvoiceStatus   `json:"status"`
	SentAt          *time.Time      `json:"sentAt,omitempty"`
	PaidAt          *time.Time      `json:"paidAt,omitempty"`
	Timestamps
}

// SumLineItems adds up the amounts of items.
func SumLineItems(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

// RecalculateTotal refreshes every line amount and then the invoice total.
// It runs on every save so a stale caller-supplied total never survives.
func (inv *Invoice) RecalculateTotal() {
	for i := range inv.Items {
		inv.Items[i].Recompute()
	}
	inv.Total = SumLineItems(inv.Items)
}

// IsOverdueAt reports whether a sent invoice's due date has passed as of the given instant.
func (inv Invoice) IsOverdueAt(asOf time.Time) bool {
	if inv.Status != StatusSent || inv.DueDate.IsZero() {
		return false
	}
	return DateOf(inv.DueDate).Before(DateOf(asOf))
}

// SortDate is the date used to order invoice listings: the issue date, or the
// creation instant for invoices saved without one.
func (inv Invoice) SortDate() time.Time {
	if !inv.IssueDate.IsZero() {
		return inv.IssueDate
	}
	return inv.CreatedAt
}

// Clone returns a copy that shares no mutable state with inv.
func (inv Invoice) Clone() Invoice {
	out := inv
	if inv.Items != nil {
		out.Items = make([]LineItem, len(inv.Items))
		copy(out.Items, inv.Items)
	}
	if inv.SentAt != nil {
		t := *inv.SentAt
		out.SentAt = &t
	}
	if inv.PaidAt != nil {
		t := *inv.PaidAt
		out.PaidAt = &t
	}
	return out
}

// YearPrefix is the prefix shared by all invoice numbers generated in year.
func YearPrefix(year int) string {
	return fmt.Sprintf("%s-%d", InvoiceNumberPrefix, year)
}

// NextInvoiceNumber returns INV-{year}-{n} where n is one more than the number of
// existing invoices whose number starts with the year prefix, zero-padded to 4 digits.
// The count covers invoices that exist now, so a number freed by a deletion is handed
// out again.
func NextInvoiceNumber(existing []Invoice, year int) string {
	prefix := YearPrefix(year)
	count := 0
	for _, inv := range existing {
		if strings.HasPrefix(inv.InvoiceNumber, prefix) {
			count++
		}
	}
	return fmt.Sprintf("%s-%04d", prefix, count+1)
}
