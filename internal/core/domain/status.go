package domain

// InvoiceStatus is the lifecycle state of an invoice.
type InvoiceStatus string

const (
	StatusDraft   InvoiceStatus = "draft"
	StatusSent    InvoiceStatus = "sent"
	StatusPaid    InvoiceStatus = "paid"
	StatusOverdue InvoiceStatus = "overdue"
)

// InvoiceStatuses lists every recognized status.
var InvoiceStatuses = []InvoiceStatus{StatusDraft, StatusSent, StatusPaid, StatusOverdue}

// IsValid reports whether s is one of the four recognized statuses.
func (s InvoiceStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue:
		return true
	}
	return false
}

// statusTransitions is the lifecycle table. Paid has no outgoing edges.
var statusTransitions = map[InvoiceStatus][]InvoiceStatus{
	StatusDraft:   {StatusSent, StatusOverdue},
	StatusSent:    {StatusPaid, StatusOverdue},
	StatusOverdue: {StatusPaid},
}

// CanTransition reports whether the lifecycle table allows moving from one status to another.
func CanTransition(from, to InvoiceStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionPolicy decides whether a status write is accepted.
type TransitionPolicy interface {
	Allow(from, to InvoiceStatus) bool
}

// StrictTransitions only accepts edges present in the lifecycle table.
type StrictTransitions struct{}

func (StrictTransitions) Allow(from, to InvoiceStatus) bool { return CanTransition(from, to) }

// PermissiveTransitions accepts any write of a recognized status, including re-sending
// or re-paying an invoice. It reproduces the legacy behavior.
type PermissiveTransitions struct{}

func (PermissiveTransitions) Allow(_, to InvoiceStatus) bool { return to.IsValid() }
