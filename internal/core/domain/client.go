package domain

// Client is a billed party. Invoices keep their own snapshot of the fields they print,
// so editing or deleting a client never changes an issued invoice.
type Client struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Address  string `json:"address"`
	Currency string `json:"currency"` // ISO code, e.g. "USD"
	Timestamps
}

// Snapshot copies the client fields an invoice carries.
func (c Client) Snapshot() ClientSnapshot {
	return ClientSnapshot{
		ClientName:     c.Name,
		ClientEmail:    c.Email,
		ClientAddress:  c.Address,
		ClientCurrency: c.Currency,
	}
}
