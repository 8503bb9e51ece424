package domain

// DefaultDueDays is the payment window applied when the profile does not set one.
const DefaultDueDays = 30

// UserProfile is the single local profile of the person issuing invoices.
// There are no credentials: the record only carries business details and defaults.
type UserProfile struct {
	ID              string `json:"id"`
	Email           string `json:"email"`
	Name            string `json:"name"`
	Company         string `json:"company"`
	Phone           string `json:"phone"`
	Address         string `json:"address"`
	Website         string `json:"website"`
	TaxID           string `json:"taxId"`
	DefaultCurrency string `json:"defaultCurrency"`
	DefaultDueDays  int    `json:"defaultDueDays"`
	Timestamps
}

// Preferences are the defaults new clients and invoices inherit.
type Preferences struct {
	DefaultCurrency string
	DefaultDueDays  int
}
