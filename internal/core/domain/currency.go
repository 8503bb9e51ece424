package domain

// DefaultCurrencyCode is used when neither the client nor the profile names a currency.
const DefaultCurrencyCode = "USD"

// FallbackCurrencySymbol is shown for codes missing from the currency table.
const FallbackCurrencySymbol = "$"

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "USD"
	Symbol       string `json:"symbol"`       // e.g., "$"
	Name         string `json:"name"`         // e.g., "US Dollar"
	Precision    int    `json:"precision"`    // minor units shown when formatting
}

var supportedCurrencies = []Currency{
	{CurrencyCode: "USD", Symbol: "$", Name: "US Dollar", Precision: 2},
	{CurrencyCode: "EUR", Symbol: "€", Name: "Euro", Precision: 2},
	{CurrencyCode: "GBP", Symbol: "£", Name: "British Pound", Precision: 2},
	{CurrencyCode: "CAD", Symbol: "C$", Name: "Canadian Dollar", Precision: 2},
	{CurrencyCode: "AUD", Symbol: "A$", Name: "Australian Dollar", Precision: 2},
	{CurrencyCode: "JPY", Symbol: "¥", Name: "Japanese Yen", Precision: 0},
	{CurrencyCode: "CHF", Symbol: "CHF", Name: "Swiss Franc", Precision: 2},
	{CurrencyCode: "CNY", Symbol: "¥", Name: "Chinese Yuan", Precision: 2},
}

// SupportedCurrencies returns a copy of the static currency table in display order.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// LookupCurrency finds a currency by its code.
func LookupCurrency(code string) (Currency, bool) {
	for _, c := range supportedCurrencies {
		if c.CurrencyCode == code {
			return c, true
		}
	}
	return Currency{}, false
}

// CurrencySymbol returns the symbol for code, or FallbackCurrencySymbol if the code is unknown.
func CurrencySymbol(code string) string {
	if c, ok := LookupCurrency(code); ok {
		return c.Symbol
	}
	return FallbackCurrencySymbol
}
