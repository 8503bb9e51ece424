package utils

import (
	"github.com/SscSPs/invoicely/internal/core/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const defaultPrecision = 2

var printer = message.NewPrinter(language.English)

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with JPY (precision 0) returns "12"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return amount.StringFixed(int32(currency.Precision))
}

// FormatAmount renders amount for display in the given currency: symbol, grouped digits
// and the currency's minor units, e.g. "$1,234.50" or "-¥1,235". Unknown codes use the
// fallback symbol and two decimals.
func FormatAmount(amount decimal.Decimal, currencyCode string) string {
	symbol := domain.FallbackCurrencySymbol
	precision := defaultPrecision
	if c, ok := domain.LookupCurrency(currencyCode); ok {
		symbol = c.Symbol
		precision = c.Precision
	}

	rounded := amount.Round(int32(precision))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}
	return sign + symbol + printer.Sprint(number.Decimal(rounded.InexactFloat64(), number.Scale(precision)))
}
