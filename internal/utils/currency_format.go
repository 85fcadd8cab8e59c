package utils

import (
	"fmt"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision renders an amount with exactly the currency's digits.
// Example: amount 96.09 with CAD (precision 2) returns "96.09"
// Example: amount 100 with AUD (precision 2) returns "100.00"
// Example: amount 1704 with JPY (precision 0) returns "1704"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return FormatWithPrecision(amount, currency.Precision)
}

// FormatWithPrecision renders an amount with exactly precision fractional digits.
// Amounts carrying more digits are truncated toward zero first.
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	places := int32(precision)
	return amount.Truncate(places).StringFixed(places)
}

// FormatConversion renders a conversion the way the CLI prints it, for example
// "AUD 100.00 = CAD 96.09". The input amount keeps the text the user typed.
func FormatConversion(amountText string, c *domain.Conversion) string {
	return fmt.Sprintf("%s %s = %s %s", c.Source, amountText, c.Destination, FormatResult(c))
}

// FormatResult renders the converted amount with the destination's digits.
func FormatResult(c *domain.Conversion) string {
	return FormatWithCurrencyPrecision(c.Result, domain.Currency{CurrencyCode: c.Destination, Precision: c.Precision})
}
