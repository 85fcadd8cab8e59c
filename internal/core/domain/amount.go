package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts are bounded so that multiplying and truncating stay cheap.
const (
	MaxAmountExponent = 64
	MaxAmountDigits   = 64
)

var errEmptyAmount = errors.New("amount is empty")

// ParseAmount parses decimal amount text. Grouping commas are removed first, so
// "1,000.50" parses as 1000.50. A leading minus is allowed.
func ParseAmount(text string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	if cleaned == "" {
		return decimal.Zero, errEmptyAmount
	}
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("amount %q is not a decimal number: %w", text, err)
	}
	if err := CheckAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

// CheckAmount rejects amounts whose exponent or significant digits exceed
// MaxAmountExponent and MaxAmountDigits.
func CheckAmount(amount decimal.Decimal) error {
	if exp := amount.Exponent(); exp > MaxAmountExponent || exp < -MaxAmountExponent {
		return fmt.Errorf("amount exponent %d is out of range", exp)
	}
	if digits := amount.NumDigits(); digits > MaxAmountDigits {
		return fmt.Errorf("amount has %d digits, at most %d are allowed", digits, MaxAmountDigits)
	}
	return nil
}
