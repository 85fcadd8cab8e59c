package static

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
)

// MaxPrecision is the largest number of fractional digits a currency may declare.
const MaxPrecision = 18

// PrecisionTable maps known currencies to the number of fractional digits their
// amounts are truncated to.
type PrecisionTable struct {
	digits   map[domain.CurrencyCode]int
	fallback int
}

// Ensure implementation matches interface
var _ portsrepo.PrecisionReader = (*PrecisionTable)(nil)

// NewPrecisionTable validates and builds a precision table. fallback applies to
// every currency not in digits.
func NewPrecisionTable(digits map[string]int, fallback int) (*PrecisionTable, error) {
	if fallback < 0 || fallback > MaxPrecision {
		return nil, fmt.Errorf("%w: fallback precision must be between 0 and %d", apperrors.ErrValidation, MaxPrecision)
	}
	table := make(map[domain.CurrencyCode]int, len(digits))
	for raw, d := range digits {
		code := domain.NormalizeCode(raw)
		if !code.IsWellFormed() {
			return nil, fmt.Errorf("%w: precision key %q is not a currency code", apperrors.ErrValidation, raw)
		}
		if d < 0 || d > MaxPrecision {
			return nil, fmt.Errorf("%w: precision of %s must be between 0 and %d", apperrors.ErrValidation, code, MaxPrecision)
		}
		table[code] = d
	}
	return &PrecisionTable{digits: table, fallback: fallback}, nil
}

// DigitsFor returns the configured digits of a currency, or the fallback.
func (t *PrecisionTable) DigitsFor(_ context.Context, currency string) (int, error) {
	code := domain.NormalizeCode(currency)
	if code.IsEmpty() {
		return 0, apperrors.NewInvalidInputError("precision lookup needs a currency, got %q", currency)
	}
	if d, ok := t.digits[code]; ok {
		return d, nil
	}
	return t.fallback, nil
}

// IsKnown reports whether the currency is in the table.
func (t *PrecisionTable) IsKnown(_ context.Context, currency string) (bool, error) {
	code := domain.NormalizeCode(currency)
	if code.IsEmpty() {
		return false, apperrors.NewInvalidInputError("availability check needs a currency, got %q", currency)
	}
	_, ok := t.digits[code]
	return ok, nil
}

// ListCurrencies returns the known currencies sorted by code.
func (t *PrecisionTable) ListCurrencies(_ context.Context) []domain.Currency {
	out := make([]domain.Currency, 0, len(t.digits))
	for code, d := range t.digits {
		out = append(out, domain.Currency{CurrencyCode: code, Precision: d})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CurrencyCode < out[j].CurrencyCode })
	return out
}
