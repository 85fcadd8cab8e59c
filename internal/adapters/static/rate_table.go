package static

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// RateTable is an immutable set of directly quoted rates keyed by the
// concatenated pair, e.g. "AUDUSD".
type RateTable struct {
	rates map[string]decimal.Decimal
}

// Ensure implementation matches interface
var _ portsrepo.RateReader = (*RateTable)(nil)

// NewRateTable validates the quotes and builds a table. Keys are concatenated
// pairs and values decimal text. Every rate must be positive and a pair may not
// be quoted in both directions.
func NewRateTable(quotes map[string]string) (*RateTable, error) {
	rates := make(map[string]decimal.Decimal, len(quotes))
	for key, raw := range quotes {
		pair, ok := domain.ParsePairKey(key)
		if !ok {
			return nil, fmt.Errorf("%w: rate key %q is not a currency pair", apperrors.ErrValidation, key)
		}
		if pair.IsIdentity() {
			return nil, fmt.Errorf("%w: rate %s quotes a currency against itself", apperrors.ErrValidation, pair)
		}
		rate, err := decimal.NewFromString(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("%w: rate %s has invalid value %q: %v", apperrors.ErrValidation, pair, raw, err)
		}
		if !rate.IsPositive() {
			return nil, fmt.Errorf("%w: rate %s must be positive, got %s", apperrors.ErrValidation, pair, rate)
		}
		if _, dup := rates[pair.Key()]; dup {
			return nil, fmt.Errorf("%w: rate %s is quoted more than once", apperrors.ErrValidation, pair)
		}
		rates[pair.Key()] = rate
	}
	for key := range rates {
		pair, _ := domain.ParsePairKey(key)
		if _, both := rates[pair.Reverse().Key()]; both {
			return nil, fmt.Errorf("%w: %s is quoted in both directions", apperrors.ErrValidation, pair)
		}
	}
	return &RateTable{rates: rates}, nil
}

// FindRate looks up the quoted rate of base+quote. All whitespace is removed from
// the key before lookup. Unquoted pairs return zero.
func (t *RateTable) FindRate(_ context.Context, base, quote string) (decimal.Decimal, error) {
	key := strings.ToUpper(stripSpaces(base + quote))
	if key == "" {
		return decimal.Zero, apperrors.NewInvalidInputError("rate lookup needs a currency pair")
	}
	rate, ok := t.rates[key]
	if !ok {
		return decimal.Zero, nil
	}
	return rate, nil
}

// ListRates returns a copy of every quoted rate keyed by pair.
func (t *RateTable) ListRates(_ context.Context) map[domain.RatePair]decimal.Decimal {
	out := make(map[domain.RatePair]decimal.Decimal, len(t.rates))
	for key, rate := range t.rates {
		pair, _ := domain.ParsePairKey(key)
		out[pair] = rate
	}
	return out
}

func stripSpaces(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
