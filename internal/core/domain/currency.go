package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// WorkingPrecision is the number of fractional digits kept by every intermediate
// division (reciprocals and bridge combinations). Rounding is half-up.
const WorkingPrecision int32 = 10

// FallbackPrecision is the number of fractional digits used for a currency that has
// no entry in the precision table.
const FallbackPrecision = 10

// CurrencyCode is a 3-letter currency identifier, always stored upper-cased.
type CurrencyCode string

// NormalizeCode trims surrounding whitespace and upper-cases a raw currency code.
func NormalizeCode(raw string) CurrencyCode {
	return CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
}

// IsEmpty reports whether the code is blank.
func (c CurrencyCode) IsEmpty() bool {
	return c == ""
}

// IsWellFormed reports whether the code consists of exactly three ASCII letters.
func (c CurrencyCode) IsWellFormed() bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < len(c); i++ {
		if c[i] < 'A' || c[i] > 'Z' {
			return false
		}
	}
	return true
}

func (c CurrencyCode) String() string {
	return string(c)
}

// Currency represents a supported currency together with the number of
// fractional digits its amounts are truncated to.
type Currency struct {
	CurrencyCode CurrencyCode `json:"currencyCode"`
	Precision    int          `json:"precision"`
}

// RatePair is an ordered (base, quote) currency pair. (AUD, USD) and (USD, AUD)
// are different pairs.
type RatePair struct {
	Base  CurrencyCode `json:"base"`
	Quote CurrencyCode `json:"quote"`
}

// NewRatePair builds a pair from raw codes, normalizing both sides.
func NewRatePair(base, quote string) RatePair {
	return RatePair{Base: NormalizeCode(base), Quote: NormalizeCode(quote)}
}

// Key returns the concatenated lookup key, e.g. "AUDUSD".
func (p RatePair) Key() string {
	return string(p.Base) + string(p.Quote)
}

// Reverse returns the pair with base and quote swapped.
func (p RatePair) Reverse() RatePair {
	return RatePair{Base: p.Quote, Quote: p.Base}
}

// IsIdentity reports whether both sides name the same currency.
func (p RatePair) IsIdentity() bool {
	return p.Base == p.Quote
}

func (p RatePair) String() string {
	return string(p.Base) + "/" + string(p.Quote)
}

// ParsePairKey splits a 6-letter concatenated key such as "audusd" into a pair.
// ok is false when the key is not two well-formed currency codes.
func ParsePairKey(key string) (pair RatePair, ok bool) {
	k := strings.ToUpper(strings.TrimSpace(key))
	if len(k) != 6 {
		return RatePair{}, false
	}
	pair = RatePair{Base: CurrencyCode(k[:3]), Quote: CurrencyCode(k[3:])}
	if !pair.Base.IsWellFormed() || !pair.Quote.IsWellFormed() {
		return RatePair{}, false
	}
	return pair, true
}

// Reciprocal returns 1/rate at working precision, rounding half-up.
// The reciprocal of zero is zero: a missing rate stays missing.
func Reciprocal(rate decimal.Decimal) decimal.Decimal {
	if rate.IsZero() {
		return decimal.Zero
	}
	return decimal.NewFromInt(1).DivRound(rate, WorkingPrecision)
}
