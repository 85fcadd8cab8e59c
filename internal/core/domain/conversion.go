package domain

import "github.com/shopspring/decimal"

// Resolution records how the effective rate of a pair was derived. Bridge
// resolutions carry their two legs.
type Resolution struct {
	Pair     RatePair
	Relation Relation
	// Resolved is false when the pair has no matrix entry, or when resolution was
	// cut short by a cycle or the depth limit. The rate is then zero.
	Resolved bool
	Rate     decimal.Decimal
	Legs     []Resolution
}

// Conversion is the outcome of converting an amount between two currencies.
type Conversion struct {
	Source      CurrencyCode
	Destination CurrencyCode
	Amount      decimal.Decimal
	Relation    Relation
	Rate        decimal.Decimal
	// Result is truncated toward zero to Precision fractional digits.
	Result    decimal.Decimal
	Precision int
}
