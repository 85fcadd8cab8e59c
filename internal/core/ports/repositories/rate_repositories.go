package repositories

import (
	"context"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateReader defines read operations on the directly quoted rate table.
type RateReader interface {
	// FindRate returns the quoted rate of base+quote. A pair that is not quoted
	// yields decimal.Zero and no error; empty input is ErrInvalidInput.
	FindRate(ctx context.Context, base, quote string) (decimal.Decimal, error)

	// ListRates returns every quoted rate keyed by pair.
	ListRates(ctx context.Context) map[domain.RatePair]decimal.Decimal
}

// CrossMatrixReader defines read operations on the cross-reference matrix.
type CrossMatrixReader interface {
	// FindRelation classifies source+destination. A pair with no entry wraps
	// ErrNotFound; empty input is ErrInvalidInput.
	FindRelation(ctx context.Context, source, destination string) (domain.Relation, error)

	// Len returns the number of ordered pairs in the matrix.
	Len() int
}

// PrecisionReader defines read operations on the per-currency precision table.
type PrecisionReader interface {
	// DigitsFor returns the fractional digits of a currency, or the fallback for
	// currencies not in the table. Empty input is ErrInvalidInput.
	DigitsFor(ctx context.Context, currency string) (int, error)

	// IsKnown reports whether the currency has an entry in the table.
	IsKnown(ctx context.Context, currency string) (bool, error)

	// ListCurrencies returns the known currencies sorted by code.
	ListCurrencies(ctx context.Context) []domain.Currency
}

// RepositoryProvider holds the static tables needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	RateRepo      RateReader
	MatrixRepo    CrossMatrixReader
	PrecisionRepo PrecisionReader
}
