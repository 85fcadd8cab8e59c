package services

import (
	"context"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateResolverSvc derives effective exchange rates from the static tables.
type RateResolverSvc interface {
	// ResolveRate returns the effective rate of source->destination under the
	// given relation. Unresolvable bridge legs yield zero, not an error.
	ResolveRate(ctx context.Context, source, destination string, relation domain.Relation) (decimal.Decimal, error)

	// Explain classifies the pair and returns the full resolution tree.
	Explain(ctx context.Context, source, destination string) (*domain.Resolution, error)
}

// ConversionSvc converts amounts between currencies.
type ConversionSvc interface {
	// Convert parses amountText (grouping commas allowed) and converts it.
	Convert(ctx context.Context, source, destination, amountText string) (*domain.Conversion, error)

	// ConvertAmount converts an already parsed amount.
	ConvertAmount(ctx context.Context, source, destination string, amount decimal.Decimal) (*domain.Conversion, error)
}

// ConversionSvcFacade combines all conversion-related service interfaces
type ConversionSvcFacade interface {
	RateResolverSvc
	ConversionSvc
}
