package services

import (
	"context"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a known currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all known currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// IsCurrencyAvailable reports whether the code is a known currency.
	IsCurrencyAvailable(ctx context.Context, currencyCode string) (bool, error)

	// GetDecimalPlaces returns the fractional digits amounts in the currency are truncated to.
	GetDecimalPlaces(ctx context.Context, currencyCode string) (int, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
}
