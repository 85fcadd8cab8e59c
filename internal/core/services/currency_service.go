package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
)

type CurrencyService struct {
	precisionRepo portsrepo.PrecisionReader
}

func NewCurrencyService(precisionRepo portsrepo.PrecisionReader) *CurrencyService {
	return &CurrencyService{precisionRepo: precisionRepo}
}

var _ portssvc.CurrencySvcFacade = (*CurrencyService)(nil)

func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	known, err := s.IsCurrencyAvailable(ctx, currencyCode)
	if err != nil {
		return nil, err
	}
	code := domain.NormalizeCode(currencyCode)
	if !known {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("currency %s is not known", code))
	}

	digits, err := s.precisionRepo.DigitsFor(ctx, string(code))
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code in service: %w", err)
	}
	return &domain.Currency{CurrencyCode: code, Precision: digits}, nil
}

func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies := s.precisionRepo.ListCurrencies(ctx)
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

func (s *CurrencyService) IsCurrencyAvailable(ctx context.Context, currencyCode string) (bool, error) {
	if strings.TrimSpace(currencyCode) == "" {
		return false, apperrors.NewInvalidInputError("currency code is required")
	}
	known, err := s.precisionRepo.IsKnown(ctx, currencyCode)
	if err != nil {
		return false, fmt.Errorf("failed to check currency in service: %w", err)
	}
	return known, nil
}

func (s *CurrencyService) GetDecimalPlaces(ctx context.Context, currencyCode string) (int, error) {
	if strings.TrimSpace(currencyCode) == "" {
		return 0, apperrors.NewInvalidInputError("currency code is required")
	}
	digits, err := s.precisionRepo.DigitsFor(ctx, currencyCode)
	if err != nil {
		return 0, fmt.Errorf("failed to get decimal places in service: %w", err)
	}
	return digits, nil
}
