package services_test

import (
	"context"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock RateReader ---
type MockRateReader struct {
	mock.Mock
}

func (m *MockRateReader) FindRate(ctx context.Context, base, quote string) (decimal.Decimal, error) {
	args := m.Called(ctx, base, quote)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockRateReader) ListRates(ctx context.Context) map[domain.RatePair]decimal.Decimal {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(map[domain.RatePair]decimal.Decimal)
}

// --- Mock CrossMatrixReader ---
type MockCrossMatrixReader struct {
	mock.Mock
}

func (m *MockCrossMatrixReader) FindRelation(ctx context.Context, source, destination string) (domain.Relation, error) {
	args := m.Called(ctx, source, destination)
	return args.Get(0).(domain.Relation), args.Error(1)
}

func (m *MockCrossMatrixReader) Len() int {
	return m.Called().Int(0)
}

// --- Mock PrecisionReader ---
type MockPrecisionReader struct {
	mock.Mock
}

func (m *MockPrecisionReader) DigitsFor(ctx context.Context, currency string) (int, error) {
	args := m.Called(ctx, currency)
	return args.Int(0), args.Error(1)
}

func (m *MockPrecisionReader) IsKnown(ctx context.Context, currency string) (bool, error) {
	args := m.Called(ctx, currency)
	return args.Bool(0), args.Error(1)
}

func (m *MockPrecisionReader) ListCurrencies(ctx context.Context) []domain.Currency {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]domain.Currency)
}
