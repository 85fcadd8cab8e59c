package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/SscSPs/currency_calculator/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockPrecisionReader
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockPrecisionReader)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()

	suite.mockRepo.On("IsKnown", ctx, "jpy").Return(true, nil).Once()
	suite.mockRepo.On("DigitsFor", ctx, "JPY").Return(0, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "jpy")

	suite.Require().NoError(err)
	suite.Equal(&domain.Currency{CurrencyCode: "JPY", Precision: 0}, currency)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockRepo.On("IsKnown", ctx, "XYZ").Return(false, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "XYZ")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_RepoError() {
	ctx := context.Background()
	expectedErr := assert.AnError

	suite.mockRepo.On("IsKnown", ctx, "ERR").Return(false, expectedErr).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "ERR")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, expectedErr)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Empty() {
	currency, err := suite.service.GetCurrencyByCode(context.Background(), " ")

	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrInvalidInput)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Success() {
	ctx := context.Background()
	expectedCurrencies := []domain.Currency{{CurrencyCode: "AUD", Precision: 2}, {CurrencyCode: "JPY"}}

	suite.mockRepo.On("ListCurrencies", ctx).Return(expectedCurrencies).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expectedCurrencies, currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Empty() {
	ctx := context.Background()

	suite.mockRepo.On("ListCurrencies", ctx).Return(nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Empty(currencies)
	suite.NotNil(currencies)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestIsCurrencyAvailable() {
	ctx := context.Background()

	suite.mockRepo.On("IsKnown", ctx, "AUD").Return(true, nil).Once()
	suite.mockRepo.On("IsKnown", ctx, "ANZ").Return(false, nil).Once()

	known, err := suite.service.IsCurrencyAvailable(ctx, "AUD")
	suite.Require().NoError(err)
	suite.True(known)

	known, err = suite.service.IsCurrencyAvailable(ctx, "ANZ")
	suite.Require().NoError(err)
	suite.False(known)

	_, err = suite.service.IsCurrencyAvailable(ctx, "")
	suite.ErrorIs(err, apperrors.ErrInvalidInput)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetDecimalPlaces() {
	ctx := context.Background()

	suite.mockRepo.On("DigitsFor", ctx, "DKKUSD").Return(10, nil).Once()
	suite.mockRepo.On("DigitsFor", ctx, "ERR").Return(0, assert.AnError).Once()

	digits, err := suite.service.GetDecimalPlaces(ctx, "DKKUSD")
	suite.Require().NoError(err)
	suite.Equal(10, digits)

	_, err = suite.service.GetDecimalPlaces(ctx, "ERR")
	suite.ErrorIs(err, assert.AnError)

	_, err = suite.service.GetDecimalPlaces(ctx, "")
	suite.ErrorIs(err, apperrors.ErrInvalidInput)
	suite.mockRepo.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestCurrencyService(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
