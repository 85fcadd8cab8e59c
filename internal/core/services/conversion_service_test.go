package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/currency_calculator/internal/adapters/static"
	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/SscSPs/currency_calculator/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func defaultConversionService(t testing.TB) portssvc.ConversionSvcFacade {
	t.Helper()
	repos, err := static.LoadRepositories("", "")
	require.NoError(t, err)
	return services.NewConversionService(*repos)
}

func TestConvert_Scenarios(t *testing.T) {
	ctx := context.Background()
	svc := defaultConversionService(t)

	tests := []struct {
		name                string
		source, destination string
		amount              string
		relation            domain.Relation
		rate                string
		result              string
	}{
		{"bridge aud cad", "AUD", "CAD", "100", domain.BridgeVia("USD"), "0.9609688899", "96.09"},
		{"unity keeps amount", "AUD", "AUD", "100", domain.Unity, "1", "100"},
		{"bridge aud dkk", "AUD", "DKK", "100", domain.BridgeVia("USD"), "5.0576066197", "505.76"},
		{"jpy has no decimals", "NOK", "JPY", "100", domain.BridgeVia("USD"), "17.0475153137", "1704"},
		{"negative amount", "NOK", "JPY", "-100", domain.BridgeVia("USD"), "17.0475153137", "-1704"},
		{"gbp jpy", "GBP", "JPY", "100", domain.BridgeVia("USD"), "188.1175850658", "18811"},
		{"nok usd via eur", "NOK", "USD", "100", domain.BridgeVia("EUR"), "0.142121845", "14.21"},
		{"dkk gbp", "DKK", "GBP", "100", domain.BridgeVia("USD"), "0.1055366131", "10.55"},
		{"direct", "GBP", "USD", "100", domain.Direct, "1.5683", "156.83"},
		{"inversion", "DKK", "EUR", "100", domain.Inversion, "0.1343995699", "13.43"},
		{"grouping separators", "AUD", "USD", "1,000,000.55", domain.Direct, "0.8371", "837100.46"},
		{"case and spaces", " aud ", "usd", "100.00", domain.Direct, "0.8371", "83.71"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := svc.Convert(ctx, tt.source, tt.destination, tt.amount)
			require.NoError(t, err)
			assert.Equal(t, domain.NormalizeCode(tt.source), c.Source)
			assert.Equal(t, domain.NormalizeCode(tt.destination), c.Destination)
			assert.Equal(t, tt.relation, c.Relation)
			assert.True(t, dec(tt.rate).Equal(c.Rate), "rate: want %s, got %s", tt.rate, c.Rate)
			assert.True(t, dec(tt.result).Equal(c.Result), "result: want %s, got %s", tt.result, c.Result)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	ctx := context.Background()
	svc := defaultConversionService(t)

	tests := []struct {
		name                        string
		source, destination, amount string
		want                        error
	}{
		{"empty source", "", "USD", "100", apperrors.ErrInvalidInput},
		{"empty destination", "AUD", " ", "100", apperrors.ErrInvalidInput},
		{"empty amount", "AUD", "USD", "", apperrors.ErrInvalidInput},
		{"malformed amount", "AUD", "USD", "ASD", apperrors.ErrInvalidInput},
		{"oversized exponent", "AUD", "USD", "1e20000000", apperrors.ErrInvalidInput},
		{"numeric destination", "NOK", "100", "100", apperrors.ErrUnresolvedPair},
		{"unknown pair", "AUD", "XYZ", "100", apperrors.ErrUnresolvedPair},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := svc.Convert(ctx, tt.source, tt.destination, tt.amount)
			assert.Nil(t, c)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestConvertAmount_RejectsOversizedAmount(t *testing.T) {
	svc := defaultConversionService(t)

	c, err := svc.ConvertAmount(context.Background(), "AUD", "USD", decimal.New(1, 20_000_000))
	assert.Nil(t, c)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestConvert_UnresolvedBridgeIsZero(t *testing.T) {
	rates, err := static.NewRateTable(map[string]string{"AUDUSD": "0.8371"})
	require.NoError(t, err)
	matrix, err := static.NewCrossMatrix(map[string]string{"AUDCNY": "USD", "AUDUSD": "D"})
	require.NoError(t, err)
	precision, err := static.NewPrecisionTable(static.DefaultPrecision, static.DefaultFallbackPrecision)
	require.NoError(t, err)

	svc := services.NewConversionService(portsrepo.RepositoryProvider{RateRepo: rates, MatrixRepo: matrix, PrecisionRepo: precision})

	c, err := svc.Convert(context.Background(), "AUD", "CNY", "100")
	require.NoError(t, err)
	assert.True(t, c.Rate.IsZero())
	assert.True(t, c.Result.IsZero())
}

func TestConvertAmount_PrecisionFallback(t *testing.T) {
	rates, err := static.NewRateTable(map[string]string{"USDXAU": "0.00051234567891"})
	require.NoError(t, err)
	matrix, err := static.NewCrossMatrix(map[string]string{"USDXAU": "D"})
	require.NoError(t, err)
	precision, err := static.NewPrecisionTable(static.DefaultPrecision, static.DefaultFallbackPrecision)
	require.NoError(t, err)

	svc := services.NewConversionService(portsrepo.RepositoryProvider{RateRepo: rates, MatrixRepo: matrix, PrecisionRepo: precision})

	c, err := svc.ConvertAmount(context.Background(), "USD", "XAU", decimal.NewFromInt(3))
	require.NoError(t, err)
	assert.Equal(t, 10, c.Precision)
	assert.Equal(t, "0.0015370370", c.Result.StringFixed(10))
}

// --- Mock-backed suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	rates     *MockRateReader
	matrix    *MockCrossMatrixReader
	precision *MockPrecisionReader
	service   portssvc.ConversionSvcFacade
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.rates = new(MockRateReader)
	suite.matrix = new(MockCrossMatrixReader)
	suite.precision = new(MockPrecisionReader)
	suite.service = services.NewConversionService(portsrepo.RepositoryProvider{
		RateRepo:      suite.rates,
		MatrixRepo:    suite.matrix,
		PrecisionRepo: suite.precision,
	})
}

func (suite *ConversionServiceTestSuite) TestConvert_Direct() {
	ctx := context.Background()
	suite.matrix.On("FindRelation", ctx, "EUR", "USD").Return(domain.Direct, nil).Once()
	suite.rates.On("FindRate", ctx, "EUR", "USD").Return(dec("1.2315"), nil).Once()
	suite.precision.On("DigitsFor", ctx, "USD").Return(2, nil).Once()

	c, err := suite.service.Convert(ctx, "eur", "usd", "10.999")

	suite.Require().NoError(err)
	suite.True(dec("13.54").Equal(c.Result), "got %s", c.Result)
	suite.Equal(2, c.Precision)
	suite.matrix.AssertExpectations(suite.T())
	suite.rates.AssertExpectations(suite.T())
	suite.precision.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvert_MatrixFailure() {
	ctx := context.Background()
	suite.matrix.On("FindRelation", ctx, "EUR", "USD").Return(domain.Relation{}, assert.AnError).Once()

	c, err := suite.service.Convert(ctx, "EUR", "USD", "1")

	suite.Require().Error(err)
	suite.Nil(c)
	suite.ErrorIs(err, assert.AnError)
	suite.NotErrorIs(err, apperrors.ErrUnresolvedPair)
}

func (suite *ConversionServiceTestSuite) TestConvert_PrecisionFailure() {
	ctx := context.Background()
	suite.matrix.On("FindRelation", ctx, "EUR", "EUR").Return(domain.Unity, nil).Once()
	suite.precision.On("DigitsFor", ctx, "EUR").Return(0, assert.AnError).Once()

	c, err := suite.service.Convert(ctx, "EUR", "EUR", "1")

	suite.Nil(c)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ConversionServiceTestSuite) TestConvert_NotFoundIsUnresolvedPair() {
	ctx := context.Background()
	suite.matrix.On("FindRelation", ctx, "EUR", "XYZ").Return(domain.Relation{}, apperrors.NewNotFoundError("EURXYZ")).Once()

	_, err := suite.service.Convert(ctx, "EUR", "XYZ", "1")

	suite.ErrorIs(err, apperrors.ErrUnresolvedPair)
	suite.Equal(apperrors.MsgUnresolvedPair, apperrors.UserMessage(err))
}

func TestConversionService(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
