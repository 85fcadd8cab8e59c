package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// conversionService implements the ConversionSvcFacade interface on top of the
// rate resolver.
type conversionService struct {
	*rateResolver
	precisionRepo portsrepo.PrecisionReader
}

// NewConversionService creates the conversion engine over the given tables.
// Resolver options configure the embedded rate resolver.
func NewConversionService(repos portsrepo.RepositoryProvider, options ...ResolverOption) portssvc.ConversionSvcFacade {
	return &conversionService{
		rateResolver:  newRateResolver(repos.RateRepo, repos.MatrixRepo, options...),
		precisionRepo: repos.PrecisionRepo,
	}
}

var _ portssvc.ConversionSvcFacade = (*conversionService)(nil)

// Convert parses amountText and converts it from source to destination.
func (s *conversionService) Convert(ctx context.Context, source, destination, amountText string) (*domain.Conversion, error) {
	if strings.TrimSpace(source) == "" || strings.TrimSpace(destination) == "" || strings.TrimSpace(amountText) == "" {
		return nil, apperrors.NewInvalidInputError("source, destination and amount are required")
	}

	amount, err := domain.ParseAmount(amountText)
	if err != nil {
		return nil, apperrors.NewInvalidInputError("%v", err)
	}
	return s.ConvertAmount(ctx, source, destination, amount)
}

// ConvertAmount converts amount from source to destination, truncating the
// result toward zero to the destination's precision.
func (s *conversionService) ConvertAmount(ctx context.Context, source, destination string, amount decimal.Decimal) (*domain.Conversion, error) {
	pair := domain.NewRatePair(source, destination)
	if pair.Base.IsEmpty() || pair.Quote.IsEmpty() {
		return nil, apperrors.NewInvalidInputError("source and destination currencies are required")
	}
	if err := domain.CheckAmount(amount); err != nil {
		return nil, apperrors.NewInvalidInputError("%v", err)
	}

	relation, err := s.matrixRepo.FindRelation(ctx, string(pair.Base), string(pair.Quote))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnresolvedPairError(string(pair.Base), string(pair.Quote))
		}
		return nil, fmt.Errorf("failed to classify %s: %w", pair, err)
	}

	var rate, result decimal.Decimal
	if relation.Kind == domain.RelationUnity {
		rate = decimal.NewFromInt(1)
		result = amount
	} else {
		res, err := s.resolve(ctx, pair, relation, nil)
		if err != nil {
			return nil, err
		}
		rate = res.Rate
		result = rate.Mul(amount)
	}

	digits, err := s.precisionRepo.DigitsFor(ctx, string(pair.Quote))
	if err != nil {
		return nil, fmt.Errorf("failed to get precision of %s: %w", pair.Quote, err)
	}

	conversion := &domain.Conversion{
		Source:      pair.Base,
		Destination: pair.Quote,
		Amount:      amount,
		Relation:    relation,
		Rate:        rate,
		Result:      result.Truncate(int32(digits)),
		Precision:   digits,
	}

	s.LogDebug(ctx, "Converted amount",
		slog.String("pair", pair.String()),
		slog.String("relation", relation.Kind.String()),
		slog.String("rate", rate.String()),
		slog.String("amount", amount.String()),
		slog.String("result", conversion.Result.String()))

	return conversion, nil
}
