package services

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/SscSPs/currency_calculator/internal/platform/metrics"
	"github.com/shopspring/decimal"
)

// Outcome label values of the conversion metrics.
const (
	OutcomeOK             = "ok"
	OutcomeInvalidInput   = "invalid_input"
	OutcomeUnresolvedPair = "unresolved_pair"
	OutcomeZeroRate       = "zero_rate"
	OutcomeError          = "error"
)

// instrumentingConversionService records Prometheus metrics for each conversion.
type instrumentingConversionService struct {
	metrics *metrics.Metrics
	next    portssvc.ConversionSvcFacade
}

// NewInstrumentingConversionService returns s wrapped with metric collection.
func NewInstrumentingConversionService(m *metrics.Metrics, s portssvc.ConversionSvcFacade) portssvc.ConversionSvcFacade {
	return &instrumentingConversionService{metrics: m, next: s}
}

var _ portssvc.ConversionSvcFacade = (*instrumentingConversionService)(nil)

func (s *instrumentingConversionService) Convert(ctx context.Context, source, destination, amountText string) (c *domain.Conversion, err error) {
	defer s.observe(time.Now(), &c, &err)
	return s.next.Convert(ctx, source, destination, amountText)
}

func (s *instrumentingConversionService) ConvertAmount(ctx context.Context, source, destination string, amount decimal.Decimal) (c *domain.Conversion, err error) {
	defer s.observe(time.Now(), &c, &err)
	return s.next.ConvertAmount(ctx, source, destination, amount)
}

func (s *instrumentingConversionService) ResolveRate(ctx context.Context, source, destination string, relation domain.Relation) (decimal.Decimal, error) {
	return s.next.ResolveRate(ctx, source, destination, relation)
}

func (s *instrumentingConversionService) Explain(ctx context.Context, source, destination string) (res *domain.Resolution, err error) {
	defer func() {
		relation := "none"
		var rate decimal.Decimal
		if res != nil {
			relation = res.Relation.Kind.String()
			rate = res.Rate
		}
		s.metrics.Resolutions.WithLabelValues(relation, outcomeOf(rate, err)).Inc()
	}()
	return s.next.Explain(ctx, source, destination)
}

func (s *instrumentingConversionService) observe(begin time.Time, c **domain.Conversion, err *error) {
	s.metrics.ConversionDuration.Observe(time.Since(begin).Seconds())
	relation := "none"
	var rate decimal.Decimal
	if *c != nil {
		relation = (*c).Relation.Kind.String()
		rate = (*c).Rate
	}
	s.metrics.Conversions.WithLabelValues(relation, outcomeOf(rate, *err)).Inc()
}

func outcomeOf(rate decimal.Decimal, err error) string {
	switch {
	case err == nil && rate.IsZero():
		return OutcomeZeroRate
	case err == nil:
		return OutcomeOK
	case errors.Is(err, apperrors.ErrInvalidInput):
		return OutcomeInvalidInput
	case errors.Is(err, apperrors.ErrUnresolvedPair):
		return OutcomeUnresolvedPair
	default:
		return OutcomeError
	}
}
