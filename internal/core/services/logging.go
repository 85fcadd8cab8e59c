package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// loggingConversionService decorates a ConversionSvcFacade with one log line per call.
type loggingConversionService struct {
	BaseService
	next portssvc.ConversionSvcFacade
}

// NewLoggingConversionService returns s wrapped with call logging.
func NewLoggingConversionService(logger *slog.Logger, s portssvc.ConversionSvcFacade) portssvc.ConversionSvcFacade {
	return &loggingConversionService{
		BaseService: BaseService{logger: logger},
		next:        s,
	}
}

var _ portssvc.ConversionSvcFacade = (*loggingConversionService)(nil)

func (s *loggingConversionService) Convert(ctx context.Context, source, destination, amountText string) (c *domain.Conversion, err error) {
	defer func(begin time.Time) {
		s.logCall(ctx, "convert", source, destination, amountText, c, err, time.Since(begin))
	}(time.Now())
	return s.next.Convert(ctx, source, destination, amountText)
}

func (s *loggingConversionService) ConvertAmount(ctx context.Context, source, destination string, amount decimal.Decimal) (c *domain.Conversion, err error) {
	defer func(begin time.Time) {
		s.logCall(ctx, "convert_amount", source, destination, amount.String(), c, err, time.Since(begin))
	}(time.Now())
	return s.next.ConvertAmount(ctx, source, destination, amount)
}

func (s *loggingConversionService) ResolveRate(ctx context.Context, source, destination string, relation domain.Relation) (rate decimal.Decimal, err error) {
	defer func(begin time.Time) {
		s.GetLogger(ctx).Debug("Service call",
			slog.String("method", "resolve_rate"),
			slog.String("from", source),
			slog.String("to", destination),
			slog.String("relation", relation.String()),
			slog.String("rate", rate.String()),
			slog.Duration("took", time.Since(begin)),
			slog.Any("err", err),
		)
	}(time.Now())
	return s.next.ResolveRate(ctx, source, destination, relation)
}

func (s *loggingConversionService) Explain(ctx context.Context, source, destination string) (res *domain.Resolution, err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("method", "explain"),
			slog.String("from", source),
			slog.String("to", destination),
			slog.Duration("took", time.Since(begin)),
		}
		if res != nil {
			args = append(args, slog.String("relation", res.Relation.String()), slog.String("rate", res.Rate.String()))
		}
		if err != nil {
			s.GetLogger(ctx).Warn("Service call failed", append(args, slog.String("error", err.Error()))...)
			return
		}
		s.GetLogger(ctx).Debug("Service call", args...)
	}(time.Now())
	return s.next.Explain(ctx, source, destination)
}

func (s *loggingConversionService) logCall(ctx context.Context, method, source, destination, amount string, c *domain.Conversion, err error, took time.Duration) {
	args := []any{
		slog.String("method", method),
		slog.String("from", source),
		slog.String("to", destination),
		slog.String("amount", amount),
		slog.Duration("took", took),
	}
	if c != nil {
		args = append(args,
			slog.String("relation", c.Relation.String()),
			slog.String("rate", c.Rate.String()),
			slog.String("result", c.Result.String()))
	}
	if err != nil {
		s.GetLogger(ctx).Warn("Service call failed", append(args, slog.String("error", err.Error()))...)
		return
	}
	s.GetLogger(ctx).Debug("Service call", args...)
}
