package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_calculator/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// defaultMaxBridgeDepth bounds how many bridges may nest while resolving one pair.
const defaultMaxBridgeDepth = 8

// rateResolver derives effective rates from the rate table and cross matrix.
type rateResolver struct {
	BaseService
	rateRepo   portsrepo.RateReader
	matrixRepo portsrepo.CrossMatrixReader
	maxDepth   int
}

// ResolverOption is a functional option for configuring the rate resolver
type ResolverOption func(*rateResolver)

// WithMaxBridgeDepth limits bridge nesting. Non-positive values keep the default.
func WithMaxBridgeDepth(depth int) ResolverOption {
	return func(r *rateResolver) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// WithResolverLogger sets the logger used when the context carries none.
func WithResolverLogger(logger *slog.Logger) ResolverOption {
	return func(r *rateResolver) {
		r.logger = logger
	}
}

// NewRateResolver creates a resolver over the given tables.
func NewRateResolver(rateRepo portsrepo.RateReader, matrixRepo portsrepo.CrossMatrixReader, options ...ResolverOption) portssvc.RateResolverSvc {
	return newRateResolver(rateRepo, matrixRepo, options...)
}

func newRateResolver(rateRepo portsrepo.RateReader, matrixRepo portsrepo.CrossMatrixReader, options ...ResolverOption) *rateResolver {
	r := &rateResolver{
		rateRepo:   rateRepo,
		matrixRepo: matrixRepo,
		maxDepth:   defaultMaxBridgeDepth,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ portssvc.RateResolverSvc = (*rateResolver)(nil)

// ResolveRate returns the effective rate of source->destination under relation.
func (r *rateResolver) ResolveRate(ctx context.Context, source, destination string, relation domain.Relation) (decimal.Decimal, error) {
	res, err := r.resolve(ctx, domain.NewRatePair(source, destination), relation, nil)
	if err != nil {
		return decimal.Zero, err
	}
	return res.Rate, nil
}

// Explain classifies the pair and returns its resolution tree.
func (r *rateResolver) Explain(ctx context.Context, source, destination string) (*domain.Resolution, error) {
	pair := domain.NewRatePair(source, destination)
	if pair.Base.IsEmpty() || pair.Quote.IsEmpty() {
		return nil, apperrors.NewInvalidInputError("source and destination currencies are required")
	}

	relation, err := r.matrixRepo.FindRelation(ctx, string(pair.Base), string(pair.Quote))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewUnresolvedPairError(string(pair.Base), string(pair.Quote))
		}
		return nil, fmt.Errorf("failed to classify %s: %w", pair, err)
	}

	res, err := r.resolve(ctx, pair, relation, nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// resolve computes the rate of pair under relation. path holds the keys of the
// bridged pairs enclosing this one.
func (r *rateResolver) resolve(ctx context.Context, pair domain.RatePair, relation domain.Relation, path []string) (domain.Resolution, error) {
	if pair.Base.IsEmpty() || pair.Quote.IsEmpty() {
		return domain.Resolution{}, apperrors.NewInvalidInputError("source and destination currencies are required")
	}

	res := domain.Resolution{Pair: pair, Relation: relation, Resolved: true, Rate: decimal.Zero}

	switch relation.Kind {
	case domain.RelationDirect:
		rate, err := r.rateRepo.FindRate(ctx, string(pair.Base), string(pair.Quote))
		if err != nil {
			return res, err
		}
		res.Rate = rate
	case domain.RelationInversion:
		rate, err := r.rateRepo.FindRate(ctx, string(pair.Quote), string(pair.Base))
		if err != nil {
			return res, err
		}
		res.Rate = domain.Reciprocal(rate)
	case domain.RelationUnity:
		if pair.IsIdentity() {
			res.Rate = decimal.NewFromInt(1)
			break
		}
		rate, err := r.rateRepo.FindRate(ctx, string(pair.Base), string(pair.Quote))
		if err != nil {
			return res, err
		}
		res.Rate = rate
	case domain.RelationBridge:
		return r.resolveBridge(ctx, pair, relation, path)
	default:
		return res, fmt.Errorf("%w: unknown relation for %s", apperrors.ErrValidation, pair)
	}
	return res, nil
}

func (r *rateResolver) resolveBridge(ctx context.Context, pair domain.RatePair, relation domain.Relation, path []string) (domain.Resolution, error) {
	res := domain.Resolution{Pair: pair, Relation: relation, Rate: decimal.Zero}

	if len(path) >= r.maxDepth {
		r.LogDebug(ctx, "Bridge depth limit reached",
			slog.String("pair", pair.String()),
			slog.Int("max_depth", r.maxDepth))
		return res, nil
	}

	via := domain.NormalizeCode(string(relation.Via))
	if via.IsEmpty() {
		return res, fmt.Errorf("%w: bridge relation for %s has no currency", apperrors.ErrValidation, pair)
	}

	inner := append(slices.Clone(path), pair.Key())

	first, err := r.resolveLeg(ctx, domain.RatePair{Base: pair.Base, Quote: via}, inner)
	if err != nil {
		return res, err
	}
	second, err := r.resolveLeg(ctx, domain.RatePair{Base: via, Quote: pair.Quote}, inner)
	if err != nil {
		return res, err
	}

	res.Resolved = true
	res.Legs = []domain.Resolution{first, second}
	if first.Rate.IsZero() || second.Rate.IsZero() {
		r.LogDebug(ctx, "Bridge leg unresolved",
			slog.String("pair", pair.String()),
			slog.String("via", string(via)))
		return res, nil
	}

	inverse := domain.Reciprocal(second.Rate)
	if inverse.IsZero() {
		return res, nil
	}
	res.Rate = first.Rate.DivRound(inverse, domain.WorkingPrecision)
	return res, nil
}

// resolveLeg classifies one bridge leg and resolves it. A leg without a matrix
// entry, or one already on the path, is left unresolved with rate zero.
func (r *rateResolver) resolveLeg(ctx context.Context, leg domain.RatePair, path []string) (domain.Resolution, error) {
	unresolved := domain.Resolution{Pair: leg, Rate: decimal.Zero}

	if slices.Contains(path, leg.Key()) {
		r.LogDebug(ctx, "Bridge cycle detected", slog.String("pair", leg.String()))
		return unresolved, nil
	}

	relation, err := r.matrixRepo.FindRelation(ctx, string(leg.Base), string(leg.Quote))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return unresolved, nil
		}
		return unresolved, err
	}
	return r.resolve(ctx, leg, relation, path)
}
