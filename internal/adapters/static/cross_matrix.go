package static

import (
	"context"
	"fmt"

	"github.com/SscSPs/currency_calculator/internal/apperrors"
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_calculator/internal/core/ports/repositories"
)

// CrossMatrix is the immutable cross-reference matrix: one relation per ordered pair.
type CrossMatrix struct {
	relations map[string]domain.Relation
}

// Ensure implementation matches interface
var _ portsrepo.CrossMatrixReader = (*CrossMatrix)(nil)

// NewCrossMatrix parses raw matrix entries (concatenated pair -> D/I/U/bridge code).
func NewCrossMatrix(entries map[string]string) (*CrossMatrix, error) {
	relations := make(map[string]domain.Relation, len(entries))
	for key, raw := range entries {
		pair, ok := domain.ParsePairKey(key)
		if !ok {
			return nil, fmt.Errorf("%w: matrix key %q is not a currency pair", apperrors.ErrValidation, key)
		}
		relation, err := domain.ParseRelation(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: matrix entry %s: %v", apperrors.ErrValidation, pair.Key(), err)
		}
		if _, dup := relations[pair.Key()]; dup {
			return nil, fmt.Errorf("%w: matrix entry %s appears more than once", apperrors.ErrValidation, pair.Key())
		}
		relations[pair.Key()] = relation
	}
	return &CrossMatrix{relations: relations}, nil
}

// FindRelation classifies source+destination after trimming and upper-casing both codes.
func (m *CrossMatrix) FindRelation(_ context.Context, source, destination string) (domain.Relation, error) {
	pair := domain.NewRatePair(source, destination)
	if pair.Base.IsEmpty() || pair.Quote.IsEmpty() {
		return domain.Relation{}, apperrors.NewInvalidInputError(
			"cross matrix lookup needs source and destination, got %q and %q", source, destination)
	}
	relation, ok := m.relations[pair.Key()]
	if !ok {
		return domain.Relation{}, fmt.Errorf("%w: no cross matrix entry for %s", apperrors.ErrNotFound, pair.Key())
	}
	return relation, nil
}

// Len returns the number of ordered pairs in the matrix.
func (m *CrossMatrix) Len() int {
	return len(m.relations)
}
