package domain

import (
	"fmt"
	"strings"
)

// RelationKind enumerates how the rate of an ordered pair is obtained.
type RelationKind int

const (
	// RelationDirect means base+quote is quoted in the rate table.
	RelationDirect RelationKind = iota + 1
	// RelationInversion means only quote+base is quoted; the rate is its reciprocal.
	RelationInversion
	// RelationUnity means both sides are economically identical.
	RelationUnity
	// RelationBridge means the rate is synthesized through a third currency.
	RelationBridge
)

// Cross-reference matrix codes for the closed relations.
const (
	RelationCodeDirect    = "D"
	RelationCodeInversion = "I"
	RelationCodeUnity     = "U"
)

func (k RelationKind) String() string {
	switch k {
	case RelationDirect:
		return "direct"
	case RelationInversion:
		return "inversion"
	case RelationUnity:
		return "unity"
	case RelationBridge:
		return "bridge"
	default:
		return "unknown"
	}
}

// Relation is one cross-reference matrix entry. Via is only set for bridges.
type Relation struct {
	Kind RelationKind
	Via  CurrencyCode
}

// Predeclared closed relations.
var (
	Direct    = Relation{Kind: RelationDirect}
	Inversion = Relation{Kind: RelationInversion}
	Unity     = Relation{Kind: RelationUnity}
)

// BridgeVia returns a bridge relation through the given currency.
func BridgeVia(code CurrencyCode) Relation {
	return Relation{Kind: RelationBridge, Via: code}
}

// ParseRelation parses a matrix value: "D", "I", "U" or a 3-letter bridge currency.
func ParseRelation(raw string) (Relation, error) {
	v := strings.ToUpper(strings.TrimSpace(raw))
	switch v {
	case RelationCodeDirect:
		return Direct, nil
	case RelationCodeInversion:
		return Inversion, nil
	case RelationCodeUnity:
		return Unity, nil
	}
	code := CurrencyCode(v)
	if !code.IsWellFormed() {
		return Relation{}, fmt.Errorf("invalid relation code %q", raw)
	}
	return BridgeVia(code), nil
}

// IsBridge reports whether the relation names an intermediate currency.
func (r Relation) IsBridge() bool {
	return r.Kind == RelationBridge
}

// IsZero reports whether the relation is unset.
func (r Relation) IsZero() bool {
	return r.Kind == 0
}

// String returns the matrix code of the relation.
func (r Relation) String() string {
	switch r.Kind {
	case RelationDirect:
		return RelationCodeDirect
	case RelationInversion:
		return RelationCodeInversion
	case RelationUnity:
		return RelationCodeUnity
	case RelationBridge:
		return string(r.Via)
	default:
		return ""
	}
}
