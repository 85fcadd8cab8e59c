package dto

import (
	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/SscSPs/currency_calculator/internal/utils"
	"github.com/shopspring/decimal"
)

// ConvertRequest defines the data needed to convert an amount.
type ConvertRequest struct {
	From string `json:"from" binding:"required,currency" example:"AUD"`
	To   string `json:"to" binding:"required,currency" example:"CAD"`
	// Amount is decimal text; grouping commas are allowed.
	Amount string `json:"amount" binding:"required" example:"1,000.00"`
}

// ConversionResponse defines the data returned for a conversion.
type ConversionResponse struct {
	From      string          `json:"from"`
	To        string          `json:"to"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string"`
	Relation  string          `json:"relation"`
	Via       string          `json:"via,omitempty"`
	Rate      decimal.Decimal `json:"rate" swaggertype:"string"`
	Result    string          `json:"result"`
	Precision int             `json:"precision"`
}

// ToConversionResponse converts a domain.Conversion to a ConversionResponse DTO
func ToConversionResponse(c *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		From:      string(c.Source),
		To:        string(c.Destination),
		Amount:    c.Amount,
		Relation:  c.Relation.Kind.String(),
		Via:       string(c.Relation.Via),
		Rate:      c.Rate,
		Result:    utils.FormatResult(c),
		Precision: c.Precision,
	}
}

// PairResponse describes how the rate of an ordered pair is derived.
type PairResponse struct {
	From     string          `json:"from"`
	To       string          `json:"to"`
	Relation string          `json:"relation"`
	Via      string          `json:"via,omitempty"`
	Resolved bool            `json:"resolved"`
	Rate     decimal.Decimal `json:"rate" swaggertype:"string"`
	Legs     []PairResponse  `json:"legs,omitempty"`
}

// ToPairResponse converts a domain.Resolution tree to a PairResponse DTO
func ToPairResponse(res *domain.Resolution) PairResponse {
	out := PairResponse{
		From:     string(res.Pair.Base),
		To:       string(res.Pair.Quote),
		Relation: res.Relation.Kind.String(),
		Via:      string(res.Relation.Via),
		Resolved: res.Resolved,
		Rate:     res.Rate,
	}
	for i := range res.Legs {
		out.Legs = append(out.Legs, ToPairResponse(&res.Legs[i]))
	}
	return out
}
