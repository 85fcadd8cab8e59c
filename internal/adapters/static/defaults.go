package static

import (
	_ "embed"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
)

// defaultCrossMatrix is the built-in cross-reference matrix in properties format.
//
//go:embed data/currency.properties
var defaultCrossMatrix []byte

// DefaultRates are the directly quoted FX rates.
var DefaultRates = map[string]string{
	"AUDUSD": "0.8371",
	"CADUSD": "0.8711",
	"USDCNY": "6.1715",
	"EURUSD": "1.2315",
	"GBPUSD": "1.5683",
	"NZDUSD": "0.7750",
	"USDJPY": "119.95",
	"EURCZK": "27.6028",
	"EURDKK": "7.4405",
	"EURNOK": "8.6651",
}

// DefaultPrecision lists the known currencies and their fractional digits.
var DefaultPrecision = map[string]int{
	"AUD": 2,
	"CAD": 2,
	"CNY": 2,
	"CZK": 2,
	"DKK": 2,
	"EUR": 2,
	"GBP": 2,
	"JPY": 0,
	"NOK": 2,
	"NZD": 2,
	"USD": 2,
}

// DefaultFallbackPrecision applies to currencies absent from the precision table.
const DefaultFallbackPrecision = domain.FallbackPrecision
