package dto

import (
	"fmt"

	"github.com/SscSPs/currency_calculator/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// CurrencyTag is the binding tag accepting 3-letter currency codes in any case.
const CurrencyTag = "currency"

// RegisterValidators installs the custom binding tags on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation(CurrencyTag, validateCurrency)
}

func validateCurrency(fl validator.FieldLevel) bool {
	return domain.NormalizeCode(fl.Field().String()).IsWellFormed()
}
