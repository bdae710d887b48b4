package validation

import (
	"fmt"
	"math"
	"reflect"
	"strings"

	"amanah-finance/internal/config"
	"amanah-finance/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the go-playground validator with the product rules and
// the configured input caps
type Validator struct {
	validate *validator.Validate
	limits   config.CalculationConfig
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator, capped per the loaded
// configuration
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator(config.Load().Calculation)
	}
	return instance
}

// NewValidator creates a validator whose monetary_amount, profit_rate, and
// term_months rules enforce the given caps
func NewValidator(limits config.CalculationConfig) *Validator {
	v := validator.New()
	val := &Validator{validate: v, limits: limits}

	_ = v.RegisterValidation("product_type", validateProductType)
	_ = v.RegisterValidation("monetary_amount", val.validateMonetaryAmount)
	_ = v.RegisterValidation("profit_rate", val.validateProfitRate)
	_ = v.RegisterValidation("term_months", val.validateTermMonths)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return val
}

// Validate validates a struct and returns formatted errors
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// FormatErrors converts validator errors into a field -> message map
func FormatErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["request"] = err.Error()
		return fieldErrors
	}

	for _, fieldErr := range validationErrors {
		fieldErrors[fieldErr.Field()] = messageForTag(fieldErr)
	}
	return fieldErrors
}

func messageForTag(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "required":
		return "this field is required"
	case "product_type":
		return "must be one of: murabaha, ijara, sukuk, zakat"
	case "monetary_amount":
		return "must be a non-negative amount within the configured maximum, with at most 2 decimal places"
	case "profit_rate":
		return "must be a percentage between 0 and the configured maximum rate"
	case "term_months":
		return "must be a whole number of months between 1 and the configured maximum term"
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fieldErr.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fieldErr.Param())
	default:
		return fmt.Sprintf("failed validation rule %q", fieldErr.Tag())
	}
}

// Custom validation functions

// validateProductType checks the value against the supported product set
func validateProductType(fl validator.FieldLevel) bool {
	return models.ProductType(fl.Field().String()).IsValid()
}

// validateMonetaryAmount validates that an amount is non-negative, finite,
// within the configured principal cap, and has at most 2 decimal places
func (v *Validator) validateMonetaryAmount(fl validator.FieldLevel) bool {
	amount := fl.Field().Float()

	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return false
	}
	if amount > v.limits.MaxPrincipal {
		return false
	}

	// Check decimal places (at most 2)
	scaled := amount * 100
	return math.Abs(scaled-math.Round(scaled)) < 1e-6
}

// validateProfitRate validates an annual percentage rate against the
// configured cap
func (v *Validator) validateProfitRate(fl validator.FieldLevel) bool {
	rate := fl.Field().Float()
	return !math.IsNaN(rate) && rate >= 0 && rate <= v.limits.MaxRate
}

// validateTermMonths validates a financing term in months against the
// configured cap
func (v *Validator) validateTermMonths(fl validator.FieldLevel) bool {
	months := fl.Field().Int()
	return months >= 1 && months <= int64(v.limits.MaxTermMonths)
}
