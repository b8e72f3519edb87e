// Package validators wires go-playground/validator into echo's Validator hook.
package validators

import (
	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator.Validate instance for echo
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: validator.New()}
}

// Validate validates a request struct against its validate tags
func (v *CustomValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
