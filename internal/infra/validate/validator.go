// Package validate implements input syntax checks on top of go-playground/validator.
package validate

import (
	"github.com/go-playground/validator/v10"

	"userdir/internal/domain/service"
)

// inputValidator implements service.InputValidator with a shared validator
// instance. The instance caches struct metadata and is safe for concurrent use.
type inputValidator struct {
	validate *validator.Validate
}

// New is the constructor for inputValidator.
func New() service.InputValidator {
	return &inputValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// IsEmail reports whether s is a syntactically valid email address.
func (v *inputValidator) IsEmail(s string) bool {
	return v.validate.Var(s, "required,email") == nil
}

// IsAlphanumeric reports whether s consists solely of letters and digits.
func (v *inputValidator) IsAlphanumeric(s string) bool {
	return v.validate.Var(s, "required,alphanum") == nil
}
