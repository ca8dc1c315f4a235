// Package validator adapts go-playground/validator to echo's Validator
// interface and maps rule violations onto the application error taxonomy.
package validator

import (
	"errors"
	"strings"

	domainerrors "storefront/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// Validator wraps a single shared validate instance; it caches struct rules
// and is safe for concurrent use.
type Validator struct {
	validate *playground.Validate
}

// New builds the echo validator.
func New() *Validator {
	return &Validator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks the bound request struct and reports the offending field
// set so the caller knows exactly what was missing or malformed.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var violations playground.ValidationErrors
	if !errors.As(err, &violations) {
		return domainerrors.ErrValidationFailed
	}

	fields := make([]string, 0, len(violations))
	for _, violation := range violations {
		fields = append(fields, violation.Field()+" ("+violation.Tag()+")")
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, ", "))
}
