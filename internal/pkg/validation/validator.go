package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/prasetia/dompet/internal/utils"
)

// EchoValidator adapts go-playground/validator to echo's Validator interface
type EchoValidator struct {
	validate *validator.Validate
}

// NewEchoValidator creates a request validator for echo
func NewEchoValidator() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate checks the struct tags of the bound request
func (v *EchoValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// Problems converts a validation error into a structured list of violated
// constraints, one entry per failing field
func Problems(err error) []utils.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]utils.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, utils.FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
		})
	}
	return fields
}
