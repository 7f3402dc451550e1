package service

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Validator instance shared by all services
var validate *validator.Validate

func init() {
	validate = validator.New()
	// notblank rejects whitespace-only strings, which plain required does not
	if err := validate.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
}

// checkValid runs the declared constraints over a DTO and converts any
// violations into a *ValidationError. The same check runs for create, update
// and patch: a patch that omits name fails exactly like a full update would.
func checkValid(dto interface{}) error {
	err := validate.Struct(dto)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if errors.As(err, &fieldErrors) {
		violations := make([]FieldViolation, 0, len(fieldErrors))
		for _, fe := range fieldErrors {
			violations = append(violations, FieldViolation{
				Field:      fe.Field(),
				Constraint: fe.Tag(),
			})
		}
		return &ValidationError{Violations: violations}
	}

	return err
}
