package http

import (
	"github.com/go-playground/validator/v10"
)

// requestValidator checks `validate` tags on request bodies. Domain rules stay
// in the constructors; tags only catch malformed payloads early.
type requestValidator struct {
	validate *validator.Validate
}

// newRequestValidator enables required checks on nested structs.
func newRequestValidator() *requestValidator {
	return &requestValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate implements echo.Validator. It returns validator.ValidationErrors
// for payloads that break a tag.
func (v *requestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
