package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every typed error below unwraps to exactly one of them, so
// callers classify with errors.Is and never inspect concrete types.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrObjectAlreadyExists = errors.New("object already exists")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrPreconditionFailed  = errors.New("precondition failed")
	ErrAccessDenied        = errors.New("access denied")
	ErrUnauthenticated     = errors.New("unauthenticated")
)

// sanitize keeps messages on one line for structured logs.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// withCause appends the cause to msg, if any.
func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports a lookup by identifier that matched nothing.
// It unwraps to ErrObjectNotFound.
//
// Example:
//
//	if errors.Is(err, gorm.ErrRecordNotFound) {
//	    return nil, errs.NewObjectNotFoundError("order", id)
//	}
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an error for paramName with the missing id.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError carrying the
// underlying error, usually from the store.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

// Error formats the message. The parameter name is only included when a cause
// is present.
func (e *ObjectNotFoundError) Error() string {
	if e.Cause == nil {
		return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
	}
	return sanitize(withCause(
		fmt.Sprintf("%s: param is: %s, ID is: %s", ErrObjectNotFound, e.ParamName, e.ID),
		e.Cause,
	))
}

// Unwrap returns ErrObjectNotFound.
func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ObjectAlreadyExistsError reports a uniqueness conflict, such as a taken
// username. It unwraps to ErrObjectAlreadyExists.
type ObjectAlreadyExistsError struct {
	ParamName string
	Value     any
}

// NewObjectAlreadyExistsError creates an error for paramName holding the conflicting value.
func NewObjectAlreadyExistsError(paramName string, value any) *ObjectAlreadyExistsError {
	return &ObjectAlreadyExistsError{ParamName: paramName, Value: value}
}

// Error formats the message with the conflicting value.
func (e *ObjectAlreadyExistsError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s is: %v", ErrObjectAlreadyExists, e.ParamName, e.Value))
}

// Unwrap returns ErrObjectAlreadyExists.
func (e *ObjectAlreadyExistsError) Unwrap() error {
	return ErrObjectAlreadyExists
}

// ValueIsInvalidError reports a value that is present but malformed, such as an
// identifier that does not parse. It unwraps to ErrValueIsInvalid.
//
// Example:
//
//	id, err := uuid.Parse(raw)
//	if err != nil {
//	    return errs.NewValueIsInvalidErrorWithCause("order_id", err)
//	}
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates an error for paramName without a cause.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates an error for paramName wrapping cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

// Error formats the message, appending the cause when present.
func (e *ValueIsInvalidError) Error() string {
	return sanitize(withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause))
}

// Unwrap returns ErrValueIsInvalid.
func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError reports a value outside [Min, Max], such as a zero
// item quantity. It unwraps to ErrValueIsOutOfRange.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates an error for paramName with the offending
// value and the allowed bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause is NewValueIsOutOfRangeError with an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, minValue, maxValue any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

// Error formats the message with the value and both bounds.
func (e *ValueIsOutOfRangeError) Error() string {
	return sanitize(withCause(
		fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max),
		e.Cause,
	))
}

// Unwrap returns ErrValueIsOutOfRange.
func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError reports a missing or blank value. It unwraps to
// ErrValueIsRequired.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates an error for the missing paramName.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates an error for paramName wrapping cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

// Error formats the message, appending the cause when present.
func (e *ValueIsRequiredError) Error() string {
	return sanitize(withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause))
}

// Unwrap returns ErrValueIsRequired.
func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}
