package errs

import "fmt"

// PreconditionFailedError reports a request that is well formed but refers to
// state that does not hold, such as an order pointing at a missing vendor.
type PreconditionFailedError struct {
	Reason string
	Cause  error
}

// NewPreconditionFailedError creates an error with a human readable reason.
//
// Example:
//
//	var ErrVendorDoesNotExist = errs.NewPreconditionFailedError("vendor does not exist")
func NewPreconditionFailedError(reason string) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason}
}

// NewPreconditionFailedErrorWithCause is NewPreconditionFailedError with an underlying cause.
func NewPreconditionFailedErrorWithCause(reason string, cause error) *PreconditionFailedError {
	return &PreconditionFailedError{Reason: reason, Cause: cause}
}

// Error formats the reason, appending the cause when present.
func (e *PreconditionFailedError) Error() string {
	return sanitize(withCause(fmt.Sprintf("%s: %s", ErrPreconditionFailed, e.Reason), e.Cause))
}

// Unwrap returns ErrPreconditionFailed.
func (e *PreconditionFailedError) Unwrap() error {
	return ErrPreconditionFailed
}

// AccessDeniedError is returned when an authenticated principal may not perform
// an operation: wrong owner, missing role, or a disabled account.
type AccessDeniedError struct {
	Reason string
}

// NewAccessDeniedError creates an error with the reason shown to the client,
// for example "not authorized" or "inactive user".
func NewAccessDeniedError(reason string) *AccessDeniedError {
	return &AccessDeniedError{Reason: reason}
}

// Error formats the reason.
func (e *AccessDeniedError) Error() string {
	return sanitize(fmt.Sprintf("%s: %s", ErrAccessDenied, e.Reason))
}

// Unwrap returns ErrAccessDenied.
func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

// UnauthenticatedError is returned by credential resolution. Cause is for logs
// only and never reaches Error().
type UnauthenticatedError struct {
	Reason string
	Cause  error
}

// NewUnauthenticatedError creates an error with a generic reason. Keep reason
// free of token contents; put the parser error in cause.
func NewUnauthenticatedError(reason string, cause error) *UnauthenticatedError {
	return &UnauthenticatedError{Reason: reason, Cause: cause}
}

// Error formats the reason only.
func (e *UnauthenticatedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnauthenticated, e.Reason)
}

// Unwrap returns ErrUnauthenticated.
func (e *UnauthenticatedError) Unwrap() error {
	return ErrUnauthenticated
}
