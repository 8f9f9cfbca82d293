// Package errs defines the error vocabulary of the procurement service.
//
// Every error kind comes as a pair: a sentinel (ErrObjectNotFound, ErrValueIsInvalid,
// ...) that callers match with errors.Is, and a struct carrying the details that
// unwraps to that sentinel. Adapters translate sentinels into transport status codes;
// the core never refers to HTTP.
//
// The package includes these error types:
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError, ObjectAlreadyExistsError: store lookups and uniqueness
//   - PreconditionFailedError: well-formed input referring to state that does not hold
//   - AccessDeniedError: authenticated principal lacking ownership or role
//   - UnauthenticatedError: credential that could not be resolved
//
// Each type follows the same pattern:
//   - A sentinel error variable
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for the message, Unwrap() returning the sentinel
//
// Example:
//
//	if _, err := repo.Get(ctx, id); errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
package errs
