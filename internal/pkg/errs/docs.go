// Package errs provides standardized error types for the order lifecycle service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package defines the error taxonomy of the order engine:
//   - InvalidTransitionError: a lifecycle event is not allowed from the current status
//   - ConcurrencyConflictError: a read-modify-write cycle lost a concurrent race (retryable)
//   - ObjectNotFoundError: an object cannot be found by its identifier
//   - UnauthorizedError: the actor is not permitted to perform the operation
//   - DuplicateError: an object with the same identity already exists
//   - ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError: validation failures
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidTransition)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classification works against the sentinel
//
// Errors are always returned to the caller, never logged and swallowed. The HTTP
// adapter maps the sentinels to response status codes.
package errs
