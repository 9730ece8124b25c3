// Package errs provides standardized error types for the parcel tracking
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ValueIsOutOfRangeError: for when a numeric value is outside its bounds
//   - ValueAlreadyExistsError: for uniqueness violations (email, codes)
//   - ObjectNotFoundError: for when an object cannot be found
//   - ConcurrencyConflictError: for when a concurrent transition raced and won
//   - UnavailableError: for when the persistence layer is unreachable
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// Domain-specific failures (invalid transitions, bad credentials) are declared
// as sentinels inside their domain packages and are not duplicated here.
package errs
