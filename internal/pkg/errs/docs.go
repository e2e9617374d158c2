// Package errs provides standardized error types for the escrowship application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value fails validation
//   - ValueIsOutOfRangeError: for when a numeric value is outside its bounds
//   - ObjectNotFoundError: for when an object cannot be found
//   - InvalidTransitionError: for when an operation is attempted from the wrong status
//   - ConfigError: for when static configuration (e.g. a category policy) is missing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can match the sentinel
//
// Callers classify failures with errors.Is against the sentinels; the struct
// fields carry the specifics (which parameter, which status, which operation).
package errs
