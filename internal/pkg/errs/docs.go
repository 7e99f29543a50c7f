// Package errs provides standardized error types for the booking application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the core failure taxonomy:
//   - ObjectNotFoundError: a referenced job or record does not exist
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value violates a business rule
//   - ValueIsOutOfRangeError: a numeric value lies outside its bounds
//   - InvalidTransitionError: a lifecycle operation attempted from a status
//     that does not permit it
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() for formatting and Unwrap() for errors.Is classification
//
// The boundary layer relies on this classification to translate core errors
// into transport-level responses without inspecting message text.
package errs
