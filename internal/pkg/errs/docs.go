// Package errs provides standardized error types for the support service.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the failure kinds the query pipeline
// distinguishes:
//   - ObjectNotFoundError: a lookup matched no record (user-facing, not a fault)
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - InfrastructureError: an external collaborator is unreachable or failing
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify the error kind
//
// The distinction between ErrObjectNotFound and ErrInfrastructure matters at
// the resolver boundary: a missing order produces a user-facing "not found"
// message, while a storage failure is logged and masked behind a safe
// fallback reply.
package errs
