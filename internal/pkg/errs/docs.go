// Package errs provides standardized error types for the concierge application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes generic error types for common scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//
// and domain-specific error types for the hotel-operations core:
//   - InvalidStatusError: a status value outside an entity's fixed enum
//   - InvalidBookingError: a missing or inactive booking referenced by an order
//   - ItemNotFoundError: an order line referencing an unknown menu item
//   - RemoteStoreError: a transport or HTTP failure from the remote data store
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrInvalidStatus)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so callers can classify
//     errors with errors.Is
package errs
