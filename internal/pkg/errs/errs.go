package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used as the unwrap target of every error type in this
// package. Callers classify errors with errors.Is against these values.
var (
	ErrValueIsRequired = errors.New("value is required")
	ErrValueIsInvalid  = errors.New("value is invalid")
	ErrObjectNotFound  = errors.New("object not found")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidBooking  = errors.New("invalid booking")
	ErrItemNotFound    = errors.New("menu item not found")
	ErrRemoteStore     = errors.New("remote store request failed")
)

// sanitize flattens multi-line values so error messages stay on one log line.
func sanitize(s string) string {
	return strings.ReplaceAll(s, "\n", " ")
}

// ValueIsRequiredError indicates that a required value was not provided.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping a cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsRequired, sanitize(e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// ValueIsInvalidError indicates that a provided value failed validation.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping a cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, sanitize(e.ParamName), e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrValueIsInvalid, sanitize(e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the given identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping a cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: param is: %s, ID is: %v (cause: %s)", ErrObjectNotFound, e.ParamName, e.ID, e.Cause)
	}
	return fmt.Sprintf("%s: %v", ErrObjectNotFound, e.ID)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// InvalidStatusError indicates a status value outside an entity's fixed enum.
// It carries the entity kind, the rejected value, and the allowed set so the
// caller can report exactly which values would have been accepted.
type InvalidStatusError struct {
	EntityKind string
	Value      string
	Allowed    []string
	Cause      error
}

// NewInvalidStatusError creates an InvalidStatusError for the given entity kind.
func NewInvalidStatusError(entityKind, value string, allowed []string) *InvalidStatusError {
	return &InvalidStatusError{EntityKind: entityKind, Value: value, Allowed: allowed}
}

func (e *InvalidStatusError) Error() string {
	msg := fmt.Sprintf("%s: %q is not a valid %s status, must be one of [%s]",
		ErrInvalidStatus, sanitize(e.Value), e.EntityKind, strings.Join(e.Allowed, ", "))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *InvalidStatusError) Unwrap() error {
	return ErrInvalidStatus
}

// InvalidBookingError indicates that an order references a booking that either
// does not exist or is not in an active status. BookingStatus is empty when the
// booking was not found at all.
type InvalidBookingError struct {
	BookingID     int64
	BookingStatus string
	Cause         error
}

// NewInvalidBookingError creates an InvalidBookingError for an inactive booking.
func NewInvalidBookingError(bookingID int64, bookingStatus string) *InvalidBookingError {
	return &InvalidBookingError{BookingID: bookingID, BookingStatus: bookingStatus}
}

// NewInvalidBookingErrorWithCause creates an InvalidBookingError for a booking
// that could not be resolved, wrapping the lookup failure.
func NewInvalidBookingErrorWithCause(bookingID int64, cause error) *InvalidBookingError {
	return &InvalidBookingError{BookingID: bookingID, Cause: cause}
}

func (e *InvalidBookingError) Error() string {
	if e.BookingStatus != "" {
		return fmt.Sprintf("%s: booking %d is not active (status: %s)",
			ErrInvalidBooking, e.BookingID, sanitize(e.BookingStatus))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: booking %d (cause: %s)", ErrInvalidBooking, e.BookingID, e.Cause)
	}
	return fmt.Sprintf("%s: booking %d", ErrInvalidBooking, e.BookingID)
}

func (e *InvalidBookingError) Unwrap() error {
	return ErrInvalidBooking
}

// ItemNotFoundError indicates that an order line references a menu item
// identifier that is not present in the menu.
type ItemNotFoundError struct {
	ItemID int64
}

// NewItemNotFoundError creates an ItemNotFoundError naming the missing item.
func NewItemNotFoundError(itemID int64) *ItemNotFoundError {
	return &ItemNotFoundError{ItemID: itemID}
}

func (e *ItemNotFoundError) Error() string {
	return fmt.Sprintf("%s: %d", ErrItemNotFound, e.ItemID)
}

func (e *ItemNotFoundError) Unwrap() error {
	return ErrItemNotFound
}

// RemoteStoreError indicates a transport or HTTP failure while talking to the
// remote data store. StatusCode is zero for transport-level failures that never
// produced an HTTP response.
type RemoteStoreError struct {
	Op         string
	Table      string
	StatusCode int
	Cause      error
}

// NewRemoteStoreError creates a RemoteStoreError for a non-2xx response.
func NewRemoteStoreError(op, table string, statusCode int) *RemoteStoreError {
	return &RemoteStoreError{Op: op, Table: table, StatusCode: statusCode}
}

// NewRemoteStoreErrorWithCause creates a RemoteStoreError for a transport failure.
func NewRemoteStoreErrorWithCause(op, table string, cause error) *RemoteStoreError {
	return &RemoteStoreError{Op: op, Table: table, Cause: cause}
}

func (e *RemoteStoreError) Error() string {
	msg := fmt.Sprintf("%s: %s %s", ErrRemoteStore, e.Op, e.Table)
	if e.StatusCode != 0 {
		msg += fmt.Sprintf(" (status: %d)", e.StatusCode)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %s)", e.Cause)
	}
	return msg
}

func (e *RemoteStoreError) Unwrap() error {
	return ErrRemoteStore
}
