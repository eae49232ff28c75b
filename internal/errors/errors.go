package errors

import "fmt"

// MissingFieldError reports the first required field found empty or nil.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s must not be empty or null", e.Field)
}

func NewMissingFieldError(field string) *MissingFieldError {
	return &MissingFieldError{Field: field}
}

func IsMissingFieldError(err error) (*MissingFieldError, bool) {
	if me, ok := err.(*MissingFieldError); ok {
		return me, true
	}
	return nil, false
}

// InvalidFormatError reports a value that does not match the expected format.
type InvalidFormatError struct {
	Field   string
	Value   string
	Message string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Field, e.Value, e.Message)
}

func NewInvalidFormatError(field, value, message string) *InvalidFormatError {
	return &InvalidFormatError{Field: field, Value: value, Message: message}
}

func IsInvalidFormatError(err error) (*InvalidFormatError, bool) {
	if fe, ok := err.(*InvalidFormatError); ok {
		return fe, true
	}
	return nil, false
}

// InvalidRangeError covers date ordering problems: check-in on or after
// check-out, or a check-in in the past.
type InvalidRangeError struct {
	Message string
}

func (e *InvalidRangeError) Error() string {
	return e.Message
}

func NewInvalidRangeError(message string) *InvalidRangeError {
	return &InvalidRangeError{Message: message}
}

func IsInvalidRangeError(err error) (*InvalidRangeError, bool) {
	if re, ok := err.(*InvalidRangeError); ok {
		return re, true
	}
	return nil, false
}

// DuplicateCustomerError reports a registration against an email already in
// the directory.
type DuplicateCustomerError struct {
	Email string
}

func (e *DuplicateCustomerError) Error() string {
	return fmt.Sprintf("%s already exists", e.Email)
}

func NewDuplicateCustomerError(email string) *DuplicateCustomerError {
	return &DuplicateCustomerError{Email: email}
}

func IsDuplicateCustomerError(err error) (*DuplicateCustomerError, bool) {
	if de, ok := err.(*DuplicateCustomerError); ok {
		return de, true
	}
	return nil, false
}

// RoomUnavailableError reports an attempt to reserve a room that is not open
// for booking (not registered in the catalog).
type RoomUnavailableError struct {
	RoomNumber string
}

func (e *RoomUnavailableError) Error() string {
	return fmt.Sprintf("room %s is not open for booking", e.RoomNumber)
}

func NewRoomUnavailableError(roomNumber string) *RoomUnavailableError {
	return &RoomUnavailableError{RoomNumber: roomNumber}
}

func IsRoomUnavailableError(err error) (*RoomUnavailableError, bool) {
	if ue, ok := err.(*RoomUnavailableError); ok {
		return ue, true
	}
	return nil, false
}

// OverlapConflictError reports a requested stay that shares at least one
// night with an existing reservation for the same room.
type OverlapConflictError struct {
	RoomNumber string
}

func (e *OverlapConflictError) Error() string {
	return fmt.Sprintf("room %s is already reserved for part of the requested dates", e.RoomNumber)
}

func NewOverlapConflictError(roomNumber string) *OverlapConflictError {
	return &OverlapConflictError{RoomNumber: roomNumber}
}

func IsOverlapConflictError(err error) (*OverlapConflictError, bool) {
	if oe, ok := err.(*OverlapConflictError); ok {
		return oe, true
	}
	return nil, false
}

// ParseError reports date text that does not match the expected layout.
type ParseError struct {
	Input string
	Cause error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("cannot parse date %q: %v", e.Input, e.Cause)
	}
	return fmt.Sprintf("cannot parse date %q", e.Input)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}

func NewParseError(input string, cause error) *ParseError {
	return &ParseError{Input: input, Cause: cause}
}

func IsParseError(err error) (*ParseError, bool) {
	if pe, ok := err.(*ParseError); ok {
		return pe, true
	}
	return nil, false
}

// NotFoundError is available for callers that need a lookup miss as an error
// value. The stores themselves return nil for misses.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *NotFoundError {
	return &NotFoundError{Message: message}
}

func IsNotFoundError(err error) (*NotFoundError, bool) {
	if ne, ok := err.(*NotFoundError); ok {
		return ne, true
	}
	return nil, false
}
