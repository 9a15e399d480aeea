package domain

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a domain error for transport mapping.
type ErrorKind string

const (
	KindNotFound     ErrorKind = "not_found"
	KindValidation   ErrorKind = "validation"
	KindForbidden    ErrorKind = "forbidden"
	KindNotAvailable ErrorKind = "not_available"
	KindInvalidState ErrorKind = "invalid_state"
	KindUnknownState ErrorKind = "unknown_state"
	KindNotAllowed   ErrorKind = "not_allowed"
	KindConflict     ErrorKind = "conflict"
)

// Error is a typed domain error carrying a kind and a human-readable message.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewNotFoundError reports that an entity with the given id does not exist.
func NewNotFoundError(entity string, id int64) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s with id=%d not found", entity, id)}
}

// NewValidationError reports invalid input data.
func NewValidationError(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewForbiddenError reports that the caller lacks the relationship required
// for the action.
func NewForbiddenError(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NewNotAvailableError reports that an item cannot currently be booked.
func NewNotAvailableError(itemID int64) *Error {
	return &Error{Kind: KindNotAvailable, Message: fmt.Sprintf("item with id=%d is not available for booking", itemID)}
}

// NewInvalidStateError reports an illegal status transition.
func NewInvalidStateError(from, to string) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf("cannot transition booking from %s to %s", from, to)}
}

// NewUnknownStateError reports an unrecognized booking state filter token.
// The offending literal is echoed for diagnostics.
func NewUnknownStateError(token string) *Error {
	return &Error{Kind: KindUnknownState, Message: "Unknown state: " + token}
}

// NewNotAllowedError reports an action the caller has not earned the right to
// perform (e.g. commenting without a completed rental).
func NewNotAllowedError(message string) *Error {
	return &Error{Kind: KindNotAllowed, Message: message}
}

// NewConflictError reports a uniqueness or concurrent-modification conflict.
func NewConflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// KindOf extracts the ErrorKind from err, or "" if err is not a domain Error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ""
}
