package bizday

import "errors"

// Sentinel errors for the period algebra. Callers should match them with
// errors.Is; every error returned by this package wraps one of these.
var (
	// ErrUnknownCalendar is returned when a calendar name does not resolve
	// against the registry supplied to the constructor.
	ErrUnknownCalendar = errors.New("unknown calendar")

	// ErrInvalidMagnitude is returned when a textual magnitude cannot be
	// parsed as a signed integer.
	ErrInvalidMagnitude = errors.New("invalid magnitude")

	// ErrCalendarMismatch is returned by every binary operation whose two
	// operands carry different calendar handles. It is never resolved
	// silently by picking one of the calendars.
	ErrCalendarMismatch = errors.New("calendar mismatch")

	// ErrInexactResult is returned by scalar multiplication and division
	// when the resulting magnitude is not an exact integer.
	ErrInexactResult = errors.New("inexact result")

	// ErrDivisionByZero is returned when dividing by a zero scalar or a
	// zero-magnitude period.
	ErrDivisionByZero = errors.New("division by zero")
)
