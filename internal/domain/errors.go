// Package domain holds the error taxonomy and principal type shared by the
// repositories, services and handlers. Services return these sentinels so
// callers can branch with errors.Is instead of matching message strings.
package domain

import "errors"

var (
	// ErrFutureAttendance is returned when the normalized attendance date
	// lies after the current calendar day.
	ErrFutureAttendance = errors.New("cannot mark attendance for future dates")

	// ErrAttendanceMarked is returned when a record already exists for the
	// (employee, day) pair.
	ErrAttendanceMarked = errors.New("attendance already marked today")

	// ErrLeaveNotFound is returned when no leave request has the given id.
	ErrLeaveNotFound = errors.New("leave not found")

	// ErrLeaveProcessed is returned when approving or rejecting a request
	// that is no longer Pending. Approved/Rejected are terminal.
	ErrLeaveProcessed = errors.New("leave already processed")

	// ErrInsufficientBalance is returned when an approval would drive the
	// employee's leave balance negative.
	ErrInsufficientBalance = errors.New("insufficient leave balance")

	// ErrInvalidLeaveRange is returned at approval time for requests whose
	// recorded day count is below one (inverted date ranges are accepted at
	// submission but can never be approved).
	ErrInvalidLeaveRange = errors.New("leave request has an invalid date range")

	// ErrEmailTaken is returned when registering with an email that already
	// belongs to an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ErrorCode maps a domain error to a stable machine-readable kind for API
// responses. Unknown errors map to INTERNAL.
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, ErrFutureAttendance):
		return "FUTURE_DATE"
	case errors.Is(err, ErrAttendanceMarked):
		return "DUPLICATE_RECORD"
	case errors.Is(err, ErrLeaveNotFound):
		return "NOT_FOUND"
	case errors.Is(err, ErrLeaveProcessed):
		return "ALREADY_PROCESSED"
	case errors.Is(err, ErrInsufficientBalance):
		return "INSUFFICIENT_BALANCE"
	case errors.Is(err, ErrInvalidLeaveRange):
		return "INVALID_RANGE"
	case errors.Is(err, ErrEmailTaken):
		return "EMAIL_TAKEN"
	case errors.Is(err, ErrInvalidCredentials):
		return "INVALID_CREDENTIALS"
	default:
		return "INTERNAL"
	}
}
