package booking

import (
	"errors"
	"fmt"

	"hotelbooking/internal/domain"
)

var (
	ErrInvalidWindow     = errors.New("invalid booking window")
	ErrInvalidType       = errors.New("invalid booking type")
	ErrRoomNotFound      = errors.New("room not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrRoomUnavailable   = errors.New("room not available for the requested window")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// TransitionError names the rejected action and the status the booking
// was in. It unwraps to ErrInvalidTransition so handlers can match it
// with errors.Is.
type TransitionError struct {
	Status domain.BookingStatus
	Action Action
	Reason string
}

func (e *TransitionError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("cannot %s booking in status %s: %s", e.Action, e.Status, e.Reason)
	}
	return fmt.Sprintf("cannot %s booking in status %s", e.Action, e.Status)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }
