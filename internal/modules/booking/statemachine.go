package booking

import (
	"fmt"
	"time"

	"hotelbooking/internal/domain"
)

type Action string

const (
	ActionCheckIn  Action = "check-in"
	ActionCheckOut Action = "check-out"
	ActionCancel   Action = "cancel"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionCheckIn, ActionCheckOut, ActionCancel:
		return Action(s), nil
	}
	return "", fmt.Errorf("unknown booking action: %q", s)
}

// transitions is the complete lifecycle table; any (status, action) pair
// not listed here is rejected. COMPLETED and CANCELED have no outgoing
// moves.
var transitions = map[domain.BookingStatus]map[Action]domain.BookingStatus{
	domain.BookingConfirmed: {
		ActionCheckIn: domain.BookingCheckedIn,
		ActionCancel:  domain.BookingCanceled,
	},
	domain.BookingCheckedIn: {
		ActionCheckOut: domain.BookingCompleted,
	},
}

// NextStatus validates the action against the booking's current status
// and the time guards, and returns the target status. Rejected attempts
// leave no trace: re-applying a failed guard fails identically.
func NextStatus(b *domain.Booking, action Action, now time.Time) (domain.BookingStatus, error) {
	next, ok := transitions[b.Status][action]
	if !ok {
		return "", &TransitionError{Status: b.Status, Action: action}
	}

	switch action {
	case ActionCheckIn:
		if now.Before(b.StartTime) {
			return "", &TransitionError{
				Status: b.Status,
				Action: action,
				Reason: "booking has not started yet",
			}
		}
		if !now.Before(b.EndTime) {
			return "", &TransitionError{
				Status: b.Status,
				Action: action,
				Reason: "booking has already ended",
			}
		}
	case ActionCancel:
		if !now.Before(b.StartTime) {
			return "", &TransitionError{
				Status: b.Status,
				Action: action,
				Reason: "booking has already started",
			}
		}
	}

	return next, nil
}
