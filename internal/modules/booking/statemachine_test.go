package booking

import (
	"testing"
	"time"

	"hotelbooking/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestNextStatus_PermittedPaths(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	started := &domain.Booking{
		Status:    domain.BookingConfirmed,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	}
	next, err := NextStatus(started, ActionCheckIn, now)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCheckedIn, next)

	checkedIn := &domain.Booking{
		Status:    domain.BookingCheckedIn,
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(time.Hour),
	}
	next, err = NextStatus(checkedIn, ActionCheckOut, now)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, next)

	future := &domain.Booking{
		Status:    domain.BookingConfirmed,
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	}
	next, err = NextStatus(future, ActionCancel, now)
	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCanceled, next)
}

func TestNextStatus_TimeGuards(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	// Check-in before the booking starts.
	future := &domain.Booking{
		Status:    domain.BookingConfirmed,
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	}
	_, err := NextStatus(future, ActionCheckIn, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Check-in after the booking has ended.
	ended := &domain.Booking{
		Status:    domain.BookingConfirmed,
		StartTime: now.Add(-2 * time.Hour),
		EndTime:   now.Add(-time.Hour),
	}
	_, err = NextStatus(ended, ActionCheckIn, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Cancel at or after the start time.
	started := &domain.Booking{
		Status:    domain.BookingConfirmed,
		StartTime: now,
		EndTime:   now.Add(time.Hour),
	}
	_, err = NextStatus(started, ActionCancel, now)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

// Every (status, action) pair outside the transition table must fail with
// InvalidTransition, regardless of timing.
func TestNextStatus_RejectsPairsOutsideTable(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	allowed := map[domain.BookingStatus]map[Action]bool{
		domain.BookingConfirmed: {ActionCheckIn: true, ActionCancel: true},
		domain.BookingCheckedIn: {ActionCheckOut: true},
	}

	statuses := []domain.BookingStatus{
		domain.BookingConfirmed,
		domain.BookingCheckedIn,
		domain.BookingCompleted,
		domain.BookingCanceled,
	}
	actions := []Action{ActionCheckIn, ActionCheckOut, ActionCancel}

	for _, status := range statuses {
		for _, action := range actions {
			if allowed[status][action] {
				continue
			}

			b := &domain.Booking{
				Status:    status,
				StartTime: now.Add(-time.Hour),
				EndTime:   now.Add(time.Hour),
			}
			_, err := NextStatus(b, action, now)
			assert.ErrorIs(t, err, ErrInvalidTransition, "status=%s action=%s", status, action)

			var transitionErr *TransitionError
			assert.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, status, transitionErr.Status)
			assert.Equal(t, action, transitionErr.Action)
		}
	}
}

// A rejected guard leaves no state behind: re-applying it fails the same way.
func TestNextStatus_RejectionIsRepeatable(t *testing.T) {
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		Status:    domain.BookingConfirmed,
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	}

	_, first := NextStatus(b, ActionCheckIn, now)
	_, second := NextStatus(b, ActionCheckIn, now)
	assert.Error(t, first)
	assert.Equal(t, first.Error(), second.Error())
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestParseAction(t *testing.T) {
	for _, s := range []string{"check-in", "check-out", "cancel"} {
		a, err := ParseAction(s)
		assert.NoError(t, err)
		assert.Equal(t, Action(s), a)
	}

	_, err := ParseAction("checkin")
	assert.Error(t, err)
}
