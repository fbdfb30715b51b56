package domain

import (
	"fmt"
	"time"
)

type BookingType string

const (
	BookingHourly BookingType = "HOURLY"
	BookingDaily  BookingType = "DAILY"
)

func ParseBookingType(s string) (BookingType, error) {
	switch BookingType(s) {
	case BookingHourly:
		return BookingHourly, nil
	case BookingDaily:
		return BookingDaily, nil
	}
	return "", fmt.Errorf("unknown booking type: %q", s)
}

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCheckedIn BookingStatus = "CHECKED_IN"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCanceled  BookingStatus = "CANCELED"
)

// ActiveStatuses are the statuses that still hold the room and therefore
// participate in overlap checks.
var ActiveStatuses = []BookingStatus{BookingConfirmed, BookingCheckedIn}

func (s BookingStatus) IsActive() bool {
	return s == BookingConfirmed || s == BookingCheckedIn
}

// IsTerminal reports whether the booking can no longer change status.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCanceled
}

type Booking struct {
	ID          int64         `json:"id"`
	UserID      int64         `json:"user_id" validate:"required"`
	RoomID      int64         `json:"room_id" validate:"required"`
	BookingType BookingType   `json:"booking_type" validate:"required"`
	StartTime   time.Time     `json:"start_time" validate:"required"`
	EndTime     time.Time     `json:"end_time" validate:"required,gtfield=StartTime"`
	Status      BookingStatus `json:"status"`
	TotalPrice  float64       `json:"total_price" validate:"gte=0"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`

	Room *Room `json:"room,omitempty"`
}
