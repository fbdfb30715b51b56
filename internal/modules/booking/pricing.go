package booking

import (
	"math"
	"time"

	"hotelbooking/internal/domain"
)

const (
	secondsPerHour = 3600
	secondsPerDay  = 86400
)

// CalculatePrice computes the total for a stay from the room's current
// tariff. Billed units are the duration in seconds rounded up to whole
// hours (HOURLY) or whole days (DAILY): a 61-minute stay bills as 2
// hours. Rounding is always ceiling; there is no minimum-stay floor.
// Pure and side-effect free, safe to call for estimation.
func CalculatePrice(room *domain.Room, start, end time.Time, bookingType domain.BookingType) (float64, error) {
	if !end.After(start) {
		return 0, ErrInvalidWindow
	}

	seconds := int64(end.Sub(start) / time.Second)

	var total float64
	switch bookingType {
	case domain.BookingHourly:
		total = float64(ceilDiv(seconds, secondsPerHour)) * room.PricePerHour
	case domain.BookingDaily:
		total = float64(ceilDiv(seconds, secondsPerDay)) * room.PricePerDay
	default:
		return 0, ErrInvalidType
	}

	return math.Round(total*100) / 100, nil
}

func ceilDiv(n, unit int64) int64 {
	return (n + unit - 1) / unit
}
