package booking

import (
	"time"

	"hotelbooking/internal/domain"
)

type CreateBookingRequest struct {
	RoomID      int64     `json:"room_id" binding:"required"`
	BookingType string    `json:"booking_type" binding:"required"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

type BookingResponse struct {
	ID          int64     `json:"id"`
	RoomID      int64     `json:"room_id"`
	RoomName    string    `json:"room_name,omitempty"`
	BookingType string    `json:"booking_type"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:          b.ID,
		RoomID:      b.RoomID,
		BookingType: string(b.BookingType),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		TotalPrice:  b.TotalPrice,
		CreatedAt:   b.CreatedAt,
	}
	if b.Room != nil {
		resp.RoomName = b.Room.Name
	}
	return resp
}
