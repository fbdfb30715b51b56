package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
)

// BookingRepository defines the persistence operations the engine needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CheckAvailability(ctx context.Context, roomID int64, start, end time.Time) (bool, error)
	OverlappingRoomIDs(ctx context.Context, start, end time.Time) ([]int64, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error)
}

// RoomRepository is the room catalog lookup the engine depends on.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListActive(ctx context.Context) ([]domain.Room, error)
}
