package catalog

import (
	"context"

	"hotelbooking/internal/domain"
)

// RoomRepository defines the catalog reads. Room management happens
// through an external admin interface; this module never writes.
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
	ListActive(ctx context.Context) ([]domain.Room, error)
}
