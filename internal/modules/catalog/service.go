package catalog

import (
	"context"
	"errors"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type Service struct {
	rooms RoomRepository
}

func NewService(rooms RoomRepository) *Service {
	return &Service{rooms: rooms}
}

// ListRooms returns all active rooms ordered by name.
func (s *Service) ListRooms(ctx context.Context) ([]domain.Room, error) {
	return s.rooms.ListActive(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id int64) (*domain.Room, error) {
	room, err := s.rooms.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return room, nil
}
