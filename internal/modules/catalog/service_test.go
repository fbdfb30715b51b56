package catalog

import (
	"context"
	"testing"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockRoomRepository struct {
	mock.Mock
}

func (m *MockRoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}

func (m *MockRoomRepository) ListActive(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Room), args.Error(1)
}

func TestService_ListRooms(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("ListActive", mock.Anything).Return([]domain.Room{
		{ID: 1, Name: "Family Suite"},
		{ID: 2, Name: "Standard Single"},
	}, nil)

	service := NewService(mockRooms)

	rooms, err := service.ListRooms(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rooms, 2)
	assert.Equal(t, "Family Suite", rooms[0].Name)
}

func TestService_GetRoom_NotFound(t *testing.T) {
	mockRooms := new(MockRoomRepository)
	mockRooms.On("GetByID", mock.Anything, int64(77)).Return(nil, repository.ErrNotFound)

	service := NewService(mockRooms)

	_, err := service.GetRoom(context.Background(), 77)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}
