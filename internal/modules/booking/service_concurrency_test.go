package booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"

	"github.com/stretchr/testify/require"
)

// newTestService wires the real repositories over an in-memory SQLite
// database, the same way cmd/api does against Postgres.
func newTestService(t *testing.T) (*Service, *repository.RoomRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Single connection keeps the shared in-memory database alive and
	// avoids SQLITE_BUSY under concurrent writers.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, repository.Migrate(db))

	rooms := repository.NewRoomRepository(db)
	bookings := repository.NewBookingRepository(db)
	return NewService(bookings, rooms), rooms
}

func seedRoom(t *testing.T, rooms *repository.RoomRepository, name string) *domain.Room {
	t.Helper()
	room := &domain.Room{
		Name:         name,
		Capacity:     2,
		PricePerHour: 10.00,
		PricePerDay:  100.00,
		IsActive:     true,
	}
	require.NoError(t, rooms.Create(context.Background(), room))
	return room
}

// N concurrent createBooking calls for the same room and an identical
// window must produce exactly one CONFIRMED booking and N-1 conflicts.
func TestService_CreateBooking_ConcurrentSameRoom(t *testing.T) {
	service, rooms := newTestService(t)
	room := seedRoom(t, rooms, "Standard Double")

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	req := CreateBookingRequest{
		RoomID:      room.ID,
		BookingType: "HOURLY",
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
	}

	const n = 8
	results := make(chan error, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(userID int64) {
			defer wg.Done()
			_, err := service.CreateBooking(context.Background(), userID, req)
			results <- err
		}(int64(i + 1))
	}
	wg.Wait()
	close(results)

	var succeeded, conflicted int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrRoomUnavailable):
			conflicted++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	require.Equal(t, 1, succeeded)
	require.Equal(t, n-1, conflicted)
}

// Different rooms never contend: concurrent bookings with the same window
// on distinct rooms all succeed.
func TestService_CreateBooking_ConcurrentDistinctRooms(t *testing.T) {
	service, rooms := newTestService(t)

	const n = 4
	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		room := seedRoom(t, rooms, fmt.Sprintf("Room %d", i+1))
		ids = append(ids, room.ID)
	}

	start := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Second)
	results := make(chan error, n)
	var wg sync.WaitGroup
	for _, roomID := range ids {
		wg.Add(1)
		go func(roomID int64) {
			defer wg.Done()
			_, err := service.CreateBooking(context.Background(), 1, CreateBookingRequest{
				RoomID:      roomID,
				BookingType: "DAILY",
				StartTime:   start,
				EndTime:     start.Add(24 * time.Hour),
			})
			results <- err
		}(roomID)
	}
	wg.Wait()
	close(results)

	for err := range results {
		require.NoError(t, err)
	}
}

// Back-to-back bookings share a boundary instant and must both succeed;
// an overlapping third attempt must not.
func TestService_CreateBooking_BackToBack(t *testing.T) {
	service, rooms := newTestService(t)
	room := seedRoom(t, rooms, "Standard Single")

	day := time.Now().UTC().Add(24 * time.Hour).Truncate(time.Hour)
	first, err := service.CreateBooking(context.Background(), 1, CreateBookingRequest{
		RoomID:      room.ID,
		BookingType: "HOURLY",
		StartTime:   day,
		EndTime:     day.Add(2 * time.Hour),
	})
	require.NoError(t, err)
	require.Equal(t, domain.BookingConfirmed, first.Status)
	require.Equal(t, 20.00, first.TotalPrice)

	second, err := service.CreateBooking(context.Background(), 2, CreateBookingRequest{
		RoomID:      room.ID,
		BookingType: "HOURLY",
		StartTime:   day.Add(2 * time.Hour),
		EndTime:     day.Add(3 * time.Hour),
	})
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	_, err = service.CreateBooking(context.Background(), 3, CreateBookingRequest{
		RoomID:      room.ID,
		BookingType: "HOURLY",
		StartTime:   day.Add(time.Hour),
		EndTime:     day.Add(3 * time.Hour),
	})
	require.ErrorIs(t, err, ErrRoomUnavailable)
}

// A canceled booking releases the room for the same window.
func TestService_CreateBooking_AfterCancel(t *testing.T) {
	service, rooms := newTestService(t)
	room := seedRoom(t, rooms, "Family Suite")

	start := time.Now().UTC().Add(48 * time.Hour).Truncate(time.Second)
	req := CreateBookingRequest{
		RoomID:      room.ID,
		BookingType: "DAILY",
		StartTime:   start,
		EndTime:     start.Add(24 * time.Hour),
	}

	first, err := service.CreateBooking(context.Background(), 1, req)
	require.NoError(t, err)

	_, err = service.CreateBooking(context.Background(), 2, req)
	require.ErrorIs(t, err, ErrRoomUnavailable)

	_, err = service.Transition(context.Background(), 1, first.ID, ActionCancel)
	require.NoError(t, err)

	second, err := service.CreateBooking(context.Background(), 2, req)
	require.NoError(t, err)
	require.Equal(t, domain.BookingConfirmed, second.Status)
}
