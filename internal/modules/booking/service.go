package booking

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/pkg/validator"
	"hotelbooking/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
)

// Service is the reservation coordinator: the single entry point the HTTP
// layer calls for availability reads, booking creation, and lifecycle
// transitions. It holds no session state; the caller identity is an
// explicit parameter on every operation.
type Service struct {
	bookings BookingRepository
	rooms    RoomRepository
	locks    *roomLocks
}

func NewService(bookings BookingRepository, rooms RoomRepository) *Service {
	return &Service{
		bookings: bookings,
		rooms:    rooms,
		locks:    newRoomLocks(),
	}
}

// CreateBooking validates the request, prices the stay, and persists a
// CONFIRMED booking. The availability re-check and the insert run under
// the room's mutex, so two concurrent requests for overlapping windows on
// the same room cannot both succeed. On PostgreSQL the no-overbooking
// exclusion constraint backstops the same guarantee; a lost race at
// commit surfaces as ErrRoomUnavailable, same as the pre-check failure.
func (s *Service) CreateBooking(ctx context.Context, userID int64, req CreateBookingRequest) (*domain.Booking, error) {
	if !req.EndTime.After(req.StartTime) {
		return nil, ErrInvalidWindow
	}
	if !req.EndTime.After(time.Now().UTC()) {
		return nil, ErrInvalidWindow
	}

	bookingType, err := domain.ParseBookingType(req.BookingType)
	if err != nil {
		return nil, ErrInvalidType
	}

	room, err := s.rooms.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	total, err := CalculatePrice(room, req.StartTime, req.EndTime, bookingType)
	if err != nil {
		return nil, err
	}

	b := &domain.Booking{
		UserID:      userID,
		RoomID:      room.ID,
		BookingType: bookingType,
		StartTime:   req.StartTime.UTC(),
		EndTime:     req.EndTime.UTC(),
		Status:      domain.BookingConfirmed,
		TotalPrice:  total,
	}
	if fieldErrs := validator.Validate(b); fieldErrs != nil {
		return nil, ErrInvalidWindow
	}

	mu := s.locks.acquire(room.ID)
	defer mu.Unlock()

	ok, err := s.bookings.CheckAvailability(ctx, room.ID, b.StartTime, b.EndTime)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrRoomUnavailable
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		if isOverbookingConflict(err) {
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	b.Room = room
	return b, nil
}

// Transition applies a lifecycle action to a booking owned by userID.
// The status read and the write are joined by a guarded UPDATE, so two
// concurrent transitions on the same booking cannot both succeed.
func (s *Service) Transition(ctx context.Context, userID, bookingID int64, action Action) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if b.UserID != userID {
		return nil, ErrForbidden
	}

	next, err := NextStatus(b, action, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	moved, err := s.bookings.UpdateStatusFrom(ctx, b.ID, b.Status, next)
	if err != nil {
		return nil, err
	}
	if !moved {
		// Lost a race against another transition on the same booking.
		return nil, &TransitionError{Status: b.Status, Action: action, Reason: "booking changed concurrently"}
	}

	b.Status = next
	return b, nil
}

// IsRoomAvailable answers the advisory read-time availability question.
// A positive answer is not a reservation; CreateBooking re-checks.
func (s *Service) IsRoomAvailable(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	if !end.After(start) {
		return false, ErrInvalidWindow
	}

	if _, err := s.rooms.GetByID(ctx, roomID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrRoomNotFound
		}
		return false, err
	}

	return s.bookings.CheckAvailability(ctx, roomID, start, end)
}

// ListAvailableRooms returns the active rooms free for the window, in
// catalog order (name ascending), so identical queries return identical
// ordering.
func (s *Service) ListAvailableRooms(ctx context.Context, start, end time.Time, bookingType string) ([]domain.Room, error) {
	if !end.After(start) {
		return nil, ErrInvalidWindow
	}
	if _, err := domain.ParseBookingType(bookingType); err != nil {
		return nil, ErrInvalidType
	}

	rooms, err := s.rooms.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	busyIDs, err := s.bookings.OverlappingRoomIDs(ctx, start, end)
	if err != nil {
		return nil, err
	}

	busy := make(map[int64]bool, len(busyIDs))
	for _, id := range busyIDs {
		busy[id] = true
	}

	out := make([]domain.Room, 0, len(rooms))
	for _, r := range rooms {
		if !busy[r.ID] {
			out = append(out, r)
		}
	}
	return out, nil
}

// ListBookings returns the caller's bookings, most recent stay first.
func (s *Service) ListBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

// GetBooking returns a booking owned by userID. Bookings of other users
// are reported as not found rather than forbidden.
func (s *Service) GetBooking(ctx context.Context, userID, bookingID int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if b.UserID != userID {
		return nil, ErrBookingNotFound
	}
	return b, nil
}

// isOverbookingConflict recognizes the PostgreSQL exclusion/unique
// violation raised by the idx_no_overbooking constraint.
func isOverbookingConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != "23505" && pgErr.Code != "23P01" {
		return false
	}
	return pgErr.ConstraintName == "idx_no_overbooking"
}
