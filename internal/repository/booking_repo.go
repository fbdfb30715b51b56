package repository

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;index:idx_bookings_user_start"`
	RoomID      int64     `gorm:"column:room_id;index:idx_bookings_room_window"`
	BookingType string    `gorm:"column:booking_type"`
	StartTime   time.Time `gorm:"column:start_time;index:idx_bookings_user_start;index:idx_bookings_room_window"`
	EndTime     time.Time `gorm:"column:end_time;index:idx_bookings_room_window"`
	Status      string    `gorm:"column:status;index:idx_bookings_room_window"`
	TotalPrice  float64   `gorm:"column:total_price"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:          m.ID,
		UserID:      m.UserID,
		RoomID:      m.RoomID,
		BookingType: domain.BookingType(m.BookingType),
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Status:      domain.BookingStatus(m.Status),
		TotalPrice:  m.TotalPrice,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:          b.ID,
		UserID:      b.UserID,
		RoomID:      b.RoomID,
		BookingType: string(b.BookingType),
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
		Status:      string(b.Status),
		TotalPrice:  b.TotalPrice,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CheckAvailability reports whether the room has no active booking whose
// half-open window [start_time, end_time) overlaps [start, end). Windows
// that merely touch at an endpoint do not overlap, so back-to-back
// bookings are allowed.
func (r *BookingRepository) CheckAvailability(ctx context.Context, roomID int64, start, end time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", activeStatusStrings()).
		Where("start_time < ? AND end_time > ?", end, start).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt == 0, nil
}

// OverlappingRoomIDs returns the ids of rooms that have at least one
// active booking overlapping [start, end).
func (r *BookingRepository) OverlappingRoomIDs(ctx context.Context, start, end time.Time) ([]int64, error) {
	var ids []int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Distinct("room_id").
		Where("status IN ?", activeStatusStrings()).
		Where("start_time < ? AND end_time > ?", end, start).
		Pluck("room_id", &ids)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return ids, nil
}

// ListByUser returns the user's bookings, most recent stay first.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var rows []bookingModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_time DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// UpdateStatusFrom moves a booking from one status to another with the
// current status guarded inside the UPDATE itself. It returns false when
// the row was not in the expected status anymore, so two concurrent
// transitions on the same booking cannot both succeed.
func (r *BookingRepository) UpdateStatusFrom(ctx context.Context, id int64, from, to domain.BookingStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(map[string]any{
			"status":     string(to),
			"updated_at": time.Now().UTC(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func activeStatusStrings() []string {
	out := make([]string, 0, len(domain.ActiveStatuses))
	for _, s := range domain.ActiveStatuses {
		out = append(out, string(s))
	}
	return out
}
