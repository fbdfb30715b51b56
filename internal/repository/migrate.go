package repository

import (
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. On PostgreSQL it additionally
// installs a range-exclusion constraint so the database itself rejects a
// second active booking overlapping the same room window; the losing
// committer surfaces as a constraint violation (SQLSTATE 23505/23P01).
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&userModel{}, &roomModel{}, &bookingModel{}); err != nil {
		return err
	}

	if db.Dialector.Name() != "postgres" {
		return nil
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`).Error; err != nil {
		return err
	}
	return db.Exec(`
DO $$
BEGIN
  IF NOT EXISTS (
    SELECT 1 FROM pg_constraint WHERE conname = 'idx_no_overbooking'
  ) THEN
    ALTER TABLE bookings
      ADD CONSTRAINT idx_no_overbooking
      EXCLUDE USING gist (
        room_id WITH =,
        tstzrange(start_time, end_time, '[)') WITH &&
      )
      WHERE (status IN ('CONFIRMED', 'CHECKED_IN'));
  END IF;
END
$$`).Error
}
