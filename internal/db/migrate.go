package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

// Confirmed appointments of one barber may never overlap. The constraint
// backs up the application-level conflict check and per-barber lock.
const appointmentsNoOverlap = `
DO $$
BEGIN
	IF NOT EXISTS (
		SELECT 1 FROM pg_constraint WHERE conname = 'appointments_no_overlap'
	) THEN
		ALTER TABLE appointments
			ADD CONSTRAINT appointments_no_overlap
			EXCLUDE USING gist (
				barber_id WITH =,
				tsrange(start_time, end_time, '[)') WITH &&
			)
			WHERE (status = 'CONFIRMED');
	END IF;
END
$$;
`

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Barber{},
		&models.Service{},
		&models.WorkingHours{},
		&models.Client{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS btree_gist").Error; err != nil {
		return fmt.Errorf("enable btree_gist: %w", err)
	}
	if err := db.Exec(appointmentsNoOverlap).Error; err != nil {
		return fmt.Errorf("appointments exclusion constraint: %w", err)
	}
	return nil
}
