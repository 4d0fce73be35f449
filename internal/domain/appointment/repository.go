package appointment

import (
	"context"
	"time"
)

type Store interface {
	// -------- write --------
	Create(ctx context.Context, ap Appointment) (Appointment, error)
	Update(ctx context.Context, ap Appointment) (Appointment, error)
	Delete(ctx context.Context, id string) error

	// -------- read --------
	FindByID(ctx context.Context, id string) (Appointment, error)
	FindForBarberOnDate(ctx context.Context, barberID string, date time.Time) ([]Appointment, error)

	// FindOverlapping returns the barber's CONFIRMED appointments that
	// intersect [start, end).
	FindOverlapping(ctx context.Context, barberID string, start, end time.Time) ([]Appointment, error)

	FindForClient(ctx context.Context, clientID string) ([]Appointment, error)
}
