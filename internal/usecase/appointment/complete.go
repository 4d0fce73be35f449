package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

type MarkConcluded struct {
	appointments domainappt.Store
	audit        *audit.Dispatcher
}

func NewMarkConcluded(appointments domainappt.Store, audit *audit.Dispatcher) *MarkConcluded {
	return &MarkConcluded{appointments: appointments, audit: audit}
}

func (uc *MarkConcluded) Execute(ctx context.Context, appointmentID, barberID string) (domainappt.Appointment, error) {
	ap, err := loadOwned(ctx, uc.appointments, appointmentID, ownedByBarber(barberID))
	if err != nil {
		return domainappt.Appointment{}, err
	}

	next, err := ap.Conclude()
	if err != nil {
		return domainappt.Appointment{}, err
	}

	updated, err := uc.appointments.Update(ctx, next)
	if err != nil {
		return domainappt.Appointment{}, err
	}

	dispatch(uc.audit, identity.RoleBarber, barberID, audit.ActionAppointmentConcluded, updated)
	return updated, nil
}
