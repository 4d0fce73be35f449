package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

type CancelByClient struct {
	appointments domainappt.Store
	audit        *audit.Dispatcher
}

func NewCancelByClient(appointments domainappt.Store, audit *audit.Dispatcher) *CancelByClient {
	return &CancelByClient{appointments: appointments, audit: audit}
}

func (uc *CancelByClient) Execute(ctx context.Context, appointmentID, clientID string) (domainappt.Appointment, error) {
	ap, err := loadOwned(ctx, uc.appointments, appointmentID, ownedByClient(clientID))
	if err != nil {
		return domainappt.Appointment{}, err
	}

	next, err := ap.CancelByClient()
	if err != nil {
		return domainappt.Appointment{}, err
	}

	updated, err := uc.appointments.Update(ctx, next)
	if err != nil {
		return domainappt.Appointment{}, err
	}

	dispatch(uc.audit, identity.RoleClient, clientID, audit.ActionAppointmentCancelledClient, updated)
	return updated, nil
}

type CancelByBarber struct {
	appointments domainappt.Store
	audit        *audit.Dispatcher
}

func NewCancelByBarber(appointments domainappt.Store, audit *audit.Dispatcher) *CancelByBarber {
	return &CancelByBarber{appointments: appointments, audit: audit}
}

func (uc *CancelByBarber) Execute(ctx context.Context, appointmentID, barberID string) (domainappt.Appointment, error) {
	ap, err := loadOwned(ctx, uc.appointments, appointmentID, ownedByBarber(barberID))
	if err != nil {
		return domainappt.Appointment{}, err
	}

	next, err := ap.CancelByBarber()
	if err != nil {
		return domainappt.Appointment{}, err
	}

	updated, err := uc.appointments.Update(ctx, next)
	if err != nil {
		return domainappt.Appointment{}, err
	}

	dispatch(uc.audit, identity.RoleBarber, barberID, audit.ActionAppointmentCancelledBarber, updated)
	return updated, nil
}
