package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

// NoShowRegistrar updates the client side of a no-show.
type NoShowRegistrar interface {
	Execute(ctx context.Context, clientID string, limit int) (client.Client, error)
}

type MarkNoShow struct {
	appointments domainappt.Store
	registrar    NoShowRegistrar
	audit        *audit.Dispatcher
}

func NewMarkNoShow(appointments domainappt.Store, registrar NoShowRegistrar, audit *audit.Dispatcher) *MarkNoShow {
	return &MarkNoShow{appointments: appointments, registrar: registrar, audit: audit}
}

// Execute persists the NO_SHOW status first and then bumps the client's
// counter. There is no rollback: a failed client update is reported as
// *ClientCascadeError with the appointment already stored.
func (uc *MarkNoShow) Execute(ctx context.Context, appointmentID, barberID string, limit int) (domainappt.Appointment, error) {
	ap, err := loadOwned(ctx, uc.appointments, appointmentID, ownedByBarber(barberID))
	if err != nil {
		return domainappt.Appointment{}, err
	}

	next, err := ap.MarkNoShow()
	if err != nil {
		return domainappt.Appointment{}, err
	}

	updated, err := uc.appointments.Update(ctx, next)
	if err != nil {
		return domainappt.Appointment{}, err
	}

	dispatch(uc.audit, identity.RoleBarber, barberID, audit.ActionAppointmentNoShow, updated)

	if _, err := uc.registrar.Execute(ctx, updated.ClientID, limit); err != nil {
		return updated, &ClientCascadeError{Appointment: updated, Err: err}
	}
	return updated, nil
}
