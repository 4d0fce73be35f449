package appointment

import (
	"context"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

// PurgeAppointment deletes a cancelled appointment.
type PurgeAppointment struct {
	appointments domainappt.Store
	audit        *audit.Dispatcher
}

func NewPurgeAppointment(appointments domainappt.Store, audit *audit.Dispatcher) *PurgeAppointment {
	return &PurgeAppointment{appointments: appointments, audit: audit}
}

func (uc *PurgeAppointment) Execute(ctx context.Context, appointmentID, barberID string) error {
	ap, err := loadOwned(ctx, uc.appointments, appointmentID, ownedByBarber(barberID))
	if err != nil {
		return err
	}

	if !ap.IsCancelled() {
		return httperr.ErrBusiness(httperr.CodeAppointmentNotCancelled, "only cancelled appointments can be deleted")
	}

	if err := uc.appointments.Delete(ctx, ap.ID); err != nil {
		return err
	}

	dispatch(uc.audit, identity.RoleBarber, barberID, audit.ActionAppointmentPurged, ap)
	return nil
}
