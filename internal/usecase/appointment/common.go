package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
)

// DefaultMinLeadTimeMinutes applies when a caller does not set a lead time.
const DefaultMinLeadTimeMinutes = 60

// ClientCascadeError reports that an appointment was marked NO_SHOW but the
// client's counter could not be updated. The appointment change is kept.
type ClientCascadeError struct {
	Appointment domainappt.Appointment
	Err         error
}

func (e *ClientCascadeError) Error() string {
	return fmt.Sprintf("appointment %s marked no-show, client update failed: %v", e.Appointment.ID, e.Err)
}

func (e *ClientCascadeError) Unwrap() error {
	return e.Err
}

// loadOwned fetches an appointment and checks that owns accepts it.
func loadOwned(
	ctx context.Context,
	store domainappt.Store,
	appointmentID string,
	owns func(domainappt.Appointment) bool,
) (domainappt.Appointment, error) {
	if appointmentID == "" {
		return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "appointment id is required")
	}

	ap, err := store.FindByID(ctx, appointmentID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeAppointmentNotFound, "appointment not found")
		}
		return domainappt.Appointment{}, err
	}

	if !owns(ap) {
		return domainappt.Appointment{}, httperr.ErrBusiness(httperr.CodeForbidden, "appointment belongs to someone else")
	}
	return ap, nil
}

func ownedByBarber(barberID string) func(domainappt.Appointment) bool {
	return func(ap domainappt.Appointment) bool { return ap.BarberID == barberID }
}

func ownedByClient(clientID string) func(domainappt.Appointment) bool {
	return func(ap domainappt.Appointment) bool { return ap.ClientID == clientID }
}

func dispatch(d *audit.Dispatcher, role identity.Role, actorID, action string, ap domainappt.Appointment) {
	d.Dispatch(audit.Event{
		ActorRole: string(role),
		ActorID:   actorID,
		Action:    action,
		Entity:    "appointment",
		EntityID:  ap.ID,
		Metadata: map[string]string{
			"barber_id": ap.BarberID,
			"client_id": ap.ClientID,
			"status":    string(ap.Status),
		},
	})
}
