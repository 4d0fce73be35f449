package appointment

import (
	"context"

	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

type ListClientAppointments struct {
	appointments domainappt.Store
	clock        timeutil.Clock
}

func NewListClientAppointments(appointments domainappt.Store, clock timeutil.Clock) *ListClientAppointments {
	if clock == nil {
		clock = timeutil.WallClock{}
	}
	return &ListClientAppointments{appointments: appointments, clock: clock}
}

func (uc *ListClientAppointments) Execute(ctx context.Context, clientID string, onlyFuture bool) ([]domainappt.Appointment, error) {
	if clientID == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "client id is required")
	}

	all, err := uc.appointments.FindForClient(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if !onlyFuture {
		return all, nil
	}

	now := uc.clock.Now()
	out := make([]domainappt.Appointment, 0, len(all))
	for _, ap := range all {
		if ap.Start.After(now) {
			out = append(out, ap)
		}
	}
	return out, nil
}
