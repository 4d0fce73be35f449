package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

type ListAvailableSlots struct {
	appointments domainappt.Store
	services     catalog.Store
	windows      barber.WorkingWindowStore
	clock        timeutil.Clock

	defaultLead int
}

func NewListAvailableSlots(
	appointments domainappt.Store,
	services catalog.Store,
	windows barber.WorkingWindowStore,
	clock timeutil.Clock,
	defaultLeadMinutes int,
) *ListAvailableSlots {
	if clock == nil {
		clock = timeutil.WallClock{}
	}
	return &ListAvailableSlots{
		appointments: appointments,
		services:     services,
		windows:      windows,
		clock:        clock,
		defaultLead:  defaultLeadMinutes,
	}
}

func (uc *ListAvailableSlots) Execute(
	ctx context.Context,
	barberID string,
	serviceID string,
	date time.Time,
	minLeadTimeMinutes *int,
) ([]domainappt.Slot, error) {

	if barberID == "" || serviceID == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "barber and service are required")
	}

	svc, err := uc.services.FindByID(ctx, serviceID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if err != nil || !svc.Active {
		return nil, httperr.ErrBusiness(httperr.CodeServiceNotFound, "service not found or inactive")
	}

	windows, err := uc.windows.ListByBarberAndWeekday(ctx, barberID, int(date.Weekday()))
	if err != nil {
		return nil, err
	}
	if len(windows) == 0 {
		return []domainappt.Slot{}, nil
	}

	appointments, err := uc.appointments.FindForBarberOnDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	lead := uc.defaultLead
	if minLeadTimeMinutes != nil {
		lead = *minLeadTimeMinutes
	}

	return domainappt.CalculateSlots(domainappt.SlotInput{
		Windows:            windows,
		DurationMinutes:    svc.DurationMinutes,
		Appointments:       appointments,
		Date:               date,
		MinLeadTimeMinutes: lead,
		Now:                uc.clock.Now(),
	}), nil
}
