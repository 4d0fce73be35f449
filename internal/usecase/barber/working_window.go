package barber

import (
	"context"

	"github.com/google/uuid"

	domainbarber "github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

// ConfigureWorkingWindow sets the barber's hours for one weekday,
// replacing whatever was configured for that day.
type ConfigureWorkingWindow struct {
	barbers domainbarber.Store
	windows domainbarber.WorkingWindowStore
}

func NewConfigureWorkingWindow(barbers domainbarber.Store, windows domainbarber.WorkingWindowStore) *ConfigureWorkingWindow {
	return &ConfigureWorkingWindow{barbers: barbers, windows: windows}
}

func (uc *ConfigureWorkingWindow) Execute(
	ctx context.Context,
	barberID string,
	weekday int,
	start, end timeutil.TimeOfDay,
) (domainbarber.WorkingWindow, error) {

	if !domainbarber.ValidWeekday(weekday) {
		return domainbarber.WorkingWindow{}, httperr.ErrBusiness(httperr.CodeInvalidInput, "weekday must be between 0 and 6")
	}
	if !start.Before(end) {
		return domainbarber.WorkingWindow{}, httperr.ErrBusiness(httperr.CodeInvalidTimeRange, "start must be before end")
	}

	if _, err := uc.barbers.FindByID(ctx, barberID); err != nil {
		return domainbarber.WorkingWindow{}, notFound(err)
	}

	existing, err := uc.windows.ListByBarberAndWeekday(ctx, barberID, weekday)
	if err != nil {
		return domainbarber.WorkingWindow{}, err
	}

	if len(existing) > 0 {
		w := existing[0]
		w.Start, w.End = start, end
		return uc.windows.Update(ctx, w)
	}

	return uc.windows.Create(ctx, domainbarber.WorkingWindow{
		ID:       uuid.NewString(),
		BarberID: barberID,
		Weekday:  weekday,
		Start:    start,
		End:      end,
	})
}

type ListWorkingWindows struct {
	windows domainbarber.WorkingWindowStore
}

func NewListWorkingWindows(windows domainbarber.WorkingWindowStore) *ListWorkingWindows {
	return &ListWorkingWindows{windows: windows}
}

// Execute lists every window of the barber, or only one day when weekday is set.
func (uc *ListWorkingWindows) Execute(ctx context.Context, barberID string, weekday *int) ([]domainbarber.WorkingWindow, error) {
	if weekday == nil {
		return uc.windows.ListByBarber(ctx, barberID)
	}
	if !domainbarber.ValidWeekday(*weekday) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "weekday must be between 0 and 6")
	}
	return uc.windows.ListByBarberAndWeekday(ctx, barberID, *weekday)
}
