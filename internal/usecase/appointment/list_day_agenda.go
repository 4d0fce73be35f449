package appointment

import (
	"context"
	"sort"
	"time"

	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
)

// AgendaEntry is an appointment enriched for the barber's day view. The
// client and service fields stay empty when the reference cannot be loaded.
type AgendaEntry struct {
	Appointment domainappt.Appointment

	ClientName             string
	ClientPhone            string
	ServiceName            string
	ServiceDurationMinutes int
}

type ListDayAgenda struct {
	appointments domainappt.Store
	clients      client.Store
	services     catalog.Store
}

func NewListDayAgenda(
	appointments domainappt.Store,
	clients client.Store,
	services catalog.Store,
) *ListDayAgenda {
	return &ListDayAgenda{
		appointments: appointments,
		clients:      clients,
		services:     services,
	}
}

func (uc *ListDayAgenda) Execute(ctx context.Context, barberID string, date time.Time) ([]AgendaEntry, error) {
	if barberID == "" {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidInput, "barber id is required")
	}

	appointments, err := uc.appointments.FindForBarberOnDate(ctx, barberID, date)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(appointments, func(i, j int) bool {
		return appointments[i].Start.Before(appointments[j].Start)
	})

	out := make([]AgendaEntry, 0, len(appointments))
	for _, ap := range appointments {
		entry := AgendaEntry{Appointment: ap}

		if c, err := uc.clients.FindByID(ctx, ap.ClientID); err == nil {
			entry.ClientName = c.Name
			entry.ClientPhone = c.Phone
		}
		if svc, err := uc.services.FindByID(ctx, ap.ServiceID); err == nil {
			entry.ServiceName = svc.Name
			entry.ServiceDurationMinutes = svc.DurationMinutes
		}

		out = append(out, entry)
	}

	return out, nil
}
