package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/catalog"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

// 2026-03-10 is a Tuesday.
var (
	tuesday = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	now     = time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)

	barberActor = identity.Actor{Role: identity.RoleBarber, ID: "b1"}
	clientActor = identity.Actor{Role: identity.RoleClient, ID: "c1"}
)

func at(h, m int) time.Time {
	return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC)
}

func intPtr(n int) *int { return &n }

type fixture struct {
	stores *memory.Stores
	clock  timeutil.Clock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStores()

	for _, c := range []client.Client{
		{ID: "c1", Name: "Ana", Phone: "111"},
		{ID: "c2", Name: "Bia", Phone: "222"},
		{ID: "blocked", Name: "Caio", Phone: "333", NoShows: 3, Blocked: true},
	} {
		_, err := s.Clients.Create(ctx, c)
		require.NoError(t, err)
	}

	for _, b := range []barber.Barber{
		{ID: "b1", Name: "Zé", Phone: "900", Active: true},
		{ID: "b2", Name: "Rui", Phone: "901", Active: true},
		{ID: "inactive", Name: "Off", Phone: "902", Active: false},
	} {
		_, err := s.Barbers.Create(ctx, b)
		require.NoError(t, err)
	}

	for _, svc := range []catalog.Service{
		{ID: "s1", Name: "Corte", DurationMinutes: 30, Price: 40, Active: true},
		{ID: "old", Name: "Navalha", DurationMinutes: 45, Price: 50, Active: false},
	} {
		_, err := s.Services.Create(ctx, svc)
		require.NoError(t, err)
	}

	start, _ := timeutil.ParseTimeOfDay("09:00")
	end, _ := timeutil.ParseTimeOfDay("10:00")
	_, err := s.WorkingWindows.Create(ctx, barber.WorkingWindow{
		ID: "w1", BarberID: "b1", Weekday: int(time.Tuesday), Start: start, End: end,
	})
	require.NoError(t, err)

	return &fixture{stores: s, clock: timeutil.Fixed(now)}
}

func (f *fixture) create(locker lock.Locker) *CreateAppointment {
	return NewCreateAppointment(
		f.stores.Appointments,
		f.stores.Clients,
		f.stores.Barbers,
		f.stores.Services,
		locker,
		f.clock,
		nil,
		DefaultMinLeadTimeMinutes,
	)
}

func input(clientID string, start time.Time) CreateAppointmentInput {
	return CreateAppointmentInput{
		ClientID:  clientID,
		BarberID:  "b1",
		ServiceID: "s1",
		Start:     start,
		Origin:    "client",
	}
}
