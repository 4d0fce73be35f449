package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
)

func TestAppointmentStoreQueries(t *testing.T) {
	ctx := context.Background()
	s := NewAppointmentStore()
	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	at := func(h, m int) time.Time { return time.Date(2026, 3, 10, h, m, 0, 0, time.UTC) }

	a1 := appointment.New("a1", "b1", "c1", "s1", at(10, 0), 30, appointment.OriginClient, "")
	a2 := appointment.New("a2", "b1", "c2", "s1", at(9, 0), 30, appointment.OriginClient, "")
	a3 := appointment.New("a3", "b2", "c1", "s1", at(9, 0), 30, appointment.OriginBarber, "")
	next := appointment.New("a4", "b1", "c1", "s1", at(9, 0).AddDate(0, 0, 1), 30, appointment.OriginClient, "")
	for _, ap := range []appointment.Appointment{a1, a2, a3, next} {
		_, err := s.Create(ctx, ap)
		require.NoError(t, err)
	}

	onDate, err := s.FindForBarberOnDate(ctx, "b1", day)
	require.NoError(t, err)
	require.Len(t, onDate, 2)
	assert.Equal(t, "a2", onDate[0].ID)
	assert.Equal(t, "a1", onDate[1].ID)

	cancelled, err := a2.CancelByBarber()
	require.NoError(t, err)
	_, err = s.Update(ctx, cancelled)
	require.NoError(t, err)

	overlapping, err := s.FindOverlapping(ctx, "b1", at(9, 0), at(10, 15))
	require.NoError(t, err)
	require.Len(t, overlapping, 1)
	assert.Equal(t, "a1", overlapping[0].ID)

	forClient, err := s.FindForClient(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, forClient, 3)

	require.NoError(t, s.Delete(ctx, "a1"))
	_, err = s.FindByID(ctx, "a1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "a1"), domain.ErrNotFound)
}

func TestClientStorePhoneUnique(t *testing.T) {
	ctx := context.Background()
	s := NewClientStore()

	_, err := s.Create(ctx, client.Client{ID: "c1", Name: "Ana", Phone: "111"})
	require.NoError(t, err)
	_, err = s.Create(ctx, client.Client{ID: "c2", Name: "Bia", Phone: "111"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	found, err := s.FindByPhone(ctx, "111")
	require.NoError(t, err)
	assert.Equal(t, "c1", found.ID)

	_, err = s.Update(ctx, client.Client{ID: "missing"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWorkingWindowStoreOnePerWeekday(t *testing.T) {
	ctx := context.Background()
	s := NewWorkingWindowStore()

	_, err := s.Create(ctx, barber.WorkingWindow{ID: "w1", BarberID: "b1", Weekday: 2})
	require.NoError(t, err)
	_, err = s.Create(ctx, barber.WorkingWindow{ID: "w2", BarberID: "b1", Weekday: 2})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := s.ListByBarberAndWeekday(ctx, "b1", 2)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	none, err := s.ListByBarberAndWeekday(ctx, "b1", 3)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestBarberStoreListActive(t *testing.T) {
	ctx := context.Background()
	s := NewBarberStore()

	_, err := s.Create(ctx, barber.Barber{ID: "b1", Name: "Zé", Phone: "1", Active: true})
	require.NoError(t, err)
	_, err = s.Create(ctx, barber.Barber{ID: "b2", Name: "Ana", Phone: "2", Active: false})
	require.NoError(t, err)

	active, err := s.ListActive(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "b1", active[0].ID)
}

func TestClientStoreRecordNoShow(t *testing.T) {
	ctx := context.Background()
	s := NewClientStore()
	_, err := s.Create(ctx, client.Client{ID: "c1", Phone: "1", NoShows: 1})
	require.NoError(t, err)

	before, after, err := s.RecordNoShow(ctx, "c1", 2)
	require.NoError(t, err)
	assert.Equal(t, 1, before.NoShows)
	assert.False(t, before.Blocked)
	assert.Equal(t, 2, after.NoShows)
	assert.True(t, after.Blocked)

	stored, err := s.FindByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, after, stored)

	_, _, err = s.RecordNoShow(ctx, "ghost", 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
