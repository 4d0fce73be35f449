package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

func TestListAvailableSlots(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewListAvailableSlots(f.stores.Appointments, f.stores.Services, f.stores.WorkingWindows, f.clock, DefaultMinLeadTimeMinutes)

	slots, err := uc.Execute(ctx, "b1", "s1", tuesday, intPtr(0))
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(9, 30), slots[1].Start)

	seedAppointment(t, f, "c1")
	slots, err = uc.Execute(ctx, "b1", "s1", tuesday, nil)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, domainappt.Slot{Start: at(9, 30), End: at(10, 0)}, slots[0])
}

func TestListAvailableSlots_LeadTimeFromClock(t *testing.T) {
	f := newFixture(t)
	uc := NewListAvailableSlots(f.stores.Appointments, f.stores.Services, f.stores.WorkingWindows,
		timeutil.Fixed(at(8, 30)), DefaultMinLeadTimeMinutes)

	slots, err := uc.Execute(context.Background(), "b1", "s1", tuesday, nil)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, at(9, 30), slots[0].Start)
}

func TestListAvailableSlots_NoWindowsOrInactiveService(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	uc := NewListAvailableSlots(f.stores.Appointments, f.stores.Services, f.stores.WorkingWindows, f.clock, 0)

	wednesday := tuesday.AddDate(0, 0, 1)
	slots, err := uc.Execute(ctx, "b1", "s1", wednesday, nil)
	require.NoError(t, err)
	assert.NotNil(t, slots)
	assert.Empty(t, slots)

	_, err = uc.Execute(ctx, "b1", "old", tuesday, nil)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))

	_, err = uc.Execute(ctx, "b1", "ghost", tuesday, nil)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeServiceNotFound))
}

func TestListDayAgenda(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	late := domainappt.New("late", "b1", "c2", "s1", at(15, 0), 30, domainappt.OriginBarber, "")
	early := domainappt.New("early", "b1", "c1", "s1", at(9, 0), 30, domainappt.OriginClient, "")
	orphan := domainappt.New("orphan", "b1", "ghost", "ghost", at(12, 0), 30, domainappt.OriginBarber, "")
	other := domainappt.New("other", "b2", "c1", "s1", at(9, 0), 30, domainappt.OriginClient, "")
	for _, ap := range []domainappt.Appointment{late, early, orphan, other} {
		_, err := f.stores.Appointments.Create(ctx, ap)
		require.NoError(t, err)
	}

	agenda, err := NewListDayAgenda(f.stores.Appointments, f.stores.Clients, f.stores.Services).Execute(ctx, "b1", tuesday)
	require.NoError(t, err)
	require.Len(t, agenda, 3)

	assert.Equal(t, "early", agenda[0].Appointment.ID)
	assert.Equal(t, "Ana", agenda[0].ClientName)
	assert.Equal(t, "111", agenda[0].ClientPhone)
	assert.Equal(t, "Corte", agenda[0].ServiceName)
	assert.Equal(t, 30, agenda[0].ServiceDurationMinutes)

	assert.Equal(t, "orphan", agenda[1].Appointment.ID)
	assert.Empty(t, agenda[1].ClientName)
	assert.Empty(t, agenda[1].ServiceName)

	assert.Equal(t, "late", agenda[2].Appointment.ID)
}

func TestListClientAppointments(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	past := domainappt.New("past", "b1", "c1", "s1", now.Add(-24*time.Hour), 30, domainappt.OriginClient, "")
	future := domainappt.New("future", "b1", "c1", "s1", now.Add(24*time.Hour), 30, domainappt.OriginClient, "")
	atNow := domainappt.New("now", "b2", "c1", "s1", now, 30, domainappt.OriginClient, "")
	for _, ap := range []domainappt.Appointment{past, future, atNow} {
		_, err := f.stores.Appointments.Create(ctx, ap)
		require.NoError(t, err)
	}

	uc := NewListClientAppointments(f.stores.Appointments, f.clock)

	all, err := uc.Execute(ctx, "c1", false)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	upcoming, err := uc.Execute(ctx, "c1", true)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "future", upcoming[0].ID)

	_, err = uc.Execute(ctx, "", true)
	assert.True(t, httperr.IsBusiness(err, httperr.CodeInvalidInput))
}
