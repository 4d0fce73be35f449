package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

func TestAppointmentUsesRFC3339(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ap := domainappt.New("a1", "b1", "c1", "s1", start, 30, domainappt.OriginClient, "")

	got := Appointment(ap)

	assert.Equal(t, "2026-03-10T09:00:00Z", got.Start)
	assert.Equal(t, "2026-03-10T09:30:00Z", got.End)
	assert.Equal(t, "CONFIRMED", got.Status)
	assert.Equal(t, "client", got.Origin)
}

func TestWorkingWindowUsesClockTimes(t *testing.T) {
	w := barber.WorkingWindow{
		ID:       "w1",
		BarberID: "b1",
		Weekday:  2,
		Start:    timeutil.TimeOfDay{Hour: 9},
		End:      timeutil.TimeOfDay{Hour: 18, Minute: 30},
	}

	got := WorkingWindow(w)

	assert.Equal(t, "09:00", got.Start)
	assert.Equal(t, "18:30", got.End)
	assert.Equal(t, 2, got.Weekday)
}

func TestEmptyListsEncodeAsArrays(t *testing.T) {
	assert.NotNil(t, Appointments(nil))
	assert.NotNil(t, Slots(nil))
	assert.NotNil(t, Barbers(nil))
}
