package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound), domain.ErrNotFound)
	assert.ErrorIs(t, translate(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})), domain.ErrDuplicate)
	assert.ErrorIs(t, translate(&pgconn.PgError{Code: "23P01"}), domain.ErrOverlap)

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other))
}

func TestMustAffect(t *testing.T) {
	assert.ErrorIs(t, mustAffect(&gorm.DB{RowsAffected: 0}), domain.ErrNotFound)
	assert.NoError(t, mustAffect(&gorm.DB{RowsAffected: 1}))
	assert.ErrorIs(t, mustAffect(&gorm.DB{Error: gorm.ErrRecordNotFound}), domain.ErrNotFound)
}

func TestAppointmentMapping(t *testing.T) {
	start := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	ap := appointment.New("a1", "b1", "c1", "s1", start, 45, appointment.OriginBarber, "fade")

	row := appointmentToModel(ap)
	assert.Equal(t, "CONFIRMED", row.Status)
	assert.Equal(t, "barber", row.Origin)
	assert.Equal(t, start.Add(45*time.Minute), row.EndTime)

	assert.Equal(t, ap, appointmentFromModel(row))
}

func TestClientMapping(t *testing.T) {
	c := client.Client{ID: "c1", Name: "Ana", Phone: "1", NoShows: 2, Blocked: true}
	assert.Equal(t, c, clientFromModel(clientToModel(c)))
}

func TestWindowMapping(t *testing.T) {
	start, _ := timeutil.ParseTimeOfDay("08:30")
	end, _ := timeutil.ParseTimeOfDay("17:00")
	w := barber.WorkingWindow{ID: "w1", BarberID: "b1", Weekday: 5, Start: start, End: end}

	row := windowToModel(w)
	assert.Equal(t, "08:30", row.StartTime)
	assert.Equal(t, "17:00", row.EndTime)

	back, err := windowFromModel(row)
	require.NoError(t, err)
	assert.Equal(t, w, back)

	_, err = windowFromModel(models.WorkingHours{StartTime: "8h", EndTime: "17:00"})
	assert.Error(t, err)
}
