package appointment

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

// Appointment is an immutable booking value. Transition methods return a
// new value and never modify the receiver.
type Appointment struct {
	ID        string
	BarberID  string
	ClientID  string
	ServiceID string
	Start     time.Time
	End       time.Time
	Status    Status
	Origin    Origin
	Note      string
}

// New builds a confirmed appointment whose end is start plus durationMinutes.
func New(id, barberID, clientID, serviceID string, start time.Time, durationMinutes int, origin Origin, note string) Appointment {
	return Appointment{
		ID:        id,
		BarberID:  barberID,
		ClientID:  clientID,
		ServiceID: serviceID,
		Start:     start,
		End:       timeutil.AddMinutes(start, durationMinutes),
		Status:    StatusConfirmed,
		Origin:    origin,
		Note:      note,
	}
}

// ===============================
// Domain Actions
// ===============================

func (a Appointment) Conclude() (Appointment, error) {
	return a.transition(StatusConcluded)
}

func (a Appointment) CancelByClient() (Appointment, error) {
	return a.transition(StatusCancelledByClient)
}

func (a Appointment) CancelByBarber() (Appointment, error) {
	return a.transition(StatusCancelledByBarber)
}

func (a Appointment) MarkNoShow() (Appointment, error) {
	return a.transition(StatusNoShow)
}

func (a Appointment) transition(to Status) (Appointment, error) {
	if err := requireConfirmed(a.Status); err != nil {
		return a, err
	}
	a.Status = to
	return a, nil
}

func (a Appointment) IsCancelled() bool {
	return a.Status == StatusCancelledByClient || a.Status == StatusCancelledByBarber
}

func (a Appointment) Overlaps(start, end time.Time) bool {
	return timeutil.IntervalsOverlap(a.Start, a.End, start, end)
}
