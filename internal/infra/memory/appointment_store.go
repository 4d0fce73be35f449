package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

var _ appointment.Store = (*AppointmentStore)(nil)

type AppointmentStore struct {
	mu   sync.RWMutex
	rows map[string]appointment.Appointment
}

func NewAppointmentStore() *AppointmentStore {
	return &AppointmentStore{rows: make(map[string]appointment.Appointment)}
}

func (s *AppointmentStore) Create(_ context.Context, ap appointment.Appointment) (appointment.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[ap.ID]; ok {
		return appointment.Appointment{}, domain.ErrDuplicate
	}
	s.rows[ap.ID] = ap
	return ap, nil
}

func (s *AppointmentStore) Update(_ context.Context, ap appointment.Appointment) (appointment.Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[ap.ID]; !ok {
		return appointment.Appointment{}, domain.ErrNotFound
	}
	s.rows[ap.ID] = ap
	return ap, nil
}

func (s *AppointmentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.rows, id)
	return nil
}

func (s *AppointmentStore) FindByID(_ context.Context, id string) (appointment.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ap, ok := s.rows[id]
	if !ok {
		return appointment.Appointment{}, domain.ErrNotFound
	}
	return ap, nil
}

func (s *AppointmentStore) FindForBarberOnDate(_ context.Context, barberID string, date time.Time) ([]appointment.Appointment, error) {
	return s.filter(func(ap appointment.Appointment) bool {
		return ap.BarberID == barberID && timeutil.SameDay(ap.Start, date)
	}), nil
}

func (s *AppointmentStore) FindOverlapping(_ context.Context, barberID string, start, end time.Time) ([]appointment.Appointment, error) {
	return s.filter(func(ap appointment.Appointment) bool {
		return ap.BarberID == barberID &&
			ap.Status == appointment.StatusConfirmed &&
			ap.Overlaps(start, end)
	}), nil
}

func (s *AppointmentStore) FindForClient(_ context.Context, clientID string) ([]appointment.Appointment, error) {
	return s.filter(func(ap appointment.Appointment) bool {
		return ap.ClientID == clientID
	}), nil
}

func (s *AppointmentStore) filter(keep func(appointment.Appointment) bool) []appointment.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []appointment.Appointment{}
	for _, ap := range s.rows {
		if keep(ap) {
			out = append(out, ap)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start.Equal(out[j].Start) {
			return out[i].ID < out[j].ID
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
