package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
)

var (
	_ barber.Store              = (*BarberStore)(nil)
	_ barber.WorkingWindowStore = (*WorkingWindowStore)(nil)
)

type BarberStore struct {
	mu   sync.RWMutex
	rows map[string]barber.Barber
}

func NewBarberStore() *BarberStore {
	return &BarberStore{rows: make(map[string]barber.Barber)}
}

func (s *BarberStore) FindByID(_ context.Context, id string) (barber.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.rows[id]
	if !ok {
		return barber.Barber{}, domain.ErrNotFound
	}
	return b, nil
}

func (s *BarberStore) FindByPhone(_ context.Context, phone string) (barber.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, b := range s.rows {
		if b.Phone == phone {
			return b, nil
		}
	}
	return barber.Barber{}, domain.ErrNotFound
}

func (s *BarberStore) ListActive(_ context.Context) ([]barber.Barber, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []barber.Barber{}
	for _, b := range s.rows {
		if b.Active {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *BarberStore) Create(_ context.Context, b barber.Barber) (barber.Barber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.rows {
		if other.Phone == b.Phone {
			return barber.Barber{}, domain.ErrDuplicate
		}
	}
	s.rows[b.ID] = b
	return b, nil
}

func (s *BarberStore) Update(_ context.Context, b barber.Barber) (barber.Barber, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[b.ID]; !ok {
		return barber.Barber{}, domain.ErrNotFound
	}
	for _, other := range s.rows {
		if other.ID != b.ID && other.Phone == b.Phone {
			return barber.Barber{}, domain.ErrDuplicate
		}
	}
	s.rows[b.ID] = b
	return b, nil
}

type WorkingWindowStore struct {
	mu   sync.RWMutex
	rows map[string]barber.WorkingWindow
}

func NewWorkingWindowStore() *WorkingWindowStore {
	return &WorkingWindowStore{rows: make(map[string]barber.WorkingWindow)}
}

func (s *WorkingWindowStore) ListByBarberAndWeekday(_ context.Context, barberID string, weekday int) ([]barber.WorkingWindow, error) {
	return s.filter(func(w barber.WorkingWindow) bool {
		return w.BarberID == barberID && w.Weekday == weekday
	}), nil
}

func (s *WorkingWindowStore) ListByBarber(_ context.Context, barberID string) ([]barber.WorkingWindow, error) {
	return s.filter(func(w barber.WorkingWindow) bool {
		return w.BarberID == barberID
	}), nil
}

func (s *WorkingWindowStore) Create(_ context.Context, w barber.WorkingWindow) (barber.WorkingWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, other := range s.rows {
		if other.BarberID == w.BarberID && other.Weekday == w.Weekday {
			return barber.WorkingWindow{}, domain.ErrDuplicate
		}
	}
	s.rows[w.ID] = w
	return w, nil
}

func (s *WorkingWindowStore) Update(_ context.Context, w barber.WorkingWindow) (barber.WorkingWindow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[w.ID]; !ok {
		return barber.WorkingWindow{}, domain.ErrNotFound
	}
	s.rows[w.ID] = w
	return w, nil
}

func (s *WorkingWindowStore) filter(keep func(barber.WorkingWindow) bool) []barber.WorkingWindow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []barber.WorkingWindow{}
	for _, w := range s.rows {
		if keep(w) {
			out = append(out, w)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Weekday != out[j].Weekday {
			return out[i].Weekday < out[j].Weekday
		}
		return out[i].Start.Before(out[j].Start)
	})
	return out
}
