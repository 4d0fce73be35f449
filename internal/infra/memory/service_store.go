package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/catalog"
)

var _ catalog.Store = (*ServiceStore)(nil)

type ServiceStore struct {
	mu   sync.RWMutex
	rows map[string]catalog.Service
}

func NewServiceStore() *ServiceStore {
	return &ServiceStore{rows: make(map[string]catalog.Service)}
}

func (s *ServiceStore) FindByID(_ context.Context, id string) (catalog.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	svc, ok := s.rows[id]
	if !ok {
		return catalog.Service{}, domain.ErrNotFound
	}
	return svc, nil
}

func (s *ServiceStore) ListActive(_ context.Context) ([]catalog.Service, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []catalog.Service{}
	for _, svc := range s.rows {
		if svc.Active {
			out = append(out, svc)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *ServiceStore) Create(_ context.Context, svc catalog.Service) (catalog.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.rows[svc.ID] = svc
	return svc, nil
}

func (s *ServiceStore) Update(_ context.Context, svc catalog.Service) (catalog.Service, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[svc.ID]; !ok {
		return catalog.Service{}, domain.ErrNotFound
	}
	s.rows[svc.ID] = svc
	return svc, nil
}
