package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain"
	"github.com/BruksfildServices01/barbershop-booking/internal/domain/client"
)

var _ client.Store = (*ClientStore)(nil)

type ClientStore struct {
	mu   sync.RWMutex
	rows map[string]client.Client
}

func NewClientStore() *ClientStore {
	return &ClientStore{rows: make(map[string]client.Client)}
}

func (s *ClientStore) FindByID(_ context.Context, id string) (client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.rows[id]
	if !ok {
		return client.Client{}, domain.ErrNotFound
	}
	return c, nil
}

func (s *ClientStore) FindByPhone(_ context.Context, phone string) (client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.rows {
		if c.Phone == phone {
			return c, nil
		}
	}
	return client.Client{}, domain.ErrNotFound
}

func (s *ClientStore) Create(_ context.Context, c client.Client) (client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.phoneTaken(c.ID, c.Phone) {
		return client.Client{}, domain.ErrDuplicate
	}
	s.rows[c.ID] = c
	return c, nil
}

func (s *ClientStore) Update(_ context.Context, c client.Client) (client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rows[c.ID]; !ok {
		return client.Client{}, domain.ErrNotFound
	}
	if s.phoneTaken(c.ID, c.Phone) {
		return client.Client{}, domain.ErrDuplicate
	}
	s.rows[c.ID] = c
	return c, nil
}

func (s *ClientStore) RecordNoShow(_ context.Context, id string, limit int) (client.Client, client.Client, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	before, ok := s.rows[id]
	if !ok {
		return client.Client{}, client.Client{}, domain.ErrNotFound
	}
	after := before.WithNoShow(limit)
	s.rows[id] = after
	return before, after, nil
}

func (s *ClientStore) List(_ context.Context) ([]client.Client, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]client.Client, 0, len(s.rows))
	for _, c := range s.rows {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *ClientStore) phoneTaken(id, phone string) bool {
	for _, other := range s.rows {
		if other.ID != id && other.Phone == phone {
			return true
		}
	}
	return false
}
