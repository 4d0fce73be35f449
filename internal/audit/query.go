package audit

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/models"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 200
)

// Filter narrows an audit listing. Zero values mean "no filter".
type Filter struct {
	Action string
	Entity string
	From   time.Time
	To     time.Time

	Page  int
	Limit int
}

func (f Filter) normalized() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxPageLimit {
		f.Limit = DefaultPageLimit
	}
	return f
}

func (f Filter) offset() int { return (f.Page - 1) * f.Limit }

type Page struct {
	Page  int
	Limit int
	Total int64
	Logs  []models.AuditLog
}

// Reader lists recorded events, newest first.
type Reader interface {
	List(ctx context.Context, f Filter) (Page, error)
}

// --------------------------------------------------
// Gorm
// --------------------------------------------------

func (s *GormSink) List(ctx context.Context, f Filter) (Page, error) {
	f = f.normalized()

	q := s.db.WithContext(ctx).Model(&models.AuditLog{})
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if !f.From.IsZero() {
		q = q.Where("created_at >= ?", f.From)
	}
	if !f.To.IsZero() {
		q = q.Where("created_at < ?", f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return Page{}, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.offset()).
		Find(&logs).Error; err != nil {
		return Page{}, err
	}

	return Page{Page: f.Page, Limit: f.Limit, Total: total, Logs: logs}, nil
}

// --------------------------------------------------
// Memory
// --------------------------------------------------

// MemorySink keeps the most recent events in process. Used when no
// database is configured.
type MemorySink struct {
	mu     sync.Mutex
	max    int
	nextID uint
	logs   []models.AuditLog
}

func NewMemorySink(max int) *MemorySink {
	if max <= 0 {
		max = 1000
	}
	return &MemorySink{max: max}
}

func (s *MemorySink) Write(_ context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.logs = append(s.logs, models.AuditLog{
		ID:        s.nextID,
		ActorRole: ev.ActorRole,
		ActorID:   ev.ActorID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  metaJSON,
		CreatedAt: ev.OccurredAt,
	})
	if len(s.logs) > s.max {
		s.logs = s.logs[len(s.logs)-s.max:]
	}
	return nil
}

func (s *MemorySink) List(_ context.Context, f Filter) (Page, error) {
	f = f.normalized()

	s.mu.Lock()
	matched := make([]models.AuditLog, 0, len(s.logs))
	for _, l := range s.logs {
		if f.Action != "" && l.Action != f.Action {
			continue
		}
		if f.Entity != "" && l.Entity != f.Entity {
			continue
		}
		if !f.From.IsZero() && l.CreatedAt.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !l.CreatedAt.Before(f.To) {
			continue
		}
		matched = append(matched, l)
	}
	s.mu.Unlock()

	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].ID > matched[j].ID
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	page := Page{Page: f.Page, Limit: f.Limit, Total: int64(len(matched)), Logs: []models.AuditLog{}}
	start := f.offset()
	if start < len(matched) {
		end := start + f.Limit
		if end > len(matched) {
			end = len(matched)
		}
		page.Logs = matched[start:end]
	}
	return page, nil
}
