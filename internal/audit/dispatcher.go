package audit

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Actions emitted by the scheduling use cases.
const (
	ActionAppointmentCreated         = "appointment_created"
	ActionAppointmentCancelledClient = "appointment_cancelled_by_client"
	ActionAppointmentCancelledBarber = "appointment_cancelled_by_barber"
	ActionAppointmentConcluded       = "appointment_concluded"
	ActionAppointmentNoShow          = "appointment_no_show"
	ActionAppointmentPurged          = "appointment_purged"
	ActionClientBlocked              = "client_blocked"
	ActionClientUnblocked            = "client_unblocked"
)

type Event struct {
	ActorRole  string
	ActorID    string
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
	OccurredAt time.Time
}

// Sink receives every dispatched event on the worker goroutine.
type Sink interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	logger *slog.Logger
	sinks  []Sink
	queue  chan Event
	done   chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(logger *slog.Logger, sinks ...Sink) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	d := &Dispatcher{
		logger: logger,
		sinks:  sinks,
		queue:  make(chan Event, 100),
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		for _, s := range d.sinks {
			if err := s.Write(context.Background(), ev); err != nil {
				d.logger.Error("audit sink failed",
					"action", ev.Action,
					"entity_id", ev.EntityID,
					"error", err,
				)
			}
		}
	}
}

// Dispatch never blocks the request path: a full queue drops the event.
// A nil dispatcher is a no-op.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close stops accepting events and waits until the queue is drained or ctx ends.
func (d *Dispatcher) Close(ctx context.Context) error {
	if d == nil {
		return nil
	}
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
