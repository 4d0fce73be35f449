package audit

import "context"

type EventCounter interface {
	Event(action string)
}

// CounterSink counts events per action.
type CounterSink struct {
	counter EventCounter
}

func NewCounterSink(counter EventCounter) *CounterSink {
	return &CounterSink{counter: counter}
}

func (s *CounterSink) Write(_ context.Context, ev Event) error {
	s.counter.Event(ev.Action)
	return nil
}
