package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemorySinkList(t *testing.T) {
	ctx := context.Background()
	s := NewMemorySink(3)
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for i, action := range []string{ActionAppointmentCreated, ActionAppointmentConcluded, ActionAppointmentCreated, ActionClientBlocked} {
		require.NoError(t, s.Write(ctx, Event{
			Action:     action,
			Entity:     "appointment",
			EntityID:   "a1",
			Metadata:   map[string]int{"n": i},
			OccurredAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	all, err := s.List(ctx, Filter{})
	require.NoError(t, err)
	assert.EqualValues(t, 3, all.Total, "oldest event evicted")
	require.Len(t, all.Logs, 3)
	assert.Equal(t, ActionClientBlocked, all.Logs[0].Action, "newest first")
	assert.JSONEq(t, `{"n":3}`, all.Logs[0].Metadata)

	created, err := s.List(ctx, Filter{Action: ActionAppointmentCreated})
	require.NoError(t, err)
	assert.EqualValues(t, 1, created.Total)

	paged, err := s.List(ctx, Filter{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, paged.Logs, 1)
	assert.Equal(t, DefaultPageLimit, Filter{Limit: 500}.normalized().Limit)

	window, err := s.List(ctx, Filter{From: base.Add(2 * time.Minute), To: base.Add(3 * time.Minute)})
	require.NoError(t, err)
	require.Len(t, window.Logs, 1)
	assert.Equal(t, ActionAppointmentCreated, window.Logs[0].Action)
}
