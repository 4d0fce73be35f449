package appointment

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/domain/barber"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

type Slot struct {
	Start time.Time
	End   time.Time
}

type SlotInput struct {
	Windows            []barber.WorkingWindow
	DurationMinutes    int
	Appointments       []Appointment
	Date               time.Time
	MinLeadTimeMinutes int
	Now                time.Time
}

// CalculateSlots walks every window in steps of the service duration and
// returns the candidates that fit the window, respect the lead time and do
// not overlap a confirmed appointment. Output is ascending by start.
func CalculateSlots(in SlotInput) []Slot {
	slots := []Slot{}
	if in.DurationMinutes <= 0 {
		return slots
	}

	leadLimit := timeutil.AddMinutes(in.Now, in.MinLeadTimeMinutes)

	busy := make([]Appointment, 0, len(in.Appointments))
	for _, ap := range in.Appointments {
		if ap.Status == StatusConfirmed {
			busy = append(busy, ap)
		}
	}

	for _, w := range in.Windows {
		windowStart := w.Start.On(in.Date)
		windowEnd := w.End.On(in.Date)

		for cursor := windowStart; ; cursor = timeutil.AddMinutes(cursor, in.DurationMinutes) {
			end := timeutil.AddMinutes(cursor, in.DurationMinutes)
			if end.After(windowEnd) {
				break
			}
			if cursor.Before(leadLimit) {
				continue
			}
			if overlapsAny(busy, cursor, end) {
				continue
			}
			slots = append(slots, Slot{Start: cursor, End: end})
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})
	return slots
}

func overlapsAny(busy []Appointment, start, end time.Time) bool {
	for _, ap := range busy {
		if ap.Overlaps(start, end) {
			return true
		}
	}
	return false
}
