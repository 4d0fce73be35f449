package timeutil

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/timezone"
)

// Clock is the source of "now". Use cases read it once per call.
type Clock interface {
	Now() time.Time
}

// SystemClock reports the real instant. Token expiry runs on it.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// WallClock reports the shop's current wall reading pinned to UTC, the
// same frame booking times are stored in. A nil Location means
// timezone.DefaultTimezone.
type WallClock struct {
	Location *time.Location
}

func (c WallClock) Now() time.Time {
	return timezone.NowIn(c.Location)
}

// ClockFunc adapts a function into a Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

// IsAtLeastMinutesFromNow reports whether t >= now + n minutes.
func IsAtLeastMinutesFromNow(t time.Time, n int, now time.Time) bool {
	return !t.Before(AddMinutes(now, n))
}

// IntervalsOverlap uses half-open semantics: touching endpoints do not overlap.
func IntervalsOverlap(startA, endA, startB, endB time.Time) bool {
	return startA.Before(endB) && endA.After(startB)
}

func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// --------------------------------------------------
// Time of day
// --------------------------------------------------

const TimeOfDayLayout = "15:04"

// TimeOfDay is a wall-clock hour/minute with no date attached.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("parse time of day %q: %w", s, err)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.Minutes() < o.Minutes()
}

// On aligns the time of day onto the calendar day of date.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour, t.Minute, 0, 0,
		date.Location(),
	)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
