package timezone

import (
	"time"
	_ "time/tzdata"
)

const DefaultTimezone = "America/Sao_Paulo"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

// Location resolves tz, falling back to DefaultTimezone and then UTC.
func Location(tz string) *time.Location {
	if loc, err := time.LoadLocation(tz); err == nil && tz != "" {
		return loc
	}
	if loc, err := time.LoadLocation(DefaultTimezone); err == nil {
		return loc
	}
	return time.UTC
}

// Wall keeps the clock reading of t in loc and drops the zone, so the
// result compares directly with naive booking times.
func Wall(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = Location(DefaultTimezone)
	}
	n := t.In(loc)
	return time.Date(n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second(), n.Nanosecond(), time.UTC)
}

func NowIn(loc *time.Location) time.Time {
	return Wall(time.Now(), loc)
}
