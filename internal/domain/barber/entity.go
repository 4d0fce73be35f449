package barber

import (
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

type Barber struct {
	ID           string
	Name         string
	Phone        string
	Active       bool
	PhotoURL     string
	PasswordHash string
}

// WorkingWindow is a barber's recurring availability on one weekday.
type WorkingWindow struct {
	ID       string
	BarberID string
	Weekday  int // 0 = Sunday
	Start    timeutil.TimeOfDay
	End      timeutil.TimeOfDay
}

func ValidWeekday(d int) bool {
	return d >= int(time.Sunday) && d <= int(time.Saturday)
}
