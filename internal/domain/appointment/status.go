package appointment

import "github.com/BruksfildServices01/barbershop-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed         Status = "CONFIRMED"
	StatusConcluded         Status = "CONCLUDED"
	StatusCancelledByClient Status = "CANCELLED_BY_CLIENT"
	StatusCancelledByBarber Status = "CANCELLED_BY_BARBER"
	StatusNoShow            Status = "NO_SHOW"
)

func (s Status) Valid() bool {
	switch s {
	case StatusConfirmed, StatusConcluded, StatusCancelledByClient, StatusCancelledByBarber, StatusNoShow:
		return true
	}
	return false
}

// CountsForDailyLimit reports whether an appointment in this status uses up
// the client's one booking for the day. Cancelled bookings free the day.
func (s Status) CountsForDailyLimit() bool {
	return s == StatusConfirmed || s == StatusConcluded || s == StatusNoShow
}

// ===============================
// Origin
// ===============================

type Origin string

const (
	OriginClient Origin = "client"
	OriginBarber Origin = "barber"
)

func (o Origin) Valid() bool {
	return o == OriginClient || o == OriginBarber
}

// ===============================
// Validations
// ===============================

func requireConfirmed(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidStatus, "appointment is "+string(current))
	}
	return nil
}
