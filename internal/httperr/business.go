package httperr

import "errors"

// Business error codes. Stable, machine-readable, sent to clients as error_code.
const (
	CodeClientNotFound             = "client_not_found"
	CodeClientBlocked              = "client_blocked"
	CodeClientAlreadyExists        = "client_already_exists"
	CodeBarberNotFound             = "barber_not_found"
	CodeServiceNotFound            = "service_not_found"
	CodeInvalidLeadTime            = "invalid_lead_time"
	CodeClientAlreadyBookedThatDay = "client_already_booked_that_day"
	CodeConflict                   = "conflict"
	CodeAppointmentNotFound        = "appointment_not_found"
	CodeForbidden                  = "forbidden"
	CodeInvalidStatus              = "invalid_status"
	CodeAppointmentNotCancelled    = "appointment_not_cancelled"
	CodeInvalidInput               = "invalid_input"
	CodeInvalidTimeRange           = "invalid_time_range"
	CodeInvalidCredentials         = "invalid_credentials"
	CodeInvalidImage               = "invalid_image"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

func ErrBusiness(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness extracts the business error from err's chain.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}
