package handlers

import (
	"errors"
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	ucappt "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

const (
	CodeInternal               = "internal_error"
	CodeInvalidRequest         = "invalid_request"
	CodeNoShowClientUpdateFail = "no_show_client_update_failed"
)

// respondError maps a use case error onto the response. The cascade error
// is checked first because it wraps an arbitrary cause.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var cascade *ucappt.ClientCascadeError
	if errors.As(err, &cascade) {
		logger.Error("no-show client update failed",
			"appointment_id", cascade.Appointment.ID,
			"client_id", cascade.Appointment.ClientID,
			"error", cascade.Err,
		)
		httperr.Internal(c, CodeNoShowClientUpdateFail, "appointment marked as no-show but the client could not be updated")
		return
	}

	if be, ok := httperr.AsBusiness(err); ok {
		httperr.WriteBusiness(c, be)
		return
	}

	logger.Error("request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	httperr.Internal(c, CodeInternal, "internal server error")
}

func badRequest(c *gin.Context, message string) {
	httperr.BadRequest(c, CodeInvalidRequest, message)
}
