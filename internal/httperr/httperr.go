package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

// StatusFor maps a business error code to its HTTP status.
func StatusFor(code string) int {
	switch code {
	case CodeClientNotFound, CodeBarberNotFound, CodeServiceNotFound, CodeAppointmentNotFound:
		return http.StatusNotFound
	case CodeForbidden, CodeClientBlocked:
		return http.StatusForbidden
	case CodeConflict, CodeClientAlreadyBookedThatDay, CodeClientAlreadyExists,
		CodeInvalidStatus, CodeAppointmentNotCancelled:
		return http.StatusConflict
	case CodeInvalidCredentials:
		return http.StatusUnauthorized
	default:
		return http.StatusBadRequest
	}
}

// WriteBusiness writes be with the status StatusFor assigns to its code.
func WriteBusiness(c *gin.Context, be BusinessError) {
	Write(c, StatusFor(be.Code), be.Code, be.Message)
}
