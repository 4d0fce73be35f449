package httperr

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("create: %w", ErrBusiness(CodeConflict, "slot taken"))

	assert.True(t, IsBusiness(err, CodeConflict))
	assert.False(t, IsBusiness(err, CodeForbidden))
	assert.False(t, IsBusiness(errors.New("boom"), CodeConflict))

	be, ok := AsBusiness(err)
	require.True(t, ok)
	assert.Equal(t, "slot taken", be.Message)
	assert.Equal(t, "conflict: slot taken", be.Error())
}

func TestStatusFor(t *testing.T) {
	cases := map[string]int{
		CodeClientNotFound:             http.StatusNotFound,
		CodeBarberNotFound:             http.StatusNotFound,
		CodeServiceNotFound:            http.StatusNotFound,
		CodeAppointmentNotFound:        http.StatusNotFound,
		CodeForbidden:                  http.StatusForbidden,
		CodeClientBlocked:              http.StatusForbidden,
		CodeConflict:                   http.StatusConflict,
		CodeClientAlreadyBookedThatDay: http.StatusConflict,
		CodeInvalidStatus:              http.StatusConflict,
		CodeAppointmentNotCancelled:    http.StatusConflict,
		CodeInvalidCredentials:         http.StatusUnauthorized,
		CodeInvalidLeadTime:            http.StatusBadRequest,
		CodeInvalidInput:               http.StatusBadRequest,
		CodeInvalidTimeRange:           http.StatusBadRequest,
	}

	for code, want := range cases {
		assert.Equal(t, want, StatusFor(code), code)
	}
}

func TestWriteBusiness(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	WriteBusiness(c, BusinessError{Code: CodeForbidden, Message: "not yours"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	var body HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, HTTPError{Code: CodeForbidden, Message: "not yours"}, body)
}

func TestPostgresErrorCodes(t *testing.T) {
	exclusion := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})
	unique := &pgconn.PgError{Code: "23505"}

	assert.True(t, IsExclusionConflict(exclusion))
	assert.False(t, IsExclusionConflict(unique))
	assert.True(t, IsUniqueViolation(unique))
	assert.False(t, IsUniqueViolation(errors.New("other")))
}
