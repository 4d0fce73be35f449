package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainappt "github.com/BruksfildServices01/barbershop-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barbershop-booking/internal/httperr"
	ucappt "github.com/BruksfildServices01/barbershop-booking/internal/usecase/appointment"
)

func respond(t *testing.T, err error) (int, httperr.HTTPError) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/x", nil)

	respondError(c, slog.New(slog.NewTextHandler(io.Discard, nil)), err)

	var body httperr.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestRespondErrorCascadeFirst(t *testing.T) {
	cause := httperr.ErrBusiness(httperr.CodeClientNotFound, "gone")
	err := &ucappt.ClientCascadeError{Appointment: domainappt.Appointment{ID: "a1"}, Err: cause}

	code, body := respond(t, err)

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, CodeNoShowClientUpdateFail, body.Code)
}

func TestRespondErrorBusiness(t *testing.T) {
	code, body := respond(t, httperr.ErrBusiness(httperr.CodeConflict, "slot taken"))

	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, httperr.HTTPError{Code: httperr.CodeConflict, Message: "slot taken"}, body)
}

func TestRespondErrorInternalHidesCause(t *testing.T) {
	code, body := respond(t, errors.New("pq: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, CodeInternal, body.Code)
	assert.NotContains(t, body.Message, "pq")
}

func TestParseDateTimeDropsOffset(t *testing.T) {
	want := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)

	for _, in := range []string{"2026-03-10T09:30:00-03:00", "2026-03-10T09:30:00Z", "2026-03-10T09:30", "2026-03-10 09:30"} {
		got, err := parseDateTime(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := parseDateTime("10/03/2026 09:30")
	assert.Error(t, err)
}

func TestQueryInt(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	c.Request = httptest.NewRequest(http.MethodGet, "/?weekday=3", nil)
	n, err := queryInt(c, "weekday")
	require.NoError(t, err)
	require.NotNil(t, n)
	assert.Equal(t, 3, *n)

	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	n, err = queryInt(c, "weekday")
	assert.NoError(t, err)
	assert.Nil(t, n)

	c.Request = httptest.NewRequest(http.MethodGet, "/?weekday=x", nil)
	_, err = queryInt(c, "weekday")
	assert.Error(t, err)
}
