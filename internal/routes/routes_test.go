package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	"github.com/BruksfildServices01/barbershop-booking/internal/config"
	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/lock"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/media"
	"github.com/BruksfildServices01/barbershop-booking/internal/infra/memory"
	"github.com/BruksfildServices01/barbershop-booking/internal/metrics"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

// Tuesday 2026-03-10, 07:00.
var now = time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)

type testApp struct {
	router http.Handler
	events *audit.MemorySink
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clock := timeutil.Fixed(now)
	mem := memory.NewStores()

	events := audit.NewMemorySink(0)
	dispatcher := audit.NewDispatcher(logger, events)
	t.Cleanup(func() { _ = dispatcher.Close(context.Background()) })

	r := gin.New()
	RegisterRoutes(r, Dependencies{
		Config: &config.Config{
			MinLeadTimeMinutes: 60,
			NoShowLimit:        3,
			MetricsEnabled:     true,
			MetricsPath:        "/metrics",
		},
		Logger: logger,
		Stores: Stores{
			Appointments:   mem.Appointments,
			Clients:        mem.Clients,
			Barbers:        mem.Barbers,
			WorkingWindows: mem.WorkingWindows,
			Services:       mem.Services,
		},
		Locker:  lock.NewMemory(),
		Clock:   clock,
		Tokens:  identity.NewTokenIssuer("test-secret", time.Hour, clock),
		Audit:   dispatcher,
		AuditDB: events,
		Photos:  media.NewProcessor(0),
		Blobs:   media.NewMemoryStore(),
		Metrics: metrics.New(),
	})

	return testApp{router: r, events: events}
}

func (a testApp) call(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w, out
}

func TestHealthAndMetrics(t *testing.T) {
	app := newTestApp(t)

	w, body := app.call(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", body["status"])

	w, _ = app.call(t, http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "barbershop_http_requests_total")
}

func TestBookingFlow(t *testing.T) {
	app := newTestApp(t)

	// --------------------------------------------------
	// Staff setup
	// --------------------------------------------------
	w, barber := app.call(t, http.MethodPost, "/api/auth/barbers/register", "", map[string]any{
		"name": "Rui", "phone": "1100", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	barberID := barber["id"].(string)

	w, login := app.call(t, http.MethodPost, "/api/auth/barbers/login", "", map[string]any{
		"phone": "1100", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	barberToken := login["token"].(string)

	w, _ = app.call(t, http.MethodPut, "/api/barber/working-hours", barberToken, map[string]any{
		"weekday": 2, "start": "09:00", "end": "10:00",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, svc := app.call(t, http.MethodPost, "/api/barber/services", barberToken, map[string]any{
		"name": "Corte", "duration_minutes": 30, "price": 40,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	serviceID := svc["id"].(string)

	// --------------------------------------------------
	// Client books
	// --------------------------------------------------
	w, clientLogin := app.call(t, http.MethodPost, "/api/auth/clients/login", "", map[string]any{
		"name": "Ana", "phone": "11999",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	clientToken := clientLogin["token"].(string)

	availability := "/api/availability?barber_id=" + barberID + "&service_id=" + serviceID + "&date=2026-03-10"
	w, slots := app.call(t, http.MethodGet, availability, "", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, slots["slots"], 2)
	first := slots["slots"].([]any)[0].(map[string]any)
	assert.Equal(t, "2026-03-10T09:00:00Z", first["start"])
	assert.Equal(t, "2026-03-10T09:30:00Z", first["end"])

	w, booked := app.call(t, http.MethodPost, "/api/me/appointments", clientToken, map[string]any{
		"barber_id": barberID, "service_id": serviceID, "start": "2026-03-10T09:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "CONFIRMED", booked["status"])
	assert.Equal(t, "client", booked["origin"])
	appointmentID := booked["id"].(string)

	w, body := app.call(t, http.MethodPost, "/api/me/appointments", clientToken, map[string]any{
		"barber_id": barberID, "service_id": serviceID, "start": "2026-03-10T09:30",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "client_already_booked_that_day", body["error_code"])

	_, slots = app.call(t, http.MethodGet, availability, "", nil)
	assert.Len(t, slots["slots"], 1)

	// --------------------------------------------------
	// Barber side
	// --------------------------------------------------
	w, _ = app.call(t, http.MethodGet, "/api/barber/agenda?date=2026-03-10", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w, agenda := app.call(t, http.MethodGet, "/api/barber/agenda?date=2026-03-10", barberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, agenda["total"])
	entry := agenda["data"].([]any)[0].(map[string]any)
	assert.Equal(t, "Ana", entry["client_name"])
	assert.Equal(t, "Corte", entry["service_name"])

	w, marked := app.call(t, http.MethodPatch, "/api/barber/appointments/"+appointmentID+"/no-show", barberToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "NO_SHOW", marked["status"])

	w, body = app.call(t, http.MethodPatch, "/api/barber/appointments/"+appointmentID+"/complete", barberToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "invalid_status", body["error_code"])

	w, body = app.call(t, http.MethodDelete, "/api/barber/appointments/"+appointmentID, barberToken, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "appointment_not_cancelled", body["error_code"])

	w, clients := app.call(t, http.MethodGet, "/api/barber/clients", barberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	c := clients["data"].([]any)[0].(map[string]any)
	assert.EqualValues(t, 1, c["no_shows"])
	assert.Equal(t, false, c["blocked"])

	assert.Eventually(t, func() bool {
		page, err := app.events.List(context.Background(), audit.Filter{})
		return err == nil && page.Total >= 2
	}, time.Second, 10*time.Millisecond)

	w, logs := app.call(t, http.MethodGet, "/api/barber/audit-logs?action=appointment_created", barberToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, logs["total"])
}

func TestClientRoutesRequireToken(t *testing.T) {
	app := newTestApp(t)

	w, _ := app.call(t, http.MethodGet, "/api/me/appointments", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAvailabilityValidatesQuery(t *testing.T) {
	app := newTestApp(t)

	w, body := app.call(t, http.MethodGet, "/api/availability?barber_id=b&service_id=s&date=10/03/2026", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request", body["error_code"])

	w, body = app.call(t, http.MethodGet, "/api/availability?barber_id=b&service_id=missing&date=2026-03-10", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "service_not_found", body["error_code"])
}

func TestBarberBooksOnColleagueSchedule(t *testing.T) {
	app := newTestApp(t)

	loginBarber := func(name, phone string) (string, string) {
		w, registered := app.call(t, http.MethodPost, "/api/auth/barbers/register", "", map[string]any{
			"name": name, "phone": phone, "password": "secret1",
		})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
		w, login := app.call(t, http.MethodPost, "/api/auth/barbers/login", "", map[string]any{
			"phone": phone, "password": "secret1",
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		return registered["id"].(string), login["token"].(string)
	}
	_, desk := loginBarber("Rui", "1100")
	colleagueID, colleague := loginBarber("Zé", "1101")

	w, svc := app.call(t, http.MethodPost, "/api/barber/services", desk, map[string]any{
		"name": "Corte", "duration_minutes": 30, "price": 40,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w, clientLogin := app.call(t, http.MethodPost, "/api/auth/clients/login", "", map[string]any{
		"name": "Ana", "phone": "11999",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	clientID := clientLogin["client"].(map[string]any)["id"].(string)

	w, booked := app.call(t, http.MethodPost, "/api/barber/appointments", desk, map[string]any{
		"client_id": clientID, "barber_id": colleagueID, "service_id": svc["id"], "start": "2026-03-10T11:00",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, colleagueID, booked["barber_id"])
	assert.Equal(t, "barber", booked["origin"])
	appointmentID := booked["id"].(string)

	w, body := app.call(t, http.MethodPatch, "/api/barber/appointments/"+appointmentID+"/complete", desk, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "forbidden", body["error_code"])

	w, agenda := app.call(t, http.MethodGet, "/api/barber/agenda?date=2026-03-10", colleague, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.EqualValues(t, 1, agenda["total"])
}
