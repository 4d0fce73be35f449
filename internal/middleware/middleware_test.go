package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/barbershop-booking/internal/identity"
	"github.com/BruksfildServices01/barbershop-booking/internal/timeutil"
)

func newRouter(t *testing.T) (*gin.Engine, *identity.TokenIssuer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	tokens := identity.NewTokenIssuer("secret", time.Hour, timeutil.SystemClock{})

	r := gin.New()
	r.GET("/barber", AuthMiddleware(tokens), RequireRole(identity.RoleBarber), func(c *gin.Context) {
		actor, _ := ActorFrom(c)
		c.String(http.StatusOK, actor.ID)
	})
	return r, tokens
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/barber", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	r, tokens := newRouter(t)

	assert.Equal(t, http.StatusUnauthorized, do(r, "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Token abc").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "Bearer not-a-jwt").Code)

	token, err := tokens.Issue(identity.Actor{Role: identity.RoleBarber, ID: "b1"})
	require.NoError(t, err)

	w := do(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "b1", w.Body.String())
}

func TestRequireRoleRejectsOtherRole(t *testing.T) {
	r, tokens := newRouter(t)

	token, err := tokens.Issue(identity.Actor{Role: identity.RoleClient, ID: "c1"})
	require.NoError(t, err)

	w := do(r, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), `"error_code":"forbidden"`)
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://app.local/"}))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/x", nil)
		req.Header.Set("Origin", origin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := preflight("http://app.local")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://app.local", w.Header().Get("Access-Control-Allow-Origin"))

	w = preflight("http://evil.local")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(RequestLogger(logger))
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"path":"/missing"`)
	assert.Contains(t, buf.String(), `"status":404`)
}
