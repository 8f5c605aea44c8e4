package integration

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"layered-user-service/internal/adapter/console"
	ginhandler "layered-user-service/internal/adapter/gin/handler"
	"layered-user-service/internal/adapter/gin/middleware"
	ginrouter "layered-user-service/internal/adapter/gin/router"
	"layered-user-service/internal/usecase/user"
)

// setupAPI wires the full stack: console repository, usecase, handler, router.
// The repository logger is observed so tests can assert what storage received.
func setupAPI(t *testing.T) (*gin.Engine, *observer.ObservedLogs) {
	core, repoLogs := observer.New(zapcore.InfoLevel)
	repo := console.NewUserRepoConsole(zap.New(core))

	log := zaptest.NewLogger(t)
	uc := user.New(repo, log)
	h := ginhandler.NewUserHandler(uc, log)
	rl := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		RequestsPerSecond: 1000,
		BurstCapacity:     1000,
		Enabled:           true,
	}, log)

	return ginrouter.SetupRouter(h, rl, log), repoLogs
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := setupAPI(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/users", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Users API is working!"}`, w.Body.String())
}

func TestCreateUser_EndToEnd(t *testing.T) {
	r, repoLogs := setupAPI(t)

	w := postJSON(r, "/api/users", `{"name":"John Doe","email":"john.doe@example.com"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "User created successfully.", w.Body.String())

	// Storage received exactly the submitted record
	entries := repoLogs.FilterMessage("user created").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "John Doe", fields["name"])
	assert.Equal(t, "john.doe@example.com", fields["email"])
	assert.NotEmpty(t, fields["id"])
}

func TestCreateUser_EmptyName(t *testing.T) {
	r, repoLogs := setupAPI(t)

	w := postJSON(r, "/api/users", `{"name":"","email":"x@y.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User name is required."}`, w.Body.String())

	// No storage call on validation failure
	assert.Zero(t, repoLogs.FilterMessage("user created").Len())
}

func TestCreateUser_MissingName(t *testing.T) {
	r, repoLogs := setupAPI(t)

	w := postJSON(r, "/api/users", `{"email":"x@y.com"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"User name is required."}`, w.Body.String())
	assert.Zero(t, repoLogs.FilterMessage("user created").Len())
}

func TestCreateUser_MalformedBody(t *testing.T) {
	r, repoLogs := setupAPI(t)

	w := postJSON(r, "/api/users", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, repoLogs.FilterMessage("user created").Len())
}

func TestServiceHealthEndpoint(t *testing.T) {
	r, _ := setupAPI(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestMetricsEndpoint(t *testing.T) {
	r, _ := setupAPI(t)

	// Generate some traffic first
	postJSON(r, "/api/users", `{"name":"John Doe","email":"john.doe@example.com"}`)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestRequestIDHeaderPresent(t *testing.T) {
	r, _ := setupAPI(t)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/users", nil))

	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}
