package bootstrap

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/eschool/internal/config"
)

func testConfig(t *testing.T, authEnabled bool) *config.Config {
	t.Helper()
	t.Setenv("AUTH_ENABLED", strconv.FormatBool(authEnabled))
	t.Setenv("JWT_SECRET", "test-secret")
	cfg, err := config.LoadConfig("does-not-exist.yaml")
	require.NoError(t, err)
	return cfg
}

func TestSetupRouterServesPingAndSwagger(t *testing.T) {
	cfg := testConfig(t, false)
	router := SetupRouter(cfg, BuildDependencies(cfg, nil, zerolog.Nop()), zerolog.Nop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/courseteachers")
}

func TestBuildDependenciesAuthToggle(t *testing.T) {
	cfg := testConfig(t, false)
	deps := BuildDependencies(cfg, nil, zerolog.Nop())
	assert.Nil(t, deps.AuthMiddleware)
	assert.Nil(t, deps.JWTService)

	cfg = testConfig(t, true)
	deps = BuildDependencies(cfg, nil, zerolog.Nop())
	require.NotNil(t, deps.AuthMiddleware)

	router := SetupRouter(cfg, deps, zerolog.Nop())
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/courseteachers", strings.NewReader(`{"teacherId":1,"courseId":2}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
