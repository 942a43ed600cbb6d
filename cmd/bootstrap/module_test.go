//go:build unit

package bootstrap_test

import (
	"net/http"
	"testing"

	"producer-market/cmd/bootstrap"
	"producer-market/internal/pkg/config"
	"producer-market/internal/testutil/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func newApp(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var router *gin.Engine
	app := fx.New(
		bootstrap.Module(cfg),
		fx.Populate(&router),
		fx.RecoverFromPanics(),
		fx.NopLogger,
	)
	require.NoError(t, app.Err(), "application graph failed to build")
	require.NotNil(t, router)
	return router
}

func TestModule_MemoryDriver(t *testing.T) {
	router := newApp(t, config.NewTestConfig())

	w := httptest.PerformRequest(t, router, http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/register",
		gin.H{"email": "boot@example.com", "password": "Passw0rd!", "role": "BUYER"}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = httptest.PerformRequest(t, router, http.MethodPost, "/api/negotiations", gin.H{}, "")
	require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
}

func TestModule_EmptyCORSConfig(t *testing.T) {
	cfg := config.NewTestConfig()
	cfg.CORS = config.CORSConfig{}

	router := newApp(t, cfg)

	w := httptest.PerformRequest(t, router, http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}
