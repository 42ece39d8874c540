package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/schoolportal/internal/config"
)

func swaggerConfig(mode string) *config.Config {
	cfg := &config.Config{}
	cfg.Server.Mode = mode
	cfg.Server.Port = "8080"
	return cfg
}

func TestSetupSwaggerServesDocOutsideProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	require.True(t, SetupSwagger(router, swaggerConfig("development")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "School Portal API")
	assert.Contains(t, w.Body.String(), "/me/ws")
}

func TestSetupSwaggerSkippedInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	assert.False(t, SetupSwagger(router, swaggerConfig("production")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
