package httpserver_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datacube/topic-search/internal/httpserver"
	"github.com/datacube/topic-search/internal/logger"
)

func newTestEngine(middleware ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(middleware...)
	engine.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return engine
}

func TestRequestIDLoggerMiddleware_GeneratesID(t *testing.T) {
	engine := newTestEngine(httpserver.RequestIDLoggerMiddleware(logger.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	engine.ServeHTTP(w, req)

	id := w.Header().Get(httpserver.RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Len(t, id, 32)
	assert.NotContains(t, id, " ")
}

func TestRequestIDLoggerMiddleware_PreservesInboundID(t *testing.T) {
	engine := newTestEngine(httpserver.RequestIDLoggerMiddleware(logger.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(httpserver.RequestIDHeader, "client-supplied-id")
	engine.ServeHTTP(w, req)

	assert.Equal(t, "client-supplied-id", w.Header().Get(httpserver.RequestIDHeader))
}

func TestRequestIDLoggerMiddleware_RejectsOversizedID(t *testing.T) {
	engine := newTestEngine(httpserver.RequestIDLoggerMiddleware(logger.NewNop()))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(httpserver.RequestIDHeader, strings.Repeat("x", 200))
	engine.ServeHTTP(w, req)

	id := w.Header().Get(httpserver.RequestIDHeader)
	require.NotEmpty(t, id)
	assert.Len(t, id, 32)
}

func TestRequestIDLoggerMiddleware_InjectsContextLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(httpserver.RequestIDLoggerMiddleware(logger.NewNop()))

	var got logger.Logger
	engine.GET("/test", func(c *gin.Context) {
		got = logger.FromContext(c.Request.Context())
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	require.NotNil(t, got)
}

func TestCORSMiddleware_AllowAll(t *testing.T) {
	cfg := httpserver.CORSConfig{Enabled: true}
	cfg.SetDefaults()
	engine := newTestEngine(httpserver.CORSMiddleware(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://example.com")
	engine.ServeHTTP(w, req)

	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_SpecificOrigin(t *testing.T) {
	cfg := httpserver.CORSConfig{
		Enabled:        true,
		AllowedOrigins: []string{"https://www.datacubeai.space"},
	}
	cfg.SetDefaults()
	engine := newTestEngine(httpserver.CORSMiddleware(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://www.datacubeai.space")
	engine.ServeHTTP(w, req)
	assert.Equal(t, "https://www.datacubeai.space", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set("Origin", "https://evil.example")
	engine.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	cfg := httpserver.CORSConfig{Enabled: true}
	cfg.SetDefaults()
	engine := newTestEngine(httpserver.CORSMiddleware(cfg))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/test", nil)
	req.Header.Set("Origin", "https://example.com")
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(httpserver.RequestIDLoggerMiddleware(logger.NewNop()))
	engine.Use(httpserver.RecoveryMiddleware())
	engine.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "internal server error")
}

func TestHealthRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	httpserver.RegisterHealthRoutes(engine, "topic-search", "1.2.3")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
	assert.Contains(t, w.Body.String(), `"service":"topic-search"`)
	assert.Contains(t, w.Body.String(), `"version":"1.2.3"`)
}

func TestReadyRoute_FailingCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	httpserver.RegisterHealthRoutesWithChecks(engine, "topic-search", "1.0.0",
		httpserver.HealthCheckFunc{CheckName: "upstream", Fn: func() error { return errors.New("connection refused") }},
		httpserver.HealthCheckFunc{CheckName: "cache", Fn: func() error { return nil }},
	)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"not ready"`)
	assert.Contains(t, w.Body.String(), "connection refused")
}
