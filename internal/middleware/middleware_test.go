package middleware_test

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/currency_calculator/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	var (
		fromGin   *slog.Logger
		fromCtx   *slog.Logger
		requestID string
	)
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger))
	r.GET("/ping", func(c *gin.Context) {
		fromGin = middleware.GetLoggerFromContext(c)
		fromCtx = middleware.GetLoggerFromCtx(c.Request.Context())
		requestID, _ = middleware.GetRequestIDFromContext(c)
		c.Status(http.StatusNoContent)
	})

	t.Run("generates a request id", func(t *testing.T) {
		buf.Reset()
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, w.Header().Get(middleware.RequestIDHeader), requestID)
		assert.Same(t, fromGin, fromCtx)
		assert.Contains(t, buf.String(), `"msg":"Request completed"`)
		assert.Contains(t, buf.String(), `"status":204`)
		assert.Contains(t, buf.String(), requestID)
	})

	t.Run("reuses an incoming request id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(middleware.RequestIDHeader, "req-42")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "req-42", w.Header().Get(middleware.RequestIDHeader))
		assert.Equal(t, "req-42", requestID)
		assert.Contains(t, buf.String(), `"request_id":"req-42"`)
	})
}

func TestLoggerFromCtx(t *testing.T) {
	_, ok := middleware.LoggerFromCtx(context.Background())
	assert.False(t, ok)
	assert.Same(t, slog.Default(), middleware.GetLoggerFromCtx(context.Background()))

	logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))
	got, ok := middleware.LoggerFromCtx(middleware.WithLogger(context.Background(), logger))
	require.True(t, ok)
	assert.Same(t, logger, got)
}

func TestRateLimit(t *testing.T) {
	l, err := middleware.NewMemoryLimiter("1-H")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(l))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", first.Header().Get("X-RateLimit-Remaining"))

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	other := httptest.NewRequest(http.MethodGet, "/ping", nil)
	other.RemoteAddr = "198.51.100.7:4000"
	third := httptest.NewRecorder()
	r.ServeHTTP(third, other)
	assert.Equal(t, http.StatusOK, third.Code, "limits are tracked per client address")
}

func TestNewMemoryLimiter_InvalidRate(t *testing.T) {
	_, err := middleware.NewMemoryLimiter("often")
	assert.Error(t, err)
}
