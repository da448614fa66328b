package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLogLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLogLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLogLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLogLevel("nonsense"))
}

func TestNewWithConfig_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	l, err := NewWithConfig(Config{
		Level:       "info",
		Format:      "json",
		OutputPath:  path,
		ServiceName: "user-post-service",
	})
	require.NoError(t, err)

	l.Info("hello")
	assert.NoError(t, l.Sync())
	assert.FileExists(t, path)
}

func TestWithContext_AddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	base := zap.New(core)

	WithContext(WithRequestID(context.Background(), "req-1"), base).Info("tagged")
	WithContext(context.Background(), base).Info("untagged")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
	assert.NotContains(t, entries[1].ContextMap(), "request_id")
}

func TestRequestIDMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen string
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		seen = GetRequestID(c.Request.Context())
		c.Status(http.StatusOK)
	})

	t.Run("generates an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, w.Header().Get(RequestIDHeader))
	})

	t.Run("keeps caller id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc")
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc", seen)
		assert.Equal(t, "abc", w.Header().Get(RequestIDHeader))
	})
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Silent, gormLevel("silent"))
	assert.Equal(t, gormlogger.Info, gormLevel("debug"))
	assert.Equal(t, gormlogger.Warn, gormLevel(""))

	l := NewGormLogger(zap.NewNop(), 0.2, "error")
	assert.Equal(t, gormlogger.Error, l.LogLevel)
	assert.Equal(t, gormlogger.Info, l.LogMode(gormlogger.Info).(*GormLogger).LogLevel)
	assert.Equal(t, gormlogger.Error, l.LogLevel)
}
