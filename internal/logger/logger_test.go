package logger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"biztime/internal/config"
	"biztime/internal/shared/contextutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	gormlogger "gorm.io/gorm/logger"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestNew(t *testing.T) {
	t.Run("writes to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		l, err := New(config.LogConfig{Level: "debug", Format: "json", Output: path})
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("unwritable file", func(t *testing.T) {
		_, err := New(config.LogConfig{Output: filepath.Join(t.TempDir(), "missing", "app.log")})
		assert.Error(t, err)
	})
}

func TestGormLogger_Trace(t *testing.T) {
	newObserved := func(level gormlogger.LogLevel) (*GormLogger, *observer.ObservedLogs) {
		core, logs := observer.New(zapcore.DebugLevel)
		return NewGormLogger(zap.New(core), level, 50*time.Millisecond), logs
	}
	fc := func() (string, int64) { return "SELECT 1", 1 }

	t.Run("slow query warns with request id", func(t *testing.T) {
		gl, logs := newObserved(gormlogger.Warn)
		ctx := contextutil.WithRequestID(context.Background(), "rid-1")

		gl.Trace(ctx, time.Now().Add(-time.Second), fc, nil)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, zapcore.WarnLevel, entry.Level)
		assert.Equal(t, "rid-1", entry.ContextMap()["request_id"])
		assert.Equal(t, "gorm", entry.LoggerName)
	})

	t.Run("fast query is quiet at warn", func(t *testing.T) {
		gl, logs := newObserved(gormlogger.Warn)
		gl.Trace(context.Background(), time.Now(), fc, nil)
		assert.Zero(t, logs.Len())
	})

	t.Run("errors stay at debug", func(t *testing.T) {
		gl, logs := newObserved(gormlogger.Error)
		gl.Trace(context.Background(), time.Now(), fc, errors.New("duplicate key"))
		require.Equal(t, 1, logs.Len())
		assert.Equal(t, zapcore.DebugLevel, logs.All()[0].Level)
	})

	t.Run("silent", func(t *testing.T) {
		gl, logs := newObserved(gormlogger.Warn)
		gl.LogMode(gormlogger.Silent).Trace(context.Background(), time.Now().Add(-time.Second), fc, nil)
		assert.Zero(t, logs.Len())
	})
}

func TestGormLevel(t *testing.T) {
	assert.Equal(t, gormlogger.Info, GormLevel("debug"))
	assert.Equal(t, gormlogger.Error, GormLevel("error"))
	assert.Equal(t, gormlogger.Warn, GormLevel("info"))
}
