package logging

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observedLogger(level zapcore.Level) (Logger, *observer.ObservedLogs) {
	core, logs := observer.New(level)
	return NewLoggerFromCore(core), logs
}

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	assert.Equal(t, Field{Key: "n", Value: 7}, Int("n", 7))
	assert.Equal(t, Field{Key: "n", Value: int64(7)}, Int64("n", 7))
	assert.Equal(t, Field{Key: "f", Value: 1.5}, Float64("f", 1.5))
	assert.Equal(t, Field{Key: "b", Value: true}, Bool("b", true))
	assert.Equal(t, Field{Key: "d", Value: time.Second}, Duration("d", time.Second))
}

func TestErrField(t *testing.T) {
	assert.Equal(t, Field{Key: "error", Value: "boom"}, Err(errors.New("boom")))
	assert.Equal(t, Field{Key: "error", Value: "<nil>"}, Err(nil))
}

func TestLoggerEmitsFields(t *testing.T) {
	log, logs := observedLogger(zapcore.DebugLevel)

	log.Info("result stored",
		String("respondent_id", "u1"),
		Int("answers", 40),
		Float64("score", 72.5),
		Bool("preview", false),
		Duration("elapsed", 20*time.Millisecond),
	)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "result stored", entries[0].Message)

	ctx := entries[0].ContextMap()
	assert.Equal(t, "u1", ctx["respondent_id"])
	assert.Equal(t, int64(40), ctx["answers"])
	assert.Equal(t, 72.5, ctx["score"])
	assert.Equal(t, false, ctx["preview"])
	assert.Equal(t, (20 * time.Millisecond).Nanoseconds(), ctx["elapsed"])
}

func TestLoggerLevelFiltering(t *testing.T) {
	log, logs := observedLogger(zapcore.WarnLevel)

	log.Debug("suppressed")
	log.Info("suppressed")
	log.Warn("kept")
	log.Error("kept too")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
}

func TestWith_ChildCarriesFields(t *testing.T) {
	log, logs := observedLogger(zapcore.InfoLevel)

	child := log.With(String("component", "scoring"))
	child.Info("section scored")
	log.Info("no extra fields")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "scoring", entries[0].ContextMap()["component"])
	assert.NotContains(t, entries[1].ContextMap(), "component")
}

func TestNamed(t *testing.T) {
	log, logs := observedLogger(zapcore.InfoLevel)

	log.Named("app").Named("http").Info("request completed")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "app.http", entries[0].LoggerName)
}

func TestNewLogger(t *testing.T) {
	log, err := NewLogger(LogConfig{Level: "debug", Format: "json"})
	require.NoError(t, err)
	require.NotNil(t, log)

	// Invalid output path surfaces a build error.
	_, err = NewLogger(LogConfig{OutputPaths: []string{"unknown-scheme://x"}})
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("WARN"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel(""))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("nonsense"))
}

func TestNopLogger(t *testing.T) {
	log := NewNopLogger()
	log.Debug("x")
	log.Info("x")
	log.Warn("x")
	log.Error("x")
	assert.NotNil(t, log.With(String("k", "v")))
	assert.NotNil(t, log.Named("n"))
}
