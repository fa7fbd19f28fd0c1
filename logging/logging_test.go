package logging

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBufferedLogger() (*DefaultLogger, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return NewDefaultLoggerWithWriters(&stdout, &stderr, false), &stdout, &stderr
}

func TestDefaultLoggerRoutesByLevel(t *testing.T) {
	logger, stdout, stderr := newBufferedLogger()
	logger.SetLevel(DebugLevel)

	logger.Debug("debug msg")
	logger.Info("info msg")
	logger.Warn("warn msg")
	logger.Error(errors.New("boom"), "error msg")

	assert := assert.New(t)
	assert.Contains(stdout.String(), "[DEBUG] debug msg")
	assert.Contains(stdout.String(), "[INFO] info msg")
	assert.NotContains(stdout.String(), "warn msg")
	assert.Contains(stderr.String(), "[WARN] warn msg")
	assert.Contains(stderr.String(), "[ERROR] error msg: boom")
}

func TestDefaultLoggerFiltersBelowLevel(t *testing.T) {
	logger, stdout, stderr := newBufferedLogger()

	logger.Debug("hidden")
	assert.Empty(t, stdout.String())

	logger.SetLevel(ErrorLevel)
	logger.Info("hidden")
	logger.Warn("hidden")
	assert.Empty(t, stdout.String())
	assert.Empty(t, stderr.String())
}

func TestWithFieldsMergesAndSorts(t *testing.T) {
	logger, stdout, _ := newBufferedLogger()

	child := logger.WithFields(Fields{"mode": "dorian", "root": "D"})
	child.Info("scale built", Fields{"degrees": 7})

	assert.Contains(t, stdout.String(), "[INFO] scale built {degrees=7 mode=dorian root=D}")
}

func TestWithFieldsSharesLevel(t *testing.T) {
	logger, stdout, _ := newBufferedLogger()
	child := logger.WithFields(Fields{"k": "v"})

	logger.SetLevel(DebugLevel)
	child.Debug("visible")

	assert.Contains(t, stdout.String(), "visible")
}

func TestColorsWrapWarn(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger := NewDefaultLoggerWithWriters(&stdout, &stderr, true)
	logger.Warn("careful")

	assert.Contains(t, stderr.String(), ColorYellow+"[WARN] careful"+ColorReset)
}

func TestParseLevel(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(DebugLevel, ParseLevel("debug"))
	assert.Equal(WarnLevel, ParseLevel(" WARNING "))
	assert.Equal(ErrorLevel, ParseLevel("Error"))
	assert.Equal(InfoLevel, ParseLevel("nonsense"))
	assert.Equal("UNKNOWN", Level(42).String())
}

func TestGlobalLogger(t *testing.T) {
	previous := GetGlobalLogger()
	t.Cleanup(func() { SetGlobalLogger(previous) })

	logger, stdout, _ := newBufferedLogger()
	SetGlobalLogger(logger)
	Info("through global", Fields{"n": 1})
	assert.Contains(t, stdout.String(), "[INFO] through global {n=1}")

	SetGlobalLogger(nil)
	assert.IsType(t, &NoOpLogger{}, GetGlobalLogger())
	Info("dropped")
	Error(errors.New("x"), "dropped")
}
