package logging

import (
	"testing"

	"github.com/go-logr/logr"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, parseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, parseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, parseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, parseLevel("bogus"))
}

func TestNew_FallsBackWhenSinkMissing(t *testing.T) {
	l := New(logr.Logger{})
	assert.NotNil(t, l.Logr().GetSink())
}

func TestNewLogger_DebugEnablesV1(t *testing.T) {
	assert.True(t, NewLogger("debug").V(1).Enabled())
	assert.False(t, NewLogger("info").V(1).Enabled())
}

func TestNew_KeepsDiscard(t *testing.T) {
	l := New(Discard())
	assert.NotNil(t, l.Logr().GetSink())
	assert.False(t, l.Logr().Enabled())
	assert.False(t, l.DebugEnabled())
	assert.NotPanics(t, func() { l.Info("dropped", "key", "value") })
}
