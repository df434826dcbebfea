package xlog

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type memSyncer struct {
	mu  sync.Mutex
	buf strings.Builder
}

func (ms *memSyncer) Write(p []byte) (int, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.buf.Write(p)
}

func (ms *memSyncer) Sync() error { return nil }

func (ms *memSyncer) String() string {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return ms.buf.String()
}

var _ zapcore.WriteSyncer = (*memSyncer)(nil)

func TestXLoggerJSONConsole(t *testing.T) {
	ws := &memSyncer{}
	logger := NewXLogger(
		WithXLoggerComponent("XAlgo"),
		WithXLoggerLevel(LogLevelInfo),
		WithXLoggerEncoder(JSON),
		WithXLoggerWriteSyncer(ws),
	)
	logger.Debug("below enabler, dropped")
	logger.Info("hello", zap.Int("n", 1))
	logger.Error(errors.New("boom"), "failed")
	_ = logger.Sync()

	out := ws.String()
	require.NotContains(t, out, "below enabler")
	require.Contains(t, out, `"msg":"hello"`)
	require.Contains(t, out, `"component":"XAlgo"`)
	require.Contains(t, out, `"error":"boom"`)
}

func TestLogLevelMapping(t *testing.T) {
	require.Equal(t, zapcore.WarnLevel, LogLevelWarn.zapLevel())
	require.Equal(t, zapcore.DebugLevel, LogLevel("whatever").zapLevel())
	require.Equal(t, "ERROR", LogLevelError.String())
}
