package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLoggerRoutesGlobalLogs(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	L().Info("dropped")
	L().Warn("kept", zap.Int("n", 1))

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "kept", logs.All()[0].Message)
}

func TestInitializeRejectsBadLevel(t *testing.T) {
	_, err := Initialize(LoggerConfig{Level: "loud"})
	assert.Error(t, err)
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	SetLogger(nil)
	assert.NotNil(t, L())
}
