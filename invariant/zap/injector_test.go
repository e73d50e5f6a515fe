//go:build unit

package zap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewRejectsMissingEnvironment(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid zap config")
}

func TestNewRejectsInvalidEnvironment(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: Environment("banana")})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Environment")
}

func TestNewRejectsInvalidCustomLevel(t *testing.T) {
	t.Parallel()

	_, _, err := New(Config{Environment: EnvironmentProduction, Level: "verbose"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Level")
}

func TestNewAppliesEnvironmentDefaultLevel(t *testing.T) {
	t.Parallel()

	logger, level, err := New(Config{Environment: EnvironmentDevelopment})
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level.Level())
	assert.Equal(t, zapcore.DebugLevel, logger.Level().Level())

	_, level, err = New(Config{Environment: EnvironmentProduction})
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}

func TestNewAppliesCustomLevel(t *testing.T) {
	t.Parallel()

	_, level, err := New(Config{Environment: EnvironmentStaging, Level: "error", OTelLibraryName: "svc"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.ErrorLevel, level.Level())
}

func TestNewConsoleEncoding(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "console", buildConfig(Config{Environment: EnvironmentLocal, Console: true}).Encoding)
	assert.Equal(t, "json", buildConfig(Config{Environment: EnvironmentProduction}).Encoding)
}

func TestResolveLevelDefaults(t *testing.T) {
	t.Parallel()

	level, err := resolveLevel(Config{Environment: EnvironmentLocal})
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level.Level())

	level, err = resolveLevel(Config{Environment: EnvironmentProduction, Level: "  "})
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level.Level())
}
