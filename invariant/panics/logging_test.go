//go:build unit

package panics

import (
	"testing"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/location"
	izap "github.com/LerianStudio/lib-invariant/invariant/zap"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*izap.Logger, *observer.ObservedLogs) {
	core, observed := observer.New(zapcore.DebugLevel)

	return izap.Wrap(zap.New(core)), observed
}

func TestLoggingHandler_LogsThenDelegates(t *testing.T) {
	withProductionMode(t, false)

	logger, observed := newObservedLogger()
	next := &capture{signal: make(chan struct{}, 1)}

	h := LoggingHandler(logger, next.handle)
	loc := location.New("main.go", 12, 5, "main.run")
	bt := append(sampleBacktrace(), backtrace.Frame{}, backtrace.Frame{Address: 0x3000})

	h("\x1b[1mRequirement\x1b[0m Assertion Failed", loc, bt)

	require.Len(t, next.all(), 1, "next handler must run")
	assert.Equal(t, "\x1b[1mRequirement\x1b[0m Assertion Failed", next.all()[0].message, "next gets the original message")

	entries := observed.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "invariant violated", entries[0].Message)

	fields := entries[0].ContextMap()
	assert.Equal(t, "[main.go|12:5]: main.run", fields["location"])
	assert.Equal(t, "Requirement Assertion Failed", fields["message"])
	assert.Equal(t, []any{"main.run main.go:12", "main.main main.go:30", "[no info]"}, fields["frames"])

	id, err := uuid.Parse(fields["panic_id"].(string))
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
}

func TestLoggingHandler_ProductionOmitsDetails(t *testing.T) {
	withProductionMode(t, true)

	logger, observed := newObservedLogger()
	next := &capture{signal: make(chan struct{}, 1)}

	LoggingHandler(logger, next.handle)("secret operand 42", location.SourceLocation{}, sampleBacktrace())

	entries := observed.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, true, fields["redacted"])
	assert.NotContains(t, fields, "message")
	assert.NotContains(t, fields, "frames")
	assert.Len(t, next.all(), 1)
}

func TestLoggingHandler_NilArguments(t *testing.T) {
	term := stubTermination(t)

	h := LoggingHandler(nil, nil)
	h("boom", location.New("main.go", 12, 5, "main.run"), sampleBacktrace())

	assert.Equal(t, expectedReport("boom"), term.output.String())
	assert.Equal(t, []int{ExitCode}, term.codes)
}
