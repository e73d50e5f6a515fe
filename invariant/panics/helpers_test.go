//go:build unit

package panics

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/location"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// failure is one handler invocation.
type failure struct {
	message string
	loc     location.SourceLocation
	bt      backtrace.Backtrace
}

// capture records handler invocations instead of terminating.
type capture struct {
	mu       sync.Mutex
	failures []failure
	signal   chan struct{}
}

func (c *capture) handle(message string, loc location.SourceLocation, bt backtrace.Backtrace) {
	c.mu.Lock()
	c.failures = append(c.failures, failure{message: message, loc: loc, bt: bt})
	c.mu.Unlock()

	select {
	case c.signal <- struct{}{}:
	default:
	}
}

func (c *capture) all() []failure {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]failure(nil), c.failures...)
}

func (c *capture) last(t *testing.T) failure {
	t.Helper()

	all := c.all()
	require.NotEmpty(t, all, "handler was not invoked")

	return all[len(all)-1]
}

// installCapture swaps in a capturing handler for the duration of the test.
func installCapture(t *testing.T) *capture {
	t.Helper()

	c := &capture{signal: make(chan struct{}, 16)}
	previous := GetHandler()

	require.NoError(t, SetHandler(c.handle))
	t.Cleanup(func() { _ = SetHandler(previous) })

	return c
}

type termination struct {
	output bytes.Buffer
	traps  int
	codes  []int
}

// stubTermination redirects the default handler's output, trap and exit.
func stubTermination(t *testing.T) *termination {
	t.Helper()

	term := &termination{}

	outputMu.Lock()
	prevOut, prevTrap, prevExit := stderr, trap, exit
	stderr = &term.output
	trap = func() { term.traps++ }
	exit = func(code int) { term.codes = append(term.codes, code) }
	outputMu.Unlock()

	t.Cleanup(func() {
		outputMu.Lock()
		stderr, trap, exit = prevOut, prevTrap, prevExit
		outputMu.Unlock()
	})

	return term
}

type reported struct {
	err  error
	tags map[string]string
}

type stubReporter struct {
	mu    sync.Mutex
	calls []reported
}

func (r *stubReporter) CaptureException(_ context.Context, err error, tags map[string]string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls = append(r.calls, reported{err: err, tags: tags})
}

func installReporter(t *testing.T) *stubReporter {
	t.Helper()

	r := &stubReporter{}
	previous := GetErrorReporter()

	SetErrorReporter(r)
	t.Cleanup(func() { SetErrorReporter(previous) })

	return r
}

func withProductionMode(t *testing.T, enabled bool) {
	t.Helper()

	previous := IsProductionMode()

	SetProductionMode(enabled)
	t.Cleanup(func() { SetProductionMode(previous) })
}

func newTestTracerProvider(t *testing.T) (*sdktrace.TracerProvider, *tracetest.SpanRecorder) {
	t.Helper()

	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return provider, recorder
}

func newTestMeterProvider(t *testing.T) (*sdkmetric.MeterProvider, *sdkmetric.ManualReader) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))

	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	return provider, reader
}

func sampleBacktrace() backtrace.Backtrace {
	return backtrace.Backtrace{
		{Address: 0x1000, Name: "main.run", File: "main.go", Line: 12},
		{Address: 0x2000, Name: "main.main", File: "main.go", Line: 30},
	}
}
