//go:build unit

package assert

import (
	"context"
	"go/ast"
	"go/parser"
	"go/token"
	"regexp"
	"sync"
	"testing"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/location"
	"github.com/LerianStudio/lib-invariant/invariant/log"
	"github.com/LerianStudio/lib-invariant/invariant/panics"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func strip(s string) string {
	return ansi.ReplaceAllString(s, "")
}

type failure struct {
	message string
	loc     location.SourceLocation
	bt      backtrace.Backtrace
}

// capture records handler invocations instead of terminating.
type capture struct {
	mu       sync.Mutex
	failures []failure
}

func (c *capture) handle(message string, loc location.SourceLocation, bt backtrace.Backtrace) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.failures = append(c.failures, failure{message: strip(message), loc: loc, bt: bt})
}

func (c *capture) count() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.failures)
}

func (c *capture) last(t *testing.T) failure {
	t.Helper()

	c.mu.Lock()
	defer c.mu.Unlock()

	require.NotEmpty(t, c.failures, "handler was not invoked")

	return c.failures[len(c.failures)-1]
}

// installCapture swaps in a capturing handler for the duration of the test.
func installCapture(t *testing.T) *capture {
	t.Helper()

	c := &capture{}
	previous := panics.GetHandler()

	require.NoError(t, panics.SetHandler(c.handle))
	t.Cleanup(func() { _ = panics.SetHandler(previous) })

	return c
}

// nextLine returns the line after the caller's.
func nextLine() int {
	return location.Current(1).Line + 1
}

func withProductionMode(t *testing.T, enabled bool) {
	t.Helper()

	previous := panics.IsProductionMode()

	panics.SetProductionMode(enabled)
	t.Cleanup(func() { panics.SetProductionMode(previous) })
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

// parseExpr parses src as the initializer of a package-level variable.
func parseExpr(t *testing.T, src string) (*sourceFile, ast.Expr) {
	t.Helper()

	content := []byte("package p\n\nvar _ = " + src + "\n")
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, "cond.go", content, 0)
	require.NoError(t, err)

	spec := f.Decls[0].(*ast.GenDecl).Specs[0].(*ast.ValueSpec)

	return &sourceFile{fset: fset, file: f, src: content}, spec.Values[0]
}

// recordingLogger keeps every entry it receives.
type recordingLogger struct {
	log.NopLogger

	mu      sync.Mutex
	entries []recordedEntry
}

type recordedEntry struct {
	level  log.Level
	msg    string
	fields []log.Field
}

func (l *recordingLogger) Log(_ context.Context, level log.Level, msg string, fields ...log.Field) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, recordedEntry{level: level, msg: msg, fields: fields})
}

func (l *recordingLogger) Enabled(log.Level) bool { return true }

func (l *recordingLogger) all() []recordedEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]recordedEntry(nil), l.entries...)
}

func fieldValue(fields []log.Field, key string) (any, bool) {
	for _, f := range fields {
		if f.Key == key {
			return f.Value, true
		}
	}

	return nil, false
}
