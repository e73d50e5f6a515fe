//go:build unit

package panics

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetHandler_RejectsNil(t *testing.T) {
	c := installCapture(t)

	require.ErrorIs(t, SetHandler(nil), ErrNilHandler)

	ExecuteMessage(location.SourceLocation{}, nil, "still captured")
	assert.Equal(t, "still captured", c.last(t).message)
}

func TestGetHandler_NeverNil(t *testing.T) {
	assert.NotNil(t, GetHandler())
	assert.NotNil(t, DefaultHandler())
}

func TestExecuteMessage_PassesEverything(t *testing.T) {
	c := installCapture(t)

	loc := location.New("main.go", 12, 5, "main.run")
	bt := sampleBacktrace()

	ExecuteMessage(loc, bt, "boom")

	got := c.last(t)
	assert.Equal(t, "boom", got.message)
	assert.Equal(t, loc, got.loc)
	assert.Equal(t, bt, got.bt)
}

func TestExecute_NoMessage(t *testing.T) {
	c := installCapture(t)

	Execute(location.New("a.go", 1, 0, "f"), nil)

	assert.Empty(t, c.last(t).message)
}

func TestExecutef_FormatsMessage(t *testing.T) {
	c := installCapture(t)

	Executef(location.SourceLocation{}, nil, "retry {} of {}", 3, 4)
	assert.Equal(t, "retry 3 of 4", c.last(t).message)

	Executef(location.SourceLocation{}, nil, "{1} before {0}", "a", "b")
	assert.Equal(t, "b before a", c.last(t).message)
}

func TestPanic_CapturesCaller(t *testing.T) {
	c := installCapture(t)

	line := location.Current(0).Line + 1
	Panic("unexpected opcode {}", 7)

	got := c.last(t)
	assert.Equal(t, "unexpected opcode 7", got.message)
	assert.Equal(t, line, got.loc.Line)
	assert.Contains(t, got.loc.Function, "TestPanic_CapturesCaller")
	require.NotEmpty(t, got.bt)
	assert.Contains(t, got.bt[0].Name, "TestPanic_CapturesCaller")
}

func TestPanic_MessageForms(t *testing.T) {
	c := installCapture(t)

	Panic()
	assert.Empty(t, c.last(t).message)

	Panic("plain message")
	assert.Equal(t, "plain message", c.last(t).message)

	Panic(struct{ Code int }{Code: 3})
	assert.Equal(t, "{Code:3}", c.last(t).message)
}

func TestHandlerReturn_ContinuesExecution(t *testing.T) {
	c := installCapture(t)

	continued := false

	Panic("first")
	continued = true

	assert.True(t, continued)
	assert.Len(t, c.all(), 1)
}

func TestHandler_ConcurrentSwapAndExecute(t *testing.T) {
	previous := GetHandler()
	t.Cleanup(func() { _ = SetHandler(previous) })

	var calls atomic.Int64

	counting := func(string, location.SourceLocation, backtrace.Backtrace) { calls.Add(1) }
	require.NoError(t, SetHandler(counting))

	var wg sync.WaitGroup

	for i := range 8 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for range 100 {
				if i%2 == 0 {
					assert.NoError(t, SetHandler(counting))
					continue
				}

				ExecuteMessage(location.SourceLocation{}, nil, "concurrent")
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, int64(400), calls.Load())
}

func TestIsDebugBuild(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDebugBuild(), "unit tests are built without the release tag")
}
