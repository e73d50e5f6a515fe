package panics

import (
	"context"
	"strings"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/location"
)

// Recover turns a Go runtime panic into an invariant failure. Defer it
// directly:
//
//	defer panics.Recover("ledger")
func Recover(component string) {
	if r := recover(); r != nil {
		handleRecovered(context.Background(), r, component, "")
	}
}

// RecoverWithContext is Recover with telemetry bound to ctx. The panic is
// counted in panic_recovered_total, recorded on the span in ctx and sent to
// the ErrorReporter before the handler runs.
//
//	defer panics.RecoverWithContext(ctx, "ledger", "balance_worker")
func RecoverWithContext(ctx context.Context, component, goroutineName string) {
	if r := recover(); r != nil {
		handleRecovered(ctx, r, component, goroutineName)
	}
}

// Go runs fn in a new goroutine guarded by RecoverWithContext.
func Go(ctx context.Context, component, goroutineName string, fn func(context.Context)) {
	go func() {
		defer RecoverWithContext(ctx, component, goroutineName)

		fn(ctx)
	}()
}

// HandlePanicValue processes a value recovered by another mechanism, such
// as a framework's recovery middleware. A nil value is ignored.
func HandlePanicValue(ctx context.Context, panicValue any, component, goroutineName string) {
	if panicValue == nil {
		return
	}

	handleRecovered(ctx, panicValue, component, goroutineName)
}

func handleRecovered(ctx context.Context, panicValue any, component, goroutineName string) {
	if ctx == nil {
		ctx = context.Background()
	}

	// handleRecovered, then the exported helper.
	loc, bt := panicSite(backtrace.Capture(2))

	recordPanicMetric(ctx, component, goroutineName)
	RecordPanicToSpanWithComponent(ctx, panicValue, bt, component, goroutineName)
	reportPanicToErrorService(ctx, panicValue, bt, component, goroutineName)

	ExecuteMessage(loc, bt, recoveredMessage(panicValue, component, goroutineName))
}

// panicSite drops the frames above the panicking call. While a deferred
// function runs, the stack reads: deferred helpers, runtime.gopanic, any
// runtime frames that raised the panic, then the faulting function.
func panicSite(bt backtrace.Backtrace) (location.SourceLocation, backtrace.Backtrace) {
	start := 0

	for i, f := range bt {
		if f.Name == "runtime.gopanic" {
			start = i + 1

			for start < len(bt) && strings.HasPrefix(bt[start].Name, "runtime.") {
				start++
			}

			break
		}
	}

	if start >= len(bt) {
		start = 0
	}

	bt = bt[start:]
	if len(bt) == 0 {
		return location.SourceLocation{}, bt
	}

	return location.New(bt[0].File, bt[0].Line, 0, bt[0].Name), bt
}

func recoveredMessage(panicValue any, component, goroutineName string) string {
	where := component
	if goroutineName != "" {
		if where != "" {
			where += "/"
		}

		where += goroutineName
	}

	if where == "" {
		return "recovered panic: " + formatPanicValue(panicValue)
	}

	return "recovered panic in " + where + ": " + formatPanicValue(panicValue)
}
