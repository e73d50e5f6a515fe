package panics

import (
	"context"
	"fmt"
	"sync"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/google/uuid"
)

// ErrorReporter forwards recovered panics to an external error tracking
// service. Implementations must be safe for concurrent use and must not
// panic.
type ErrorReporter interface {
	// CaptureException reports err. tags carries component, goroutine_name,
	// panic_id and, outside production mode, stack_trace.
	CaptureException(ctx context.Context, err error, tags map[string]string)
}

var (
	errorReporterInstance ErrorReporter
	errorReporterMu       sync.RWMutex
)

// SetErrorReporter configures the reporter used by the recovery helpers.
// Pass nil to disable reporting.
func SetErrorReporter(reporter ErrorReporter) {
	errorReporterMu.Lock()
	defer errorReporterMu.Unlock()

	errorReporterInstance = reporter
}

// GetErrorReporter returns the configured reporter, or nil.
func GetErrorReporter() ErrorReporter {
	errorReporterMu.RLock()
	defer errorReporterMu.RUnlock()

	return errorReporterInstance
}

var (
	productionMode   bool
	productionModeMu sync.RWMutex
)

const (
	redactedPanicMsg = "panic recovered (details redacted)"
	redacted         = "[redacted]"
	maxStackLen      = 4096
)

// SetProductionMode toggles redaction. In production mode panic values and
// backtraces are withheld from error reports, span events and panic logs.
func SetProductionMode(enabled bool) {
	productionModeMu.Lock()
	defer productionModeMu.Unlock()

	productionMode = enabled
}

// IsProductionMode returns whether production mode is enabled.
func IsProductionMode() bool {
	productionModeMu.RLock()
	defer productionModeMu.RUnlock()

	return productionMode
}

func reportPanicToErrorService(
	ctx context.Context,
	panicValue any,
	bt backtrace.Backtrace,
	component, goroutineName string,
) {
	reporter := GetErrorReporter()
	if reporter == nil {
		return
	}

	isProduction := IsProductionMode()

	tags := map[string]string{
		"component":      component,
		"goroutine_name": goroutineName,
		"panic_type":     "recovered",
		"panic_id":       newPanicID(),
	}

	if !isProduction && len(bt) > 0 {
		stack := bt.String()
		if len(stack) > maxStackLen {
			stack = stack[:maxStackLen] + "\n...[truncated]"
		}

		tags["stack_trace"] = stack
	}

	reporter.CaptureException(ctx, toPanicError(panicValue, isProduction), tags)
}

// panicError carries a recovered panic value as an error.
type panicError struct {
	message string
	cause   error
}

func (e *panicError) Error() string {
	return e.message
}

func (e *panicError) Unwrap() []error {
	if e.cause != nil {
		return []error{ErrPanic, e.cause}
	}

	return []error{ErrPanic}
}

func toPanicError(panicValue any, isProduction bool) error {
	if isProduction {
		return &panicError{message: redactedPanicMsg}
	}

	if err, ok := panicValue.(error); ok {
		return &panicError{message: err.Error(), cause: err}
	}

	if message, ok := panicValue.(string); ok {
		return &panicError{message: message}
	}

	return &panicError{message: "panic: " + formatPanicValue(panicValue)}
}

func formatPanicValue(value any) string {
	if value == nil {
		return "<nil>"
	}

	switch val := value.(type) {
	case string:
		return val
	case error:
		return val.Error()
	default:
		return fmt.Sprintf("%v", value)
	}
}

// newPanicID returns a time-ordered identifier that correlates the log
// entry, the error report and the span of one panic.
func newPanicID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}
