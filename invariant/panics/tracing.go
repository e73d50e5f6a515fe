package panics

import (
	"context"
	"errors"
	"fmt"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	constant "github.com/LerianStudio/lib-invariant/invariant/constants"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// PanicSpanEventName is the span event added for every recovered panic.
const PanicSpanEventName = constant.EventPanicRecovered

// ErrPanic is wrapped by every error derived from a recovered panic.
var ErrPanic = errors.New("panic")

// RecordPanicToSpan records a recovered panic on the span in ctx: a
// panic.recovered event, the error, and an Error status.
func RecordPanicToSpan(ctx context.Context, panicValue any, bt backtrace.Backtrace, goroutineName string) {
	recordPanicToSpan(ctx, panicValue, bt, "", goroutineName)
}

// RecordPanicToSpanWithComponent is RecordPanicToSpan with a component
// attribute.
func RecordPanicToSpanWithComponent(
	ctx context.Context,
	panicValue any,
	bt backtrace.Backtrace,
	component, goroutineName string,
) {
	recordPanicToSpan(ctx, panicValue, bt, component, goroutineName)
}

func recordPanicToSpan(ctx context.Context, panicValue any, bt backtrace.Backtrace, component, goroutineName string) {
	if ctx == nil {
		return
	}

	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	value, stack := formatPanicValue(panicValue), bt.String()
	if IsProductionMode() {
		value, stack = redacted, redacted
	}

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrPanicValue, value),
		attribute.String(constant.AttrPanicStack, stack),
		attribute.String(constant.AttrPanicGoroutineName, goroutineName),
	}

	where := goroutineName
	if component != "" {
		attrs = append(attrs, attribute.String(constant.AttrPanicComponent, component))
		where = component + "/" + goroutineName
	}

	span.AddEvent(PanicSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("%w: %s", ErrPanic, value))
	span.SetStatus(codes.Error, "panic recovered in "+where)
}
