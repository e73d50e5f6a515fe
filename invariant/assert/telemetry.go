package assert

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	constant "github.com/LerianStudio/lib-invariant/invariant/constants"
	"github.com/LerianStudio/lib-invariant/invariant/log"
	"github.com/LerianStudio/lib-invariant/invariant/opentelemetry/metrics"
	"github.com/LerianStudio/lib-invariant/invariant/panics"
)

// AssertionSpanEventName is the event name used when recording assertion failures on spans.
const AssertionSpanEventName = constant.EventAssertionFailed

// AssertionMetrics records the assertion_failed_total counter.
type AssertionMetrics struct {
	factory *metrics.MetricsFactory
	logger  log.Logger
}

var (
	assertionMetricsInstance *AssertionMetrics
	assertionMetricsMu       sync.RWMutex
)

// InitAssertionMetrics enables the failed-assertion counter. Call it once
// at startup, after telemetry is initialized. The optional logger receives
// diagnostics when recording fails.
func InitAssertionMetrics(factory *metrics.MetricsFactory, logger ...log.Logger) {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	if factory == nil || assertionMetricsInstance != nil {
		return
	}

	var l log.Logger
	if len(logger) > 0 {
		l = logger[0]
	}

	assertionMetricsInstance = &AssertionMetrics{factory: factory, logger: l}
}

// GetAssertionMetrics returns the AssertionMetrics instance, or nil when
// InitAssertionMetrics has not been called.
func GetAssertionMetrics() *AssertionMetrics {
	assertionMetricsMu.RLock()
	defer assertionMetricsMu.RUnlock()

	return assertionMetricsInstance
}

// ResetAssertionMetrics clears the instance. Intended for tests.
func ResetAssertionMetrics() {
	assertionMetricsMu.Lock()
	defer assertionMetricsMu.Unlock()

	assertionMetricsInstance = nil
}

// RecordAssertionFailed increments assertion_failed_total with the
// component, operation and assertion labels.
func (am *AssertionMetrics) RecordAssertionFailed(
	ctx context.Context,
	component, operation, assertion string,
) {
	if am == nil || am.factory == nil {
		return
	}

	counter, err := am.factory.Counter(metrics.MetricAssertionFailed)
	if err != nil {
		log.SafeError(am.logger, ctx, "failed to create assertion metric counter", err, panics.IsProductionMode())
		return
	}

	err = counter.
		WithLabels(map[string]string{
			"component": constant.SanitizeMetricLabel(component),
			"operation": constant.SanitizeMetricLabel(operation),
			"assertion": constant.SanitizeMetricLabel(assertion),
		}).
		AddOne(ctx)
	if err != nil {
		log.SafeError(am.logger, ctx, "failed to record assertion metric", err, panics.IsProductionMode())
	}
}

// assertionEvent is one failure as seen by telemetry. condition and
// location are set for failures that reach the panic handler.
type assertionEvent struct {
	assertion string
	message   string
	condition string
	location  string
	stack     string
	component string
	operation string
}

func recordAssertionObservability(ctx context.Context, ev assertionEvent) {
	if am := GetAssertionMetrics(); am != nil {
		am.RecordAssertionFailed(ctx, ev.component, ev.operation, ev.assertion)
	}

	recordAssertionToSpan(ctx, ev)
}

func recordAssertionToSpan(ctx context.Context, ev assertionEvent) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String(constant.AttrAssertionKind, ev.assertion),
		attribute.String(constant.AttrAssertionMessage, ev.message),
	}

	if ev.condition != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionCondition, ev.condition))
	}

	if ev.location != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionLocation, ev.location))
	}

	if ev.component != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionComponent, ev.component))
	}

	if ev.operation != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionOperation, ev.operation))
	}

	if ev.stack != "" {
		attrs = append(attrs, attribute.String(constant.AttrAssertionStack, ev.stack))
	}

	span.AddEvent(AssertionSpanEventName, trace.WithAttributes(attrs...))
	span.RecordError(fmt.Errorf("%w: %s", ErrAssertionFailed, ev.message))
	span.SetStatus(codes.Error, assertionStatusMessage(ev.component, ev.operation))
}

func assertionStatusMessage(component, operation string) string {
	switch {
	case component != "" && operation != "":
		return fmt.Sprintf("assertion failed in %s/%s", component, operation)
	case component != "":
		return "assertion failed in " + component
	case operation != "":
		return "assertion failed in " + operation
	default:
		return "assertion failed"
	}
}
