package constant

// TelemetrySDKName identifies this library in OTEL instrumentation scopes.
const TelemetrySDKName = "lib-invariant/opentelemetry"

// MaxMetricLabelLength is the maximum length for metric labels to prevent cardinality explosion.
// Used by the assert and panics packages for label sanitization.
const MaxMetricLabelLength = 64

// Telemetry attribute key prefixes.
const (
	// AttrPrefixAssertion is the prefix for assertion event attributes.
	AttrPrefixAssertion = "assertion."
	// AttrPrefixPanic is the prefix for panic event attributes.
	AttrPrefixPanic = "panic."
)

// Span event attribute keys.
const (
	AttrAssertionKind      = AttrPrefixAssertion + "kind"
	AttrAssertionCondition = AttrPrefixAssertion + "condition"
	AttrAssertionMessage   = AttrPrefixAssertion + "message"
	AttrAssertionComponent = AttrPrefixAssertion + "component"
	AttrAssertionOperation = AttrPrefixAssertion + "operation"
	AttrAssertionLocation  = AttrPrefixAssertion + "location"
	AttrAssertionStack     = AttrPrefixAssertion + "stack"

	AttrPanicValue         = AttrPrefixPanic + "value"
	AttrPanicStack         = AttrPrefixPanic + "stack"
	AttrPanicComponent     = AttrPrefixPanic + "component"
	AttrPanicGoroutineName = AttrPrefixPanic + "goroutine_name"
)

// Telemetry metric names.
const (
	// MetricPanicRecoveredTotal is the counter metric for recovered panics.
	MetricPanicRecoveredTotal = "panic_recovered_total"
	// MetricAssertionFailedTotal is the counter metric for failed assertions.
	MetricAssertionFailedTotal = "assertion_failed_total"
)

// Telemetry event names.
const (
	// EventAssertionFailed is the span event name for assertion failures.
	EventAssertionFailed = "assertion.failed"
	// EventPanicRecovered is the span event name for recovered panics.
	EventPanicRecovered = "panic.recovered"
)

// SanitizeMetricLabel truncates a label value to MaxMetricLabelLength
// to prevent metric cardinality explosion in OTEL backends.
func SanitizeMetricLabel(value string) string {
	if len(value) > MaxMetricLabelLength {
		return value[:MaxMetricLabelLength]
	}

	return value
}
