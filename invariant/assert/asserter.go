package assert

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/decompose"
	"github.com/LerianStudio/lib-invariant/invariant/format"
	"github.com/LerianStudio/lib-invariant/invariant/internal/nilcheck"
	"github.com/LerianStudio/lib-invariant/invariant/location"
	"github.com/LerianStudio/lib-invariant/invariant/log"
	"github.com/LerianStudio/lib-invariant/invariant/panics"
)

// Asserter evaluates invariants within one component and operation, and
// emits telemetry on failure.
type Asserter struct {
	ctx       context.Context
	logger    log.Logger
	component string
	operation string
}

// ErrAssertionFailed is the sentinel error for failed assertions.
var ErrAssertionFailed = errors.New("assertion failed")

// AssertionError represents a failed assertion with rich context.
type AssertionError struct {
	Assertion string
	Message   string
	Component string
	Operation string
	Details   string
}

// Error returns the formatted assertion failure message.
func (entry *AssertionError) Error() string {
	if entry == nil {
		return ErrAssertionFailed.Error()
	}

	if entry.Details == "" {
		return "assertion failed: " + entry.Message
	}

	return "assertion failed: " + entry.Message + "\n" + entry.Details
}

// Unwrap returns the sentinel assertion error for errors.Is.
func (entry *AssertionError) Unwrap() error {
	return ErrAssertionFailed
}

// New creates an Asserter. component and operation label its telemetry.
// A nil logger writes failures to standard error.
//
//nolint:contextcheck // Intentionally creates a fallback context when nil is passed
func New(ctx context.Context, logger log.Logger, component, operation string) *Asserter {
	if ctx == nil {
		ctx = context.Background()
	}

	return &Asserter{
		ctx:       ctx,
		logger:    logger,
		component: component,
		operation: operation,
	}
}

// That returns an error if ok is false. Use for general-purpose assertions.
//
// Example:
//
//	if err := asserter.That(ctx, len(items) > 0, "items must not be empty", "count", len(items)); err != nil {
//		return err
//	}
func (asserter *Asserter) That(ctx context.Context, ok bool, msg string, kv ...any) error {
	if ok {
		return nil
	}

	return asserter.fail(ctx, "That", msg, kv...)
}

// NotNil returns an error if v is nil, including typed nils held in an
// interface.
func (asserter *Asserter) NotNil(ctx context.Context, v any, msg string, kv ...any) error {
	if !nilcheck.Interface(v) {
		return nil
	}

	return asserter.fail(ctx, "NotNil", msg, kv...)
}

// NotEmpty returns an error if s is an empty string.
func (asserter *Asserter) NotEmpty(ctx context.Context, s, msg string, kv ...any) error {
	if s != "" {
		return nil
	}

	return asserter.fail(ctx, "NotEmpty", msg, kv...)
}

// NoError returns an error if err is not nil. The error message and type are
// included in the assertion details.
//
// Example:
//
//	if err := asserter.NoError(ctx, err, "compute must succeed", "input", input); err != nil {
//		return err
//	}
func (asserter *Asserter) NoError(ctx context.Context, err error, msg string, kv ...any) error {
	if err == nil {
		return nil
	}

	// error and error_type, as key-value pairs.
	const errorKVPairs = 4

	kvWithError := make([]any, 0, len(kv)+errorKVPairs)
	kvWithError = append(kvWithError, "error", err.Error())
	kvWithError = append(kvWithError, "error_type", fmt.Sprintf("%T", err))
	kvWithError = append(kvWithError, kv...)

	return asserter.fail(ctx, "NoError", msg, kvWithError...)
}

// Never always returns an error. Use for code paths that should be unreachable.
//
//	return asserter.Never(ctx, "unhandled status", "status", status)
func (asserter *Asserter) Never(ctx context.Context, msg string, kv ...any) error {
	return asserter.fail(ctx, "Never", msg, kv...)
}

// Halt terminates the current goroutine if err is not nil. Deferred calls
// still run.
func (asserter *Asserter) Halt(err error) {
	if err != nil {
		runtime.Goexit()
	}
}

// Require is the package-level Require with the asserter's telemetry.
func (asserter *Asserter) Require(ctx context.Context, cond any, msgAndArgs ...any) {
	if expr := decompose.Wrap(cond); !expr.Passed() {
		asserter.dispatch(ctx, KindRequirement, "Require", expr, msgAndArgs)
	}
}

// Fatal is the package-level Fatal with the asserter's telemetry.
func (asserter *Asserter) Fatal(ctx context.Context, cond any, msgAndArgs ...any) {
	if expr := decompose.Wrap(cond); !expr.Passed() {
		asserter.dispatch(ctx, KindFatal, "Fatal", expr, msgAndArgs)
	}
}

// Precondition is the package-level Precondition with the asserter's
// telemetry.
func (asserter *Asserter) Precondition(ctx context.Context, cond any, msgAndArgs ...any) {
	if skipped(KindPrecondition) {
		return
	}

	if expr := decompose.Wrap(cond); !expr.Passed() {
		asserter.dispatch(ctx, KindPrecondition, "Precondition", expr, msgAndArgs)
	}
}

func (asserter *Asserter) dispatch(ctx context.Context, kind Kind, call string, expr decompose.Expression, msgAndArgs []any) {
	// dispatch, then the exported method.
	loc := location.Current(2)
	bt := backtrace.Capture(2)

	ctx, _, _, _ = asserter.values(ctx)
	if asserter == nil {
		asserter = &Asserter{ctx: ctx}
	}

	dispatch(ctx, site{kind: kind, call: call, arg: 1}, expr, format.Message(msgAndArgs...), loc, bt, asserter)
}

func (asserter *Asserter) logFailure(ctx context.Context, kind Kind, condition, message string, loc location.SourceLocation) {
	fields := []log.Field{
		log.String("assertion", kind.String()),
		log.String("condition", condition),
		log.String("location", loc.String()),
	}

	if message != "" {
		fields = append(fields, log.String("message", message))
	}

	logAssertion(ctx, asserter.logger, "assertion failed", fields...)
}

const maxValueLength = 200

// truncateValue truncates long values for logging safety.
func truncateValue(v any) string {
	s := fmt.Sprintf("%v", v)
	if len(s) <= maxValueLength {
		return s
	}

	return s[:maxValueLength] + "... (truncated " + strconv.Itoa(len(s)-maxValueLength) + " chars)"
}

func (asserter *Asserter) fail(ctx context.Context, assertion, msg string, kv ...any) error {
	ctx, logger, component, operation := asserter.values(ctx)
	contextPairs := withContextPairs(assertion, component, operation, kv)
	details := formatKeyValueLines(contextPairs)

	var stack string
	if shouldIncludeStack() {
		// fail, then the exported method.
		stack = backtrace.Capture(2).String()
	}

	fields := keyValueFields(contextPairs)
	if stack != "" {
		fields = append(fields, log.String("stack", stack))
	}

	logAssertion(ctx, logger, "ASSERTION FAILED: "+msg, fields...)
	recordAssertionObservability(ctx, assertionEvent{
		assertion: assertion,
		message:   msg,
		stack:     stack,
		component: component,
		operation: operation,
	})

	return &AssertionError{
		Assertion: assertion,
		Message:   msg,
		Component: component,
		Operation: operation,
		Details:   details,
	}
}

func (asserter *Asserter) values(ctx context.Context) (context.Context, log.Logger, string, string) {
	if asserter == nil {
		if ctx == nil {
			ctx = context.Background()
		}

		return ctx, nil, "", ""
	}

	if ctx == nil {
		ctx = asserter.ctx
	}

	if ctx == nil {
		ctx = context.Background()
	}

	return ctx, asserter.logger, asserter.component, asserter.operation
}

func shouldIncludeStack() bool {
	if panics.IsProductionMode() {
		return false
	}

	// Fallback for processes that never configured production mode.
	env := strings.TrimSpace(os.Getenv("ENV"))
	goEnv := strings.TrimSpace(os.Getenv("GO_ENV"))

	return !strings.EqualFold(env, "production") && !strings.EqualFold(goEnv, "production")
}

// contextPairsCapacity is the capacity for the fixed context pairs (assertion, component, operation).
const contextPairsCapacity = 6

func withContextPairs(assertion, component, operation string, kv []any) []any {
	contextPairs := make([]any, 0, len(kv)+contextPairsCapacity)
	contextPairs = append(contextPairs, "assertion", assertion)

	if component != "" {
		contextPairs = append(contextPairs, "component", component)
	}

	if operation != "" {
		contextPairs = append(contextPairs, "operation", operation)
	}

	return append(contextPairs, kv...)
}

func pairValue(kv []any, i int) any {
	if i+1 < len(kv) {
		return kv[i+1]
	}

	return "MISSING_VALUE"
}

func formatKeyValueLines(kv []any) string {
	if len(kv) == 0 {
		return ""
	}

	var sb strings.Builder

	for i := 0; i < len(kv); i += 2 {
		if i > 0 {
			sb.WriteString("\n")
		}

		fmt.Fprintf(&sb, "    %v=%v", kv[i], truncateValue(pairValue(kv, i)))
	}

	return sb.String()
}

func keyValueFields(kv []any) []log.Field {
	fields := make([]log.Field, 0, (len(kv)+1)/2)

	for i := 0; i < len(kv); i += 2 {
		fields = append(fields, log.String(fmt.Sprint(kv[i]), truncateValue(pairValue(kv, i))))
	}

	return fields
}

var stderrLogger = log.NewGoLogger(os.Stderr, log.LevelError)

func logAssertion(ctx context.Context, logger log.Logger, msg string, fields ...log.Field) {
	if logger == nil {
		logger = stderrLogger
	}

	logger.Log(ctx, log.LevelError, msg, fields...)
}
