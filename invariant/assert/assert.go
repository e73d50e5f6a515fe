package assert

import (
	"context"
	"os"
	"sync/atomic"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/decompose"
	"github.com/LerianStudio/lib-invariant/invariant/format"
	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/LerianStudio/lib-invariant/invariant/location"
	"github.com/LerianStudio/lib-invariant/invariant/panics"
)

var contractsDebugOnly atomic.Bool

// SetContractsDebugOnly makes Precondition and Postcondition behave like
// Debug: skipped in release builds. It has no effect in debug builds.
func SetContractsDebugOnly(enabled bool) {
	contractsDebugOnly.Store(enabled)
}

// ContractsDebugOnly reports the value set by SetContractsDebugOnly.
func ContractsDebugOnly() bool {
	return contractsDebugOnly.Load()
}

func skipped(kind Kind) bool {
	if debugBuild {
		return false
	}

	return kind == KindDebug || (kind.IsContract() && contractsDebugOnly.Load())
}

// Debug checks cond in debug builds only.
func Debug(cond any, msgAndArgs ...any) {
	if !debugBuild {
		return
	}

	if expr := decompose.Wrap(cond); !expr.Passed() {
		fail(context.Background(), site{kind: KindDebug, call: "Debug"}, expr, msgAndArgs, 1)
	}
}

// Require checks cond in every build.
func Require(cond any, msgAndArgs ...any) {
	if expr := decompose.Wrap(cond); !expr.Passed() {
		fail(context.Background(), site{kind: KindRequirement, call: "Require"}, expr, msgAndArgs, 1)
	}
}

// Fatal checks cond in every build. Use it for states the process cannot
// survive.
func Fatal(cond any, msgAndArgs ...any) {
	if expr := decompose.Wrap(cond); !expr.Passed() {
		fail(context.Background(), site{kind: KindFatal, call: "Fatal"}, expr, msgAndArgs, 1)
	}
}

// Precondition checks a function's entry contract.
func Precondition(cond any, msgAndArgs ...any) {
	if skipped(KindPrecondition) {
		return
	}

	if expr := decompose.Wrap(cond); !expr.Passed() {
		fail(context.Background(), site{kind: KindPrecondition, call: "Precondition"}, expr, msgAndArgs, 1)
	}
}

// Guard is a post-condition waiting for its scope to end.
type Guard struct {
	cond       func() any
	msgAndArgs []any
	loc        location.SourceLocation
	call       string
	off        bool
}

// Postcondition returns a Guard whose Check evaluates cond. Defer Check
// directly so it runs when the surrounding function returns:
//
//	defer assert.Postcondition(func() any { return decompose.Capture(n).Ge(0) }).Check()
func Postcondition(cond func() any, msgAndArgs ...any) *Guard {
	return newGuard("Postcondition", cond, msgAndArgs)
}

// Ensure is Postcondition.
func Ensure(cond func() any, msgAndArgs ...any) *Guard {
	return newGuard("Ensure", cond, msgAndArgs)
}

func newGuard(call string, cond func() any, msgAndArgs []any) *Guard {
	if skipped(KindPostcondition) {
		return &Guard{off: true}
	}

	return &Guard{
		cond:       cond,
		msgAndArgs: msgAndArgs,
		// newGuard, then Postcondition or Ensure.
		loc:  location.Current(2),
		call: call,
	}
}

// Check evaluates the post-condition. When the scope is unwinding because
// of a panic the condition is not evaluated and the panic continues with
// the same value.
func (g *Guard) Check() {
	if r := recover(); r != nil {
		panic(r)
	}

	if g == nil || g.off || g.cond == nil {
		return
	}

	expr := decompose.Wrap(g.cond())
	if expr.Passed() {
		return
	}

	s := site{kind: KindPostcondition, call: g.call}
	dispatch(context.Background(), s, expr, format.Message(g.msgAndArgs...), g.loc, backtrace.Capture(1), nil)
}

// site identifies the surface call that failed, so its condition can be
// found in source.
type site struct {
	kind Kind
	call string
	arg  int
}

// fail reports a failed check. skip counts the frames between fail's
// caller and the user code that made the check.
func fail(ctx context.Context, s site, expr decompose.Expression, msgAndArgs []any, skip int) {
	loc := location.Current(skip + 1)
	bt := backtrace.Capture(skip + 1)

	dispatch(ctx, s, expr, format.Message(msgAndArgs...), loc, bt, nil)
}

func dispatch(
	ctx context.Context,
	s site,
	expr decompose.Expression,
	message string,
	loc location.SourceLocation,
	bt backtrace.Backtrace,
	asserter *Asserter,
) {
	condition, column := recoverCondition(loc, s.call, s.arg)
	if condition == "" {
		condition = expr.String()
	}

	if column > 0 {
		loc.Column = column
	}

	var component, operation string
	if asserter != nil {
		component, operation = asserter.component, asserter.operation
		asserter.logFailure(ctx, s.kind, condition, message, loc)
	}

	recordAssertionObservability(ctx, assertionEvent{
		assertion: s.kind.String(),
		message:   message,
		condition: condition,
		location:  loc.String(),
		stack:     stackFor(bt),
		component: component,
		operation: operation,
	})

	style := highlight.StyleFor(os.Stderr)

	panics.ExecuteMessage(loc, bt, Compose(s.kind, condition, expr, message, style))
}

func stackFor(bt backtrace.Backtrace) string {
	if !shouldIncludeStack() {
		return ""
	}

	return bt.String()
}
