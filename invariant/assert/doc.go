// Package assert checks invariants and reports failures through the panic
// handler installed in package panics.
//
// The surface functions take a condition and an optional message:
//
//	assert.Require(len(queue) > 0)
//	assert.Precondition(decompose.Capture(n).Ge(0), "n must be non-negative, got {}", n)
//	defer assert.Postcondition(func() any { return decompose.Capture(balance).Ge(0) }).Check()
//
// A failure produces one diagnostic holding the condition as written at
// the call site, the evaluated operands when the condition was built with
// decompose, and the formatted message. The condition text is read from
// the caller's source file; when it is unavailable, as with binaries built
// with -trimpath, the evaluated rendering is used instead.
//
// Debug checks disappear in builds tagged release. Contract checks
// (Precondition, Postcondition) follow them once SetContractsDebugOnly(true)
// is in effect. Condition arguments are still evaluated by Go in every
// build; only the check is skipped.
//
// Asserter binds checks to a context, a logger and telemetry labels. Its
// That, NotNil, NotEmpty, NoError and Never methods return an error
// wrapping ErrAssertionFailed instead of invoking the handler.
package assert
