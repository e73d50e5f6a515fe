// Package invariant configures the assertion and panic framework from the
// environment.
//
// The framework lives in subpackages: assert for the checks, panics for the
// process-wide failure handler, decompose for conditions that keep their
// operands, and highlight, location and backtrace for the diagnostic.
// This package only wires them together at startup:
//
//	if _, err := invariant.Setup(logger); err != nil {
//		return err
//	}
//
// Settings are read from INVARIANT_COLOR, INVARIANT_PALETTE_FILE,
// INVARIANT_PRODUCTION, INVARIANT_CONTRACTS_DEBUG_ONLY and
// INVARIANT_BACKTRACE_DEPTH.
package invariant
