package panics

import (
	"errors"
	"sync/atomic"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/format"
	"github.com/LerianStudio/lib-invariant/invariant/location"
)

// Handler receives a failed invariant. It is not expected to return; when
// it does, the caller continues after the failed check.
type Handler func(message string, loc location.SourceLocation, bt backtrace.Backtrace)

// ErrNilHandler is returned by SetHandler when given a nil handler.
var ErrNilHandler = errors.New("panic handler cannot be nil")

var current atomic.Pointer[Handler]

func init() {
	h := Handler(defaultHandler)
	current.Store(&h)
}

// SetHandler installs h as the process-wide handler. A nil h is rejected
// and the installed handler stays in place.
func SetHandler(h Handler) error {
	if h == nil {
		return ErrNilHandler
	}

	current.Store(&h)

	return nil
}

// GetHandler returns the installed handler. It is never nil.
func GetHandler() Handler {
	return *current.Load()
}

// DefaultHandler returns the handler installed at startup.
func DefaultHandler() Handler {
	return defaultHandler
}

// IsDebugBuild reports whether the binary was built without the release tag.
func IsDebugBuild() bool {
	return debugBuild
}

// Execute invokes the installed handler without a message.
func Execute(loc location.SourceLocation, bt backtrace.Backtrace) {
	ExecuteMessage(loc, bt, "")
}

// ExecuteMessage invokes the installed handler. The handler is loaded once.
func ExecuteMessage(loc location.SourceLocation, bt backtrace.Backtrace, message string) {
	h := *current.Load()
	h(message, loc, bt)
}

// Executef formats the message with format.Sprintf and invokes the
// installed handler.
func Executef(loc location.SourceLocation, bt backtrace.Backtrace, msg string, args ...any) {
	ExecuteMessage(loc, bt, format.Sprintf(msg, args...))
}

// Panic reports an unconditional failure at the caller's location.
//
//	panics.Panic()
//	panics.Panic("unreachable state")
//	panics.Panic("unexpected opcode {:#x} at {}", op, pc)
func Panic(msgAndArgs ...any) {
	ExecuteMessage(location.Current(1), backtrace.Capture(1), format.Message(msgAndArgs...))
}
