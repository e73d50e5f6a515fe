package backtrace

import (
	"runtime"
	"sync/atomic"
)

// DefaultMaxDepth bounds the number of frames RuntimeProvider captures when
// MaxDepth is not set.
const DefaultMaxDepth = 64

// Frame is one entry of a call stack. Any field may be missing.
type Frame struct {
	Address uintptr
	Name    string
	File    string
	Line    int
}

// Empty reports whether the frame carries nothing worth printing.
func (f Frame) Empty() bool {
	return f.Address == 0 && f.Name == "" && f.File == ""
}

// Backtrace is an ordered call stack, innermost frame first.
type Backtrace []Frame

// Len returns the number of non-empty frames.
func (bt Backtrace) Len() int {
	n := 0

	for _, f := range bt {
		if !f.Empty() {
			n++
		}
	}

	return n
}

// Provider captures the current goroutine's call stack.
type Provider interface {
	// Capture returns the stack of its caller; skip drops that many more
	// frames from the innermost end.
	Capture(skip int) Backtrace
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(skip int) Backtrace

// Capture calls f.
func (f ProviderFunc) Capture(skip int) Backtrace {
	return f(skip + 1)
}

// RuntimeProvider symbolizes frames with the Go runtime.
type RuntimeProvider struct {
	MaxDepth int
}

// Capture implements Provider.
func (p RuntimeProvider) Capture(skip int) Backtrace {
	depth := p.MaxDepth
	if depth <= 0 {
		depth = DefaultMaxDepth
	}

	pcs := make([]uintptr, depth)

	// runtime.Callers, Capture, then the caller.
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	bt := make(Backtrace, 0, n)

	for {
		frame, more := frames.Next()

		bt = append(bt, Frame{
			Address: frame.PC,
			Name:    frame.Function,
			File:    frame.File,
			Line:    frame.Line,
		})

		if !more {
			break
		}
	}

	return bt
}

var provider atomic.Pointer[Provider]

func init() {
	SetProvider(nil)
}

// SetProvider replaces the process-wide provider. nil restores the default.
func SetProvider(p Provider) {
	if p == nil {
		p = RuntimeProvider{}
	}

	provider.Store(&p)
}

// DefaultProvider returns the process-wide provider.
func DefaultProvider() Provider {
	return *provider.Load()
}

// Capture returns the caller's stack using the process-wide provider.
func Capture(skip int) Backtrace {
	return DefaultProvider().Capture(skip + 1)
}
