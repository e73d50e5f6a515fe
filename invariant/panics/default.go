package panics

import (
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/LerianStudio/lib-invariant/invariant/location"
)

// ExitCode is the status the default handler exits with, the same status
// the Go runtime uses for an unrecovered panic.
const ExitCode = 2

var (
	// outputMu keeps concurrent reports from interleaving.
	outputMu sync.Mutex
	stderr   io.Writer = os.Stderr

	trap = runtime.Breakpoint
	exit = os.Exit
)

func defaultHandler(message string, loc location.SourceLocation, bt backtrace.Backtrace) {
	outputMu.Lock()
	_, _ = io.WriteString(stderr, Report(message, loc, bt, highlight.StyleFor(stderr)))
	outputMu.Unlock()

	if IsDebugBuild() {
		trap()
	}

	exit(ExitCode)
}
