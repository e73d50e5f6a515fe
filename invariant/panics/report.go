package panics

import (
	"strings"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/LerianStudio/lib-invariant/invariant/location"
	"github.com/LerianStudio/lib-invariant/invariant/tokens"
)

const reportHeader = "Panic occurred at "

// Report renders the diagnostic written by the default handler:
//
//	Panic occurred at <location>:
//
//	<message>
//
//	Backtrace:
//	<frames>
//
// The message paragraph is omitted when message is empty.
func Report(message string, loc location.SourceLocation, bt backtrace.Backtrace, style highlight.Style) string {
	var b strings.Builder

	b.WriteString(highlight.Sprint(style, highlight.GetColor(tokens.Error), reportHeader))
	b.WriteString(loc.Format(style))
	b.WriteString(":\n\n")

	if message != "" {
		b.WriteString(message)
		b.WriteString("\n\n")
	}

	b.WriteString("Backtrace:\n")
	b.WriteString(backtrace.Format(bt, style))

	return b.String()
}
