package panics

import (
	"context"
	"regexp"
	"strconv"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/location"
	"github.com/LerianStudio/lib-invariant/invariant/log"
)

var escapeSequence = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// LoggingHandler logs every failure at error level and then calls next.
// A nil next delegates to the default handler; a nil logger returns next
// unchanged.
func LoggingHandler(logger log.Logger, next Handler) Handler {
	if next == nil {
		next = defaultHandler
	}

	if logger == nil {
		return next
	}

	return func(message string, loc location.SourceLocation, bt backtrace.Backtrace) {
		fields := []log.Field{
			log.String("panic_id", newPanicID()),
			log.String("location", loc.String()),
		}

		if IsProductionMode() {
			fields = append(fields, log.Bool("redacted", true))
		} else {
			fields = append(fields,
				log.Strings("frames", frameSummaries(bt)),
				log.String("message", escapeSequence.ReplaceAllString(message, "")),
			)
		}

		logger.Log(context.Background(), log.LevelError, "invariant violated", fields...)

		next(message, loc, bt)
	}
}

func frameSummaries(bt backtrace.Backtrace) []string {
	out := make([]string, 0, len(bt))

	for _, f := range bt {
		if f.Empty() {
			continue
		}

		summary := f.Name
		if summary == "" {
			summary = "[no info]"
		}

		if f.File != "" {
			summary += " " + f.File
			if f.Line > 0 {
				summary += ":" + strconv.Itoa(f.Line)
			}
		}

		out = append(out, summary)
	}

	return out
}
