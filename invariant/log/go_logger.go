package log

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"strings"
)

// controlCharReplacer escapes control characters that could forge extra
// log entries (CWE-117). Multi-line panic reports stay on one line.
var controlCharReplacer = strings.NewReplacer(
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func sanitizeString(s string) string {
	return controlCharReplacer.Replace(s)
}

// GoLogger implements Logger on top of the standard library logger.
//
// Lines look like `[warn] message key=value group.key=value`. String
// values and the message are sanitized.
type GoLogger struct {
	Level  Level
	output *stdlog.Logger
	fields []Field
	group  string
}

// NewGoLogger returns a GoLogger writing to w. A nil writer uses the
// standard library's default logger.
func NewGoLogger(w io.Writer, level Level) *GoLogger {
	l := &GoLogger{Level: level}
	if w != nil {
		l.output = stdlog.New(w, "", 0)
	}

	return l
}

// Enabled reports whether entries at level are emitted.
func (l *GoLogger) Enabled(level Level) bool {
	if l == nil {
		return false
	}

	return l.Level >= level
}

// Log writes one entry when level is enabled.
func (l *GoLogger) Log(_ context.Context, level Level, msg string, fields ...Field) {
	if !l.Enabled(level) {
		return
	}

	l.logger().Print(l.format(level, msg, fields))
}

// With returns a child logger that adds fields to every entry.
//
//nolint:ireturn
func (l *GoLogger) With(fields ...Field) Logger {
	if l == nil {
		return &GoLogger{}
	}

	child := l.clone()
	for _, f := range fields {
		child.fields = append(child.fields, Field{Key: child.qualify(f.Key), Value: f.Value})
	}

	return child
}

// WithGroup returns a child logger that prefixes later field keys with name.
//
//nolint:ireturn
func (l *GoLogger) WithGroup(name string) Logger {
	if l == nil {
		return &GoLogger{}
	}

	child := l.clone()
	if name != "" {
		child.group = child.qualify(name)
	}

	return child
}

// Sync is a no-op; the standard logger writes synchronously.
func (l *GoLogger) Sync(_ context.Context) error { return nil }

func (l *GoLogger) clone() *GoLogger {
	fields := make([]Field, len(l.fields), len(l.fields)+4)
	copy(fields, l.fields)

	return &GoLogger{
		Level:  l.Level,
		output: l.output,
		fields: fields,
		group:  l.group,
	}
}

func (l *GoLogger) qualify(key string) string {
	if l.group == "" {
		return key
	}

	return l.group + "." + key
}

func (l *GoLogger) logger() *stdlog.Logger {
	if l.output != nil {
		return l.output
	}

	return stdlog.Default()
}

func (l *GoLogger) format(level Level, msg string, fields []Field) string {
	var b strings.Builder

	b.WriteString("[")
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(sanitizeString(msg))

	for _, f := range l.fields {
		writeField(&b, f.Key, f.Value)
	}

	for _, f := range fields {
		writeField(&b, l.qualify(f.Key), f.Value)
	}

	return b.String()
}

func writeField(b *strings.Builder, key string, value any) {
	b.WriteString(" ")
	b.WriteString(sanitizeString(key))
	b.WriteString("=")

	switch v := value.(type) {
	case string:
		b.WriteString(sanitizeString(v))
	case error:
		if v == nil {
			b.WriteString("<nil>")
			return
		}

		b.WriteString(sanitizeString(v.Error()))
	default:
		b.WriteString(sanitizeString(fmt.Sprint(v)))
	}
}
