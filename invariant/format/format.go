// Package format implements the brace-style message formatting used for
// assertion context messages.
//
//	format.Sprintf("expected {} items, got {}", 3, 4)
//	format.Sprintf("{1} before {0}", "a", "b")
//	format.Sprintf("{:x} in hex", 255)
//
// "{{" and "}}" produce literal braces. A % in the format is literal text;
// fmt verbs only apply inside a placeholder.
package format

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Sprintf substitutes args into the placeholders of format.
//
// "{}" takes the next sequential argument and "{N}" the N-th. Either may
// carry a fmt verb after a colon, as in "{:08.3f}" or "{2:q}". A placeholder
// without a matching argument is left in the output as written. Arguments
// never referenced are appended as "%!(EXTRA type=value, ...)".
func Sprintf(format string, args ...any) string {
	if len(args) == 0 && !strings.ContainsAny(format, "{}") {
		return format
	}

	var b strings.Builder

	b.Grow(len(format) + 16*len(args))

	used := make([]bool, len(args))
	next := 0

	for i := 0; i < len(format); {
		c := format[i]

		switch {
		case c == '{' && i+1 < len(format) && format[i+1] == '{':
			b.WriteByte('{')
			i += 2
		case c == '}' && i+1 < len(format) && format[i+1] == '}':
			b.WriteByte('}')
			i += 2
		case c == '{':
			end := strings.IndexByte(format[i:], '}')
			if end < 0 {
				b.WriteString(format[i:])
				i = len(format)

				continue
			}

			placeholder := format[i : i+end+1]
			i += end + 1

			idx, verb, ok := parsePlaceholder(placeholder[1:len(placeholder)-1], &next)
			if !ok || idx >= len(args) {
				b.WriteString(placeholder)
				continue
			}

			used[idx] = true

			fmt.Fprintf(&b, verb, args[idx])
		default:
			b.WriteByte(c)
			i++
		}
	}

	writeExtra(&b, args, used)

	return b.String()
}

func parsePlaceholder(body string, next *int) (int, string, bool) {
	position, verb, hasVerb := strings.Cut(body, ":")

	if !hasVerb {
		verb = "v"
	} else if verb == "" {
		return 0, "", false
	}

	if position == "" {
		idx := *next
		*next++

		return idx, "%" + verb, true
	}

	idx, err := strconv.Atoi(position)
	if err != nil || idx < 0 {
		return 0, "", false
	}

	return idx, "%" + verb, true
}

func writeExtra(b *strings.Builder, args []any, used []bool) {
	first := true

	for i, arg := range args {
		if used[i] {
			continue
		}

		if first {
			b.WriteString("%!(EXTRA ")

			first = false
		} else {
			b.WriteString(", ")
		}

		if arg == nil {
			b.WriteString("<nil>")
			continue
		}

		b.WriteString(reflect.TypeOf(arg).String())
		b.WriteByte('=')
		fmt.Fprintf(b, "%v", arg)
	}

	if !first {
		b.WriteByte(')')
	}
}

// Message renders an optional message argument list:
//
//   - nothing yields ""
//   - a single string is returned as is
//   - a single non-string value is formatted with %+v
//   - a leading string is a Sprintf format for the rest
//   - otherwise each value is formatted with %v, separated by spaces
func Message(msgAndArgs ...any) string {
	switch len(msgAndArgs) {
	case 0:
		return ""
	case 1:
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}

		return fmt.Sprintf("%+v", msgAndArgs[0])
	}

	if f, ok := msgAndArgs[0].(string); ok {
		return Sprintf(f, msgAndArgs[1:]...)
	}

	parts := make([]string, len(msgAndArgs))
	for i, arg := range msgAndArgs {
		parts[i] = fmt.Sprintf("%v", arg)
	}

	return strings.Join(parts, " ")
}
