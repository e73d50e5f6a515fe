package decompose

import (
	"bytes"
	"encoding"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"

	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/LerianStudio/lib-invariant/invariant/internal/nilcheck"
	"github.com/LerianStudio/lib-invariant/invariant/tokens"
)

const (
	notFormattable = "(NotFormattable)"
	notEvaluable   = "(NotEvaluable)"
)

// Formattable lets a type control how it appears in a decomposed
// expression. FormatOperand returns false to fall back to the default
// formatting.
type Formattable interface {
	FormatOperand(b *strings.Builder) bool
}

// FormatOperand renders v the way it appears inside a decomposed
// expression. It reports false when v has no textual form.
func FormatOperand(v any) (string, bool) {
	if nilcheck.Pointer(v) {
		return "nil", true
	}

	if f, ok := v.(Formattable); ok {
		var b strings.Builder
		if f.FormatOperand(&b) {
			return b.String(), true
		}
	}

	rv := reflect.ValueOf(v)

	switch x := v.(type) {
	case error:
		return x.Error(), true
	case fmt.Stringer:
		return x.String(), true
	case fmt.Formatter:
		return fmt.Sprintf("%v", x), true
	}

	switch rv.Kind() {
	case reflect.String:
		return strconv.Quote(rv.String()), true
	case reflect.Slice:
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			return strconv.Quote(string(rv.Bytes())), true
		}
	case reflect.Bool, reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return fmt.Sprintf("%v", v), true
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return "", false
	}

	if text, ok := serialize(v); ok {
		return text, true
	}

	return fmt.Sprintf("%v", v), true
}

func serialize(v any) (string, bool) {
	switch x := v.(type) {
	case encoding.TextMarshaler:
		text, err := x.MarshalText()
		if err != nil {
			return "", false
		}

		return string(text), true
	case io.WriterTo:
		var buf bytes.Buffer
		if _, err := x.WriteTo(&buf); err != nil {
			return "", false
		}

		return buf.String(), true
	}

	return "", false
}

func renderOperand(v any, style highlight.Style) string {
	if e, ok := v.(Expression); ok {
		punct := highlight.GetColor(tokens.Punctuation)
		return highlight.Sprint(style, punct, "(") + e.Render(style) + highlight.Sprint(style, punct, ")")
	}

	text, ok := FormatOperand(v)
	if !ok {
		return highlight.Sprint(style, highlight.GetColor(tokens.Error), notFormattable)
	}

	return highlight.Render(text, style)
}

func renderNode(n *node, style highlight.Style) string {
	if n.failed {
		return highlight.Sprint(style, highlight.GetColor(tokens.Error), notEvaluable)
	}

	punct := highlight.GetColor(tokens.Punctuation)
	op := n.op.String()

	if n.nested != nil {
		return highlight.Sprint(style, punct, "(") + n.nested.Render(style) +
			highlight.Sprint(style, punct, ")") + " " +
			highlight.Sprint(style, punct, op) + " " +
			renderOperand(n.rhs, style)
	}

	if _, isExpr := n.rhs.(Expression); !isExpr {
		lhs, lok := FormatOperand(n.lhs)
		rhs, rok := FormatOperand(n.rhs)

		if lok && rok {
			return highlight.Render(lhs+" "+op+" "+rhs, style)
		}
	}

	return renderOperand(n.lhs, style) + " " + highlight.Sprint(style, punct, op) + " " + renderOperand(n.rhs, style)
}
