package assert

import (
	"strings"

	"github.com/LerianStudio/lib-invariant/invariant/decompose"
	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/LerianStudio/lib-invariant/invariant/tokens"
)

// Compose builds the diagnostic for a failed assertion:
//
//	<label> Assertion Failed: <condition>
//	    Where: <condition>
//	    Evaluated To: <rendered expression>
//
//	    Context Message:
//	        <message>
//
// The context block is present only for a non-empty message. A nil expr
// renders as the condition text.
func Compose(kind Kind, condition string, expr decompose.Expression, message string, style highlight.Style) string {
	errColor := highlight.GetColor(tokens.Error)
	cond := highlight.Render(condition, style)

	evaluated := cond
	if expr != nil {
		evaluated = expr.Render(style)
	}

	var b strings.Builder

	b.Grow(2*len(condition) + len(evaluated) + len(message) + 96)
	b.WriteString(highlight.SprintBold(style, errColor, kind.Label()))
	b.WriteByte(' ')
	b.WriteString(highlight.SprintBold(style, errColor, "Assertion Failed:"))
	b.WriteByte(' ')
	b.WriteString(cond)
	b.WriteString("\n    ")
	b.WriteString(highlight.Bold(style, "Where:"))
	b.WriteByte(' ')
	b.WriteString(cond)
	b.WriteString("\n    ")
	b.WriteString(highlight.Bold(style, "Evaluated To:"))
	b.WriteByte(' ')
	b.WriteString(evaluated)
	b.WriteByte('\n')

	if message != "" {
		b.WriteString("\n    ")
		b.WriteString(highlight.Bold(style, "Context Message:"))
		b.WriteString("\n        ")
		b.WriteString(message)
		b.WriteByte('\n')
	}

	return b.String()
}
