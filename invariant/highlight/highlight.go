package highlight

import (
	"strings"

	"github.com/LerianStudio/lib-invariant/invariant/parser"
	"github.com/LerianStudio/lib-invariant/invariant/tokens"
)

// Render highlights source with the process-wide color table.
//
// Text between tokens is copied unchanged, so stripping the escapes from
// the result yields source again.
func Render(source string, style Style) string {
	return render(source, style, false, defaultTable.Snapshot())
}

// RenderFunction is Render for a symbol name: when source lexes to a single
// token, that token is colored as a function.
func RenderFunction(source string, style Style) string {
	return render(source, style, true, defaultTable.Snapshot())
}

func render(source string, style Style, function bool, palette Palette) string {
	if source == "" || style == Unstyled {
		return source
	}

	toks := parser.Parse(source)
	if function && len(toks) == 1 {
		toks[0].Kind = tokens.Function
	}

	var b strings.Builder

	b.Grow(len(source) * 4)

	last := 0

	for _, tok := range toks {
		b.WriteString(source[last:tok.Begin])
		b.WriteString(Sprint(style, palette.Color(tok.Kind), tok.Text))

		last = tok.End
	}

	b.WriteString(source[last:])

	return b.String()
}
