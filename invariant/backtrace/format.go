package backtrace

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/LerianStudio/lib-invariant/invariant/tokens"
)

// fileIndent lines the "in [file:line]" row up under the frame name.
const fileIndent = "                      "

// Format renders bt one frame per entry:
//
//	 0# 0x00000000004A5F21 main.run
//	                       in [/src/main.go:42]
//
// Empty frames are skipped but still consume their index.
func Format(bt Backtrace, style highlight.Style) string {
	var b strings.Builder

	b.Grow(100 * len(bt))

	palette := highlight.Default().Snapshot()

	for i, frame := range bt {
		if frame.Empty() {
			continue
		}

		writeFrame(&b, i, frame, style, palette)
	}

	return b.String()
}

func writeFrame(b *strings.Builder, index int, f Frame, style highlight.Style, palette highlight.Palette) {
	num := palette.Color(tokens.Numeric)
	punct := palette.Color(tokens.Punctuation)

	b.WriteString(highlight.Sprint(style, num, fmt.Sprintf("%2d", index)))
	b.WriteString(highlight.Sprint(style, punct, "#"))
	b.WriteByte(' ')
	b.WriteString(highlight.Sprint(style, num, fmt.Sprintf("0x%016X", f.Address)))

	switch {
	case f.Name != "":
		b.WriteByte(' ')
		b.WriteString(highlight.RenderFunction(f.Name, style))
	case f.File == "":
		b.WriteByte(' ')
		b.WriteString(highlight.Sprint(style, palette.Color(tokens.Error), "[no info]"))
	}

	if f.File != "" {
		b.WriteByte('\n')
		b.WriteString(fileIndent)
		b.WriteString(" in ")
		b.WriteString(highlight.Sprint(style, punct, "["))
		b.WriteString(highlight.Sprint(style, palette.Color(tokens.String), f.File))

		if f.Line != 0 {
			b.WriteString(highlight.Sprint(style, punct, ":"))
			b.WriteString(highlight.Sprint(style, num, strconv.Itoa(f.Line)))
		}

		b.WriteString(highlight.Sprint(style, punct, "]"))
	}

	b.WriteByte('\n')
}

// String returns the unstyled rendering of bt.
func (bt Backtrace) String() string {
	return Format(bt, highlight.Unstyled)
}
