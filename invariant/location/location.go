// Package location describes the point in source code where a diagnostic
// originated.
package location

import (
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/LerianStudio/lib-invariant/invariant/tokens"
)

// SourceLocation identifies a call site. Line and Column are 1-based; a zero
// Column means the column is unknown.
type SourceLocation struct {
	File     string
	Line     int
	Column   int
	Function string
}

// New builds a SourceLocation from its parts.
func New(file string, line, column int, function string) SourceLocation {
	return SourceLocation{File: file, Line: line, Column: column, Function: function}
}

// Current returns the location of its caller. skip counts additional frames
// to climb: 0 is the function calling Current, 1 is that function's caller.
func Current(skip int) SourceLocation {
	var pcs [1]uintptr

	// runtime.Callers, Current, then the caller.
	if runtime.Callers(skip+2, pcs[:]) == 0 {
		return SourceLocation{}
	}

	frame, _ := runtime.CallersFrames(pcs[:]).Next()

	return SourceLocation{File: frame.File, Line: frame.Line, Function: frame.Function}
}

// IsZero reports whether the location carries no information.
func (l SourceLocation) IsZero() bool {
	return l == SourceLocation{}
}

// ShortFile returns the base name of File.
func (l SourceLocation) ShortFile() string {
	if l.File == "" {
		return ""
	}

	return filepath.Base(l.File)
}

// ShortFunction strips the import path from Function, keeping the package
// qualifier: "example.com/pkg/sub.(*T).M" becomes "sub.(*T).M".
func (l SourceLocation) ShortFunction() string {
	if i := strings.LastIndexByte(l.Function, '/'); i >= 0 {
		return l.Function[i+1:]
	}

	return l.Function
}

// Format renders the location as "[file|line:column]: function".
func (l SourceLocation) Format(style highlight.Style) string {
	punct := highlight.GetColor(tokens.Punctuation)
	num := highlight.GetColor(tokens.Numeric)

	var b strings.Builder

	b.Grow(len(l.File) + len(l.Function) + 32)
	b.WriteString(highlight.Sprint(style, punct, "["))
	b.WriteString(highlight.Sprint(style, highlight.GetColor(tokens.String), l.File))
	b.WriteString(highlight.Sprint(style, punct, "|"))
	b.WriteString(highlight.Sprint(style, num, strconv.Itoa(l.Line)))
	b.WriteString(highlight.Sprint(style, punct, ":"))
	b.WriteString(highlight.Sprint(style, num, strconv.Itoa(l.Column)))
	b.WriteString(highlight.Sprint(style, punct, "]:"))
	b.WriteByte(' ')
	b.WriteString(highlight.RenderFunction(l.Function, style))

	return b.String()
}

// String returns the unstyled form of Format.
func (l SourceLocation) String() string {
	return l.Format(highlight.Unstyled)
}
