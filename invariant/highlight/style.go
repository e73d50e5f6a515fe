package highlight

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Style selects whether rendered text carries ANSI escape sequences.
type Style uint8

const (
	// Unstyled output is plain text.
	Unstyled Style = iota
	// Styled output carries 24-bit or palette color escapes.
	Styled
)

func (s Style) String() string {
	if s == Styled {
		return "styled"
	}

	return "unstyled"
}

// Mode controls how StyleFor picks a Style for a writer.
type Mode uint8

const (
	// ModeAuto styles output only when it goes to a terminal and NO_COLOR is unset.
	ModeAuto Mode = iota
	// ModeAlways styles every writer.
	ModeAlways
	// ModeNever never styles.
	ModeNever
)

func (m Mode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseMode parses "auto", "always" or "never", case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("invalid color mode: %q", s)
	}
}

var currentMode atomic.Uint32

// SetMode sets the process-wide color mode.
func SetMode(m Mode) {
	currentMode.Store(uint32(m))
}

// CurrentMode returns the process-wide color mode.
func CurrentMode() Mode {
	return Mode(currentMode.Load())
}

type fileDescriptor interface {
	Fd() uintptr
}

// StyleFor picks the style for output written to w.
func StyleFor(w io.Writer) Style {
	switch CurrentMode() {
	case ModeAlways:
		return Styled
	case ModeNever:
		return Unstyled
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return Unstyled
	}

	f, ok := w.(fileDescriptor)
	if !ok {
		return Unstyled
	}

	if term.IsTerminal(int(f.Fd())) {
		return Styled
	}

	return Unstyled
}

// Sprint paints text in c. Unstyled returns text unchanged.
func Sprint(style Style, c Color, text string) string {
	if style == Unstyled || text == "" {
		return text
	}

	return c.painter().Sprint(text)
}

// SprintBold paints text in c and makes it bold.
func SprintBold(style Style, c Color, text string) string {
	if style == Unstyled || text == "" {
		return text
	}

	return c.painter(color.Bold).Sprint(text)
}

// Bold makes text bold without changing its color.
func Bold(style Style, text string) string {
	if style == Unstyled || text == "" {
		return text
	}

	p := color.New(color.Bold)
	p.EnableColor()

	return p.Sprint(text)
}
