package highlight

import (
	"cmp"
	"fmt"

	"github.com/fatih/color"
)

// TerminalColor is one of the 16 standard terminal palette entries.
type TerminalColor uint8

const (
	Black TerminalColor = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
	BrightBlack
	BrightRed
	BrightGreen
	BrightYellow
	BrightBlue
	BrightMagenta
	BrightCyan
	BrightWhite
)

var terminalColorNames = [...]string{
	"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-black", "bright-red", "bright-green", "bright-yellow",
	"bright-blue", "bright-magenta", "bright-cyan", "bright-white",
}

// String returns the palette name of the color, e.g. "bright-blue".
func (c TerminalColor) String() string {
	if int(c) < len(terminalColorNames) {
		return terminalColorNames[c]
	}

	return fmt.Sprintf("terminal(%d)", uint8(c))
}

func (c TerminalColor) attribute() color.Attribute {
	if c < BrightBlack {
		return color.FgBlack + color.Attribute(c)
	}

	return color.FgHiBlack + color.Attribute(c-BrightBlack)
}

// Color is either a 24-bit RGB value or a terminal palette entry.
//
// The zero value is RGB black.
type Color struct {
	terminal bool
	value    uint32
}

// RGB builds a color from a 0xRRGGBB integer. Bits above 24 are ignored.
func RGB(hex uint32) Color {
	return Color{value: hex & 0xFFFFFF}
}

// RGBComponents builds a color from its red, green and blue bytes.
func RGBComponents(r, g, b uint8) Color {
	return Color{value: uint32(r)<<16 | uint32(g)<<8 | uint32(b)}
}

// Terminal builds a color from a terminal palette entry.
func Terminal(c TerminalColor) Color {
	return Color{terminal: true, value: uint32(c)}
}

// IsTerminal reports whether c is a palette entry rather than an RGB value.
func (c Color) IsTerminal() bool {
	return c.terminal
}

// Components returns the RGB bytes. Terminal colors report zeros.
func (c Color) Components() (r, g, b uint8) {
	if c.terminal {
		return 0, 0, 0
	}

	return uint8(c.value >> 16), uint8(c.value >> 8), uint8(c.value)
}

// Hex returns the 0xRRGGBB value. Terminal colors report zero.
func (c Color) Hex() uint32 {
	if c.terminal {
		return 0
	}

	return c.value
}

// TerminalColor returns the palette entry of a terminal color.
func (c Color) TerminalColor() (TerminalColor, bool) {
	if !c.terminal {
		return 0, false
	}

	return TerminalColor(c.value), true
}

// Compare orders colors: terminal colors sort before RGB colors, terminal
// colors order by palette index and RGB colors by (r, g, b).
func (c Color) Compare(other Color) int {
	if c.terminal != other.terminal {
		if c.terminal {
			return -1
		}

		return 1
	}

	return cmp.Compare(c.value, other.value)
}

// Less reports whether c orders before other.
func (c Color) Less(other Color) bool {
	return c.Compare(other) < 0
}

// String renders the color as "#rrggbb" or its palette name.
func (c Color) String() string {
	if c.terminal {
		return TerminalColor(c.value).String()
	}

	return fmt.Sprintf("#%06x", c.value)
}

func (c Color) painter(attrs ...color.Attribute) *color.Color {
	var p *color.Color

	if c.terminal {
		p = color.New(TerminalColor(c.value).attribute())
	} else {
		r, g, b := c.Components()
		p = color.RGB(int(r), int(g), int(b))
	}

	p.Add(attrs...)
	p.EnableColor()

	return p
}
