package highlight

import (
	"sync"

	"github.com/LerianStudio/lib-invariant/invariant/tokens"
)

// Highlight maps one token kind to the color it is rendered in.
type Highlight struct {
	Kind  tokens.Kind
	Color Color
}

// Palette is an immutable copy of a color table, indexed by token kind.
type Palette [tokens.Count]Color

// Color returns the color for kind, or the Error color for an unknown kind.
func (p Palette) Color(kind tokens.Kind) Color {
	if !kind.Valid() {
		return p[tokens.Error]
	}

	return p[kind]
}

// DefaultPalette returns the built-in colors.
func DefaultPalette() Palette {
	var p Palette

	p[tokens.Punctuation] = RGB(0x9daaaa)
	p[tokens.Keyword] = RGB(0xc67ada)
	p[tokens.String] = RGB(0x83a76e)
	p[tokens.Numeric] = RGB(0xd29767)
	p[tokens.Namespace] = RGB(0x00997b)
	p[tokens.Type] = RGB(0xdbba75)
	p[tokens.Function] = RGB(0x61afef)
	p[tokens.Variable] = RGB(0x9daaaa)
	p[tokens.Error] = RGB(0xc65156)

	return p
}

// ColorTable is a concurrency-safe mapping from token kind to color.
// Readers take a Palette snapshot so a single render never observes a
// partially applied update.
type ColorTable struct {
	mu     sync.RWMutex
	colors Palette
}

// NewColorTable creates a table initialized with DefaultPalette.
func NewColorTable() *ColorTable {
	return &ColorTable{colors: DefaultPalette()}
}

// Register sets the color of one kind. Unknown kinds are ignored.
func (t *ColorTable) Register(h Highlight) {
	if !h.Kind.Valid() {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.colors[h.Kind] = h.Color
}

// RegisterAll applies every highlight under a single write lock.
func (t *ColorTable) RegisterAll(highlights ...Highlight) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, h := range highlights {
		if h.Kind.Valid() {
			t.colors[h.Kind] = h.Color
		}
	}
}

// Get returns the color currently registered for kind.
func (t *ColorTable) Get(kind tokens.Kind) Color {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.colors.Color(kind)
}

// Snapshot copies the current colors.
func (t *ColorTable) Snapshot() Palette {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.colors
}

// Reset restores DefaultPalette.
func (t *ColorTable) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.colors = DefaultPalette()
}

// Render highlights source using this table's colors.
func (t *ColorTable) Render(source string, style Style) string {
	return render(source, style, false, t.Snapshot())
}

// RenderFunction highlights source, treating a lone token as a function name.
func (t *ColorTable) RenderFunction(source string, style Style) string {
	return render(source, style, true, t.Snapshot())
}

var defaultTable = NewColorTable()

// Default returns the process-wide color table.
func Default() *ColorTable {
	return defaultTable
}

// Register sets the color of one kind in the process-wide table.
func Register(h Highlight) {
	defaultTable.Register(h)
}

// RegisterAll updates several kinds in the process-wide table at once.
func RegisterAll(highlights ...Highlight) {
	defaultTable.RegisterAll(highlights...)
}

// GetColor returns the process-wide color for kind.
func GetColor(kind tokens.Kind) Color {
	return defaultTable.Get(kind)
}

// Reset restores the process-wide table to DefaultPalette.
func Reset() {
	defaultTable.Reset()
}
