package highlight

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v2"

	"github.com/LerianStudio/lib-invariant/invariant/tokens"
)

var (
	// ErrUnknownKind is returned when a palette names a token kind that does not exist.
	ErrUnknownKind = errors.New("unknown token kind")
	// ErrInvalidColor is returned when a palette color cannot be parsed.
	ErrInvalidColor = errors.New("invalid color")
)

// ParseColor accepts "#rrggbb", "#rgb" or a terminal color name such as
// "red" or "bright-blue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "#") {
		c, err := colorful.Hex(s)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q: %w", ErrInvalidColor, s, err)
		}

		r, g, b := c.RGB255()

		return RGBComponents(r, g, b), nil
	}

	name := strings.ReplaceAll(strings.ToLower(s), "_", "-")
	for i, candidate := range terminalColorNames {
		if candidate == name {
			return Terminal(TerminalColor(i)), nil
		}
	}

	return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
}

// LoadPalette decodes a YAML mapping of token kind to color, e.g.
//
//	keyword: "#c67ada"
//	error: bright-red
//
// The result is ordered by kind and can be passed to RegisterAll.
func LoadPalette(r io.Reader) ([]Highlight, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read palette: %w", err)
	}

	raw := make(map[string]string)
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode palette: %w", err)
	}

	highlights := make([]Highlight, 0, len(raw))

	for _, name := range slices.Sorted(maps.Keys(raw)) {
		kind, ok := tokens.ParseKind(strings.ToLower(strings.TrimSpace(name)))
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKind, name)
		}

		c, err := ParseColor(raw[name])
		if err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", name, err)
		}

		highlights = append(highlights, Highlight{Kind: kind, Color: c})
	}

	slices.SortFunc(highlights, func(a, b Highlight) int {
		return int(a.Kind) - int(b.Kind)
	})

	return highlights, nil
}

// LoadPaletteFile reads a palette from path.
func LoadPaletteFile(path string) ([]Highlight, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open palette: %w", err)
	}
	defer f.Close()

	return LoadPalette(f)
}
