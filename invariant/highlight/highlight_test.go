//go:build unit

package highlight

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LerianStudio/lib-invariant/invariant/tokens"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func strip(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestRender_UnstyledIsIdentity(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"",
		"value == 42",
		"  padded(call)  ",
		"std::vector<std::string> v{}",
		"\tweird\n spacing ",
	}

	for _, input := range inputs {
		assert.Equal(t, input, Render(input, Unstyled))
		assert.Equal(t, input, RenderFunction(input, Unstyled))
	}
}

func TestRender_StyledStripsBackToSource(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"value == 42",
		"  padded(call)  ",
		"std::vector<std::string> v{}",
		`"text" != other && flag`,
		"trailing text after tokens ",
	}

	for _, input := range inputs {
		out := Render(input, Styled)

		assert.Contains(t, out, "\x1b[", "input %q", input)
		assert.Equal(t, input, strip(out), "input %q", input)
	}
}

func TestRender_EmptyInput(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Render("", Styled))
	assert.Equal(t, "", RenderFunction("", Styled))
}

func TestRenderFunction_SingleTokenUsesFunctionColor(t *testing.T) {
	t.Parallel()

	table := NewColorTable()

	out := table.RenderFunction("main", Styled)
	assert.Contains(t, out, "38;2;97;175;239")
	assert.Equal(t, "main", strip(out))

	out = table.Render("main", Styled)
	assert.Contains(t, out, "38;2;0;153;123", "first identifier renders as a namespace")
}

func TestColorTable_RegisterAndReset(t *testing.T) {
	t.Parallel()

	table := NewColorTable()
	assert.Equal(t, RGB(0xc67ada), table.Get(tokens.Keyword))

	table.Register(Highlight{Kind: tokens.Keyword, Color: Terminal(BrightRed)})
	assert.Equal(t, Terminal(BrightRed), table.Get(tokens.Keyword))

	table.RegisterAll(
		Highlight{Kind: tokens.String, Color: RGB(0x112233)},
		Highlight{Kind: tokens.Numeric, Color: RGBComponents(1, 2, 3)},
	)
	assert.Equal(t, RGB(0x112233), table.Get(tokens.String))
	assert.Equal(t, RGB(0x010203), table.Get(tokens.Numeric))

	table.Register(Highlight{Kind: tokens.Kind(200), Color: RGB(0xffffff)})
	assert.Equal(t, RGB(0xc65156), table.Get(tokens.Kind(200)), "unknown kinds read as the error color")

	table.Reset()
	assert.Equal(t, DefaultPalette(), table.Snapshot())
}

func TestColorTable_TerminalColorEscape(t *testing.T) {
	t.Parallel()

	table := NewColorTable()
	table.Register(Highlight{Kind: tokens.Function, Color: Terminal(Red)})

	out := table.RenderFunction("main", Styled)
	assert.Contains(t, out, "\x1b[31m")
}

func TestColorTable_ConcurrentUse(t *testing.T) {
	t.Parallel()

	table := NewColorTable()

	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)

		go func(i int) {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				table.Register(Highlight{Kind: tokens.Keyword, Color: RGB(uint32(i*1000 + j))})
			}
		}(i)

		go func() {
			defer wg.Done()

			for j := 0; j < 100; j++ {
				out := table.Render("auto value = call(42)", Styled)
				assert.Equal(t, "auto value = call(42)", strip(out))
			}
		}()
	}

	wg.Wait()
}

func TestGlobalTable(t *testing.T) {
	defer Reset()

	Register(Highlight{Kind: tokens.Type, Color: RGB(0x010101)})
	assert.Equal(t, RGB(0x010101), GetColor(tokens.Type))
	assert.Same(t, defaultTable, Default())

	RegisterAll(Highlight{Kind: tokens.Variable, Color: Terminal(Cyan)})
	assert.Equal(t, Terminal(Cyan), GetColor(tokens.Variable))

	Reset()
	assert.Equal(t, RGB(0xdbba75), GetColor(tokens.Type))
}

func TestColor_Compare(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, Terminal(BrightWhite).Compare(RGB(0)))
	assert.Equal(t, 1, RGB(0).Compare(Terminal(Black)))
	assert.Equal(t, -1, Terminal(Red).Compare(Terminal(Green)))
	assert.Equal(t, -1, RGB(0x00ffff).Compare(RGB(0x010000)))
	assert.Equal(t, 0, RGBComponents(0x12, 0x34, 0x56).Compare(RGB(0x123456)))
	assert.True(t, RGB(1).Less(RGB(2)))
}

func TestColor_Accessors(t *testing.T) {
	t.Parallel()

	c := RGB(0xff123456)
	r, g, b := c.Components()
	assert.Equal(t, [3]uint8{0x12, 0x34, 0x56}, [3]uint8{r, g, b})
	assert.Equal(t, uint32(0x123456), c.Hex())
	assert.Equal(t, "#123456", c.String())
	assert.False(t, c.IsTerminal())

	_, ok := c.TerminalColor()
	assert.False(t, ok)

	term := Terminal(BrightBlue)
	tc, ok := term.TerminalColor()
	assert.True(t, ok)
	assert.Equal(t, BrightBlue, tc)
	assert.Equal(t, "bright-blue", term.String())
	assert.Equal(t, uint32(0), term.Hex())
}

func TestParseColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected Color
		wantErr  bool
	}{
		{input: "#c67ada", expected: RGB(0xc67ada)},
		{input: " #000000 ", expected: RGB(0)},
		{input: "red", expected: Terminal(Red)},
		{input: "Bright_Magenta", expected: Terminal(BrightMagenta)},
		{input: "#zzzzzz", wantErr: true},
		{input: "mauve", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			c, err := ParseColor(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidColor)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, c)
		})
	}
}

func TestLoadPalette(t *testing.T) {
	t.Parallel()

	highlights, err := LoadPalette(strings.NewReader("keyword: \"#010203\"\nnamespace: cyan\nerror: bright-red\n"))
	require.NoError(t, err)
	require.Len(t, highlights, 3)

	assert.Equal(t, Highlight{Kind: tokens.Namespace, Color: Terminal(Cyan)}, highlights[0])
	assert.Equal(t, Highlight{Kind: tokens.Keyword, Color: RGB(0x010203)}, highlights[1])
	assert.Equal(t, Highlight{Kind: tokens.Error, Color: Terminal(BrightRed)}, highlights[2])

	table := NewColorTable()
	table.RegisterAll(highlights...)
	assert.Equal(t, Terminal(Cyan), table.Get(tokens.Namespace))
}

func TestLoadPalette_Errors(t *testing.T) {
	t.Parallel()

	_, err := LoadPalette(strings.NewReader("operator: red\n"))
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = LoadPalette(strings.NewReader("keyword: \"#12\"\n"))
	require.ErrorIs(t, err, ErrInvalidColor)

	_, err = LoadPalette(strings.NewReader("- not\n- a map\n"))
	require.Error(t, err)
}

func TestLoadPaletteFile(t *testing.T) {
	t.Parallel()

	path := t.TempDir() + "/palette.yaml"
	require.NoError(t, os.WriteFile(path, []byte("function: blue\n"), 0o600))

	highlights, err := LoadPaletteFile(path)
	require.NoError(t, err)
	assert.Equal(t, []Highlight{{Kind: tokens.Function, Color: Terminal(Blue)}}, highlights)

	_, err = LoadPaletteFile(path + ".missing")
	require.Error(t, err)
}

func TestStyleFor(t *testing.T) {
	defer SetMode(ModeAuto)

	var buf bytes.Buffer

	SetMode(ModeAuto)
	assert.Equal(t, Unstyled, StyleFor(&buf), "buffers are never terminals")

	SetMode(ModeAlways)
	assert.Equal(t, Styled, StyleFor(&buf))
	assert.Equal(t, ModeAlways, CurrentMode())

	SetMode(ModeNever)
	assert.Equal(t, Unstyled, StyleFor(os.Stderr))
}

func TestParseMode(t *testing.T) {
	t.Parallel()

	for input, expected := range map[string]Mode{"": ModeAuto, "AUTO": ModeAuto, "always": ModeAlways, " never ": ModeNever} {
		m, err := ParseMode(input)
		require.NoError(t, err)
		assert.Equal(t, expected, m, fmt.Sprintf("input %q", input))
		assert.NotEmpty(t, m.String())
	}

	_, err := ParseMode("sometimes")
	require.Error(t, err)
}

func TestSprintHelpers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", Sprint(Unstyled, RGB(0xff0000), "plain"))
	assert.Equal(t, "plain", SprintBold(Unstyled, RGB(0xff0000), "plain"))
	assert.Equal(t, "plain", Bold(Unstyled, "plain"))
	assert.Equal(t, "", Sprint(Styled, RGB(0xff0000), ""))

	assert.Contains(t, Sprint(Styled, RGB(0xff0000), "x"), "38;2;255;0;0")
	assert.Contains(t, SprintBold(Styled, RGB(0xff0000), "x"), "1")
	assert.Equal(t, "x", strip(SprintBold(Styled, RGB(0xff0000), "x")))
	assert.Equal(t, "x", strip(Bold(Styled, "x")))
	assert.Equal(t, "styled", Styled.String())
}
