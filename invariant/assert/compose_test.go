//go:build unit

package assert

import (
	"testing"

	"github.com/LerianStudio/lib-invariant/invariant/decompose"
	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/stretchr/testify/require"
)

func TestCompose_Unstyled(t *testing.T) {
	t.Parallel()

	expr := decompose.Capture(2).Add(4).Eq(7)

	got := Compose(KindRequirement, "value + lambda() == 7", expr, "", highlight.Unstyled)
	require.Equal(t,
		"Requirement Assertion Failed: value + lambda() == 7\n"+
			"    Where: value + lambda() == 7\n"+
			"    Evaluated To: (2 + 4) == 7\n",
		got)
}

func TestCompose_WithMessage(t *testing.T) {
	t.Parallel()

	expr := decompose.Capture("hello").Eq("world")

	got := Compose(KindPrecondition, `greeting == "world"`, expr, "greeting mismatch", highlight.Unstyled)
	require.Equal(t,
		"Contract Violation:\nPre-condition Assertion Failed: greeting == \"world\"\n"+
			"    Where: greeting == \"world\"\n"+
			"    Evaluated To: \"hello\" == \"world\"\n"+
			"\n"+
			"    Context Message:\n"+
			"        greeting mismatch\n",
		got)
}

func TestCompose_StyledStripsToUnstyled(t *testing.T) {
	t.Parallel()

	expr := decompose.Capture(3).Mul(3).Ne(9)

	styled := Compose(KindFatal, "n * n != 9", expr, "square", highlight.Styled)
	plain := Compose(KindFatal, "n * n != 9", expr, "square", highlight.Unstyled)

	require.NotEqual(t, plain, styled)
	require.Equal(t, plain, strip(styled))
}

func TestCompose_NilExpression(t *testing.T) {
	t.Parallel()

	got := Compose(KindDebug, "ready", nil, "", highlight.Unstyled)
	require.Equal(t, "Debug Assertion Failed: ready\n    Where: ready\n    Evaluated To: ready\n", got)
}
