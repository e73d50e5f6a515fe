//go:build unit

package assert_test

import (
	"fmt"

	"github.com/LerianStudio/lib-invariant/invariant/assert"
	"github.com/LerianStudio/lib-invariant/invariant/decompose"
	"github.com/LerianStudio/lib-invariant/invariant/highlight"
)

func ExampleCompose() {
	expr := decompose.Capture(2).Add(4).Eq(7)

	fmt.Print(assert.Compose(assert.KindRequirement, "value + lambda() == 7", expr,
		"with 42 context messages", highlight.Unstyled))

	// Output:
	// Requirement Assertion Failed: value + lambda() == 7
	//     Where: value + lambda() == 7
	//     Evaluated To: (2 + 4) == 7
	//
	//     Context Message:
	//         with 42 context messages
}
