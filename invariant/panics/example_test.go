package panics_test

import (
	"fmt"

	"github.com/LerianStudio/lib-invariant/invariant/backtrace"
	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/LerianStudio/lib-invariant/invariant/location"
	"github.com/LerianStudio/lib-invariant/invariant/panics"
)

func ExampleSetHandler() {
	previous := panics.GetHandler()
	defer func() { _ = panics.SetHandler(previous) }()

	_ = panics.SetHandler(func(message string, loc location.SourceLocation, _ backtrace.Backtrace) {
		fmt.Printf("%s at %s:%d\n", message, loc.ShortFile(), loc.Line)
	})

	panics.ExecuteMessage(location.New("/src/ledger/balance.go", 88, 2, "ledger.apply"), nil, "balance went negative")

	// Output:
	// balance went negative at balance.go:88
}

func ExampleReport() {
	bt := backtrace.Backtrace{{Address: 0x4a5f21, Name: "main.run", File: "/src/main.go", Line: 42}}

	fmt.Print(panics.Report("state corrupted", location.New("/src/main.go", 42, 9, "main.run"), bt, highlight.Unstyled))

	// Output:
	// Panic occurred at [/src/main.go|42:9]: main.run:
	//
	// state corrupted
	//
	// Backtrace:
	//  0# 0x00000000004A5F21 main.run
	//                        in [/src/main.go:42]
}
