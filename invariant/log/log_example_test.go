package log_test

import (
	"context"
	"fmt"
	"os"

	ilog "github.com/LerianStudio/lib-invariant/invariant/log"
)

func ExampleParseLevel() {
	level, err := ilog.ParseLevel("warning")

	fmt.Println(err == nil)
	fmt.Println(level.String())

	// Output:
	// true
	// warn
}

func ExampleGoLogger() {
	logger := ilog.NewGoLogger(os.Stdout, ilog.LevelInfo).WithGroup("panic")

	logger.Log(context.Background(), ilog.LevelWarn, "handler replaced", ilog.String("component", "worker"))

	// Output:
	// [warn] handler replaced panic.component=worker
}
