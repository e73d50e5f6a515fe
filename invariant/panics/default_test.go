//go:build unit

package panics

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"regexp"
	"strings"
	"testing"

	"github.com/LerianStudio/lib-invariant/invariant/highlight"
	"github.com/LerianStudio/lib-invariant/invariant/location"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const childEnv = "INVARIANT_PANICS_CHILD"

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func expectedReport(message string) string {
	var body string
	if message != "" {
		body = message + "\n\n"
	}

	return "Panic occurred at [main.go|12:5]: main.run:\n\n" +
		body +
		"Backtrace:\n" +
		" 0# 0x0000000000001000 main.run\n" +
		"                       in [main.go:12]\n" +
		" 1# 0x0000000000002000 main.main\n" +
		"                       in [main.go:30]\n"
}

func TestReport_Unstyled(t *testing.T) {
	t.Parallel()

	loc := location.New("main.go", 12, 5, "main.run")

	assert.Equal(t, expectedReport("boom"), Report("boom", loc, sampleBacktrace(), highlight.Unstyled))
	assert.Equal(t, expectedReport(""), Report("", loc, sampleBacktrace(), highlight.Unstyled))
}

func TestReport_StyledStripsToUnstyled(t *testing.T) {
	t.Parallel()

	loc := location.New("main.go", 12, 5, "main.run")
	styled := Report("boom", loc, sampleBacktrace(), highlight.Styled)

	assert.NotEqual(t, expectedReport("boom"), styled)
	assert.True(t, strings.HasPrefix(styled, "\x1b["), "header must be styled")
	assert.Equal(t, expectedReport("boom"), ansi.ReplaceAllString(styled, ""))
}

func TestDefaultHandler_WritesTrapsAndExits(t *testing.T) {
	term := stubTermination(t)

	DefaultHandler()("boom", location.New("main.go", 12, 5, "main.run"), sampleBacktrace())

	assert.Equal(t, expectedReport("boom"), term.output.String())
	assert.Equal(t, 1, term.traps, "debug builds trap before exiting")
	assert.Equal(t, []int{ExitCode}, term.codes)
}

func TestDefaultHandler_ReachedThroughExecute(t *testing.T) {
	term := stubTermination(t)

	previous := GetHandler()
	require.NoError(t, SetHandler(DefaultHandler()))
	t.Cleanup(func() { _ = SetHandler(previous) })

	Execute(location.New("main.go", 12, 5, "main.run"), sampleBacktrace())

	assert.Equal(t, expectedReport(""), term.output.String())
	assert.Equal(t, []int{2}, term.codes)
}

// TestDefaultHandler_TerminatesProcess runs the real default handler in a
// child copy of the test binary.
func TestDefaultHandler_TerminatesProcess(t *testing.T) {
	if os.Getenv(childEnv) == "1" {
		ExecuteMessage(location.New("child.go", 7, 3, "main.child"), sampleBacktrace(), "child failure")
		t.Fatal("default handler returned")

		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestDefaultHandler_TerminatesProcess$")
	cmd.Env = append(os.Environ(), childEnv+"=1", "NO_COLOR=1")

	var stderrBuf bytes.Buffer
	cmd.Stderr = &stderrBuf

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "child must exit with a failure status, got %v", err)
	assert.NotZero(t, exitErr.ExitCode())

	out := stderrBuf.String()
	assert.Contains(t, out, "Panic occurred at [child.go|7:3]: main.child:\n\nchild failure\n\nBacktrace:\n")
	assert.Contains(t, out, " 1# 0x0000000000002000 main.main\n")
	assert.NotContains(t, out, "default handler returned")
}
