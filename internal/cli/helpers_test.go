package cli

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"
)

// testNow pins "today" to 2024-01-07.
func testNow() time.Time {
	return time.Date(2024, time.January, 7, 9, 30, 0, 0, time.Local)
}

// isolateEnv clears every HABITS_* variable for the duration of the test.
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, envPrefix+"_") {
			t.Setenv(key, "")
			os.Unsetenv(key)
		}
	}
}

// unsetForTest removes key from the environment and restores it afterwards.
func unsetForTest(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

type cliResult struct {
	Stdout string
	Stderr string
	Err    error
}

// runCLI executes the habits command tree in-process with the given stdin,
// an isolated config directory and a pinned clock.
func runCLI(t *testing.T, configDir, stdin string, args ...string) cliResult {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := &app{now: testNow, logOut: &stderr}
	root := newRootCmd(a)
	root.SetArgs(append([]string{"--config-dir", configDir}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&stdout)
	root.SetErr(io.Discard)
	err := root.Execute()
	return cliResult{Stdout: stdout.String(), Stderr: stderr.String(), Err: err}
}

// script joins menu answers into newline-terminated input.
func script(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
