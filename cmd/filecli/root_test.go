package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()

	out, _, err := executeWithStderr(t, input, args...)
	return out, err
}

func executeWithStderr(t *testing.T, input string, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestRoot_Session(t *testing.T) {
	out, err := execute(t, "create\na.txt\nhello\nlist\nquit\n", "--quiet")
	require.NoError(t, err)

	assert.NotContains(t, out, "Welcome")
	assert.Contains(t, out, "[1] a.txt (5 bytes)")
	assert.Contains(t, out, "👋 Goodbye!")
}

func TestRoot_PromptFlagOverridesConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "filecli.yaml")
	require.NoError(t, os.WriteFile(path, []byte("prompt: \"cfg> \"\nquiet: true\nobservers: [noop]\n"), 0o644))

	out, err := execute(t, "q\n", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "cfg> ")
	assert.NotContains(t, out, "Welcome")

	out, err = execute(t, "q\n", "--config", path, "--prompt", "flag> ")
	require.NoError(t, err)
	assert.Contains(t, out, "flag> ")
	assert.NotContains(t, out, "cfg> ")
}

func TestRoot_ObserversFlag(t *testing.T) {
	_, stderr, err := executeWithStderr(t, "create\na.txt\nhi\nquit\n", "--quiet", "--verbose", "--observers", "json")
	require.NoError(t, err)

	assert.Contains(t, stderr, `"msg":"shell.session.start"`)
	assert.Contains(t, stderr, `"msg":"store.entry.create"`)
	assert.Contains(t, stderr, `"source":"store.Create"`)
}

func TestRoot_ObserversFanOut(t *testing.T) {
	_, stderr, err := executeWithStderr(t, "quit\n", "--quiet", "--verbose", "--observers", "slog,json")
	require.NoError(t, err)

	assert.Contains(t, stderr, "msg=shell.session.stop")
	assert.Contains(t, stderr, `"msg":"shell.session.stop"`)
}

func TestRoot_UnknownObserver(t *testing.T) {
	_, err := execute(t, "", "--observers", "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: json, noop, slog")
}

func TestRoot_ObserversHelpListsRegistry(t *testing.T) {
	flag := newRootCmd().Flags().Lookup("observers")
	require.NotNil(t, flag)
	assert.Contains(t, flag.Usage, "json, noop, slog")
}

func TestRoot_DefaultLogsErrorsOnly(t *testing.T) {
	_, stderr, err := executeWithStderr(t, "create\na.txt\nhi\nquit\n", "--quiet")
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelError, logLevel(false))
	assert.Equal(t, slog.LevelDebug, logLevel(true))
}

func TestRoot_BadConfig(t *testing.T) {
	_, err := execute(t, "", "--config", filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestRoot_RejectsArgs(t *testing.T) {
	_, err := execute(t, "", "extra")
	assert.Error(t, err)
}
