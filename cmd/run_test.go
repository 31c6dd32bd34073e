package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stefanomuraro/design-patterns/pkg/logging"
)

func executeRun(t *testing.T, args ...string) (string, error) {
	t.Helper()
	logging.Init(logging.LevelWarn, io.Discard)

	cmd := newRunCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

func TestRunWithoutArgsRunsEverything(t *testing.T) {
	out, err := executeRun(t)
	require.NoError(t, err)
	assert.Equal(t, fullTranscript, out)
}

func TestRunSubsetInGivenOrder(t *testing.T) {
	out, err := executeRun(t, "state", "adapter")
	require.NoError(t, err)

	want := "State 1 action.\n" +
		"State 2 action.\n" +
		"State 1 action.\n" +
		"This is the 'Request from the client'\n"
	assert.Equal(t, want, out)
}

func TestRunUnknownDemo(t *testing.T) {
	_, err := executeRun(t, "observer")
	assert.ErrorContains(t, err, `unknown demo "observer"`)
}

func TestRunWithConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demos:\n  - strategy\n"), 0o644))

	out, err := executeRun(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "1, 2, 3, 4, 5, \n5, 4, 3, 2, 1, \n", out)
}

func TestRunArgsAndConfigAreExclusive(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.yaml")
	require.NoError(t, os.WriteFile(path, []byte("demos:\n  - strategy\n"), 0o644))

	_, err := executeRun(t, "singleton", "--config", path)
	assert.ErrorContains(t, err, "mutually exclusive")
}

func TestRunMissingConfigFile(t *testing.T) {
	_, err := executeRun(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "nope.yaml"))
}
