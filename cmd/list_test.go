package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNamesAllDemos(t *testing.T) {
	cmd := newListCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	out := buf.String()
	assert.Contains(t, out, "Available demos")
	for _, name := range []string{"singleton", "prototype", "adapter", "decorator", "state", "strategy"} {
		assert.Contains(t, out, name)
	}
}
