package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	// rootCmd is shared; a --help parsed by an earlier test leaves the help
	// flag set and would short-circuit this invocation.
	if f := rootCmd.Flags().Lookup("help"); f != nil {
		_ = f.Value.Set("false")
	}
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootHelpListsCommands(t *testing.T) {
	out, err := execute(t, "--help")

	require.NoError(t, err)
	for _, sub := range []string{"up", "down", "logs", "status"} {
		assert.Contains(t, out, sub)
	}
	assert.Contains(t, out, "--name")
	assert.Contains(t, out, "--port")
}

func TestUpHelpListsLaunchFlags(t *testing.T) {
	out, err := execute(t, "up", "--help")

	require.NoError(t, err)
	assert.Contains(t, out, "--wait-ready")
	assert.Contains(t, out, "--repo")
	assert.Contains(t, out, "--open")
}

func TestUnknownCommandFails(t *testing.T) {
	_, err := execute(t, "teardown")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "teardown")
}
