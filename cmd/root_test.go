package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCmd_Exists verifies the root command basics.
func TestRootCmd_Exists(t *testing.T) {
	require.NotNil(t, rootCmd)
	assert.Equal(t, "ratedb", rootCmd.Use)
	assert.True(t, rootCmd.SilenceErrors,
		"errors are printed via gn.PrintErrorMessage, not cobra")
	assert.True(t, rootCmd.SilenceUsage)
}

// TestRootCmd_Version verifies the version string layout.
func TestRootCmd_Version(t *testing.T) {
	assert.Contains(t, rootCmd.Version, "version:")
	assert.Contains(t, rootCmd.Version, "build:")
}

// TestRootCmd_Subcommands verifies all subcommands are
// registered.
func TestRootCmd_Subcommands(t *testing.T) {
	expected := []string{"create", "populate", "stats", "run"}

	registered := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		registered[c.Use] = true
	}

	for _, name := range expected {
		assert.True(t, registered[name],
			"subcommand %s should be registered", name)
	}
}
