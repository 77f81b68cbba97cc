package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureArgs replaces every RunE in the tree with one that records which
// command ran and what it received.
func captureArgs(root *cobra.Command) (*string, *[]string) {
	var name string
	var got []string
	record := func(cmd *cobra.Command, args []string) error {
		name = cmd.Name()
		got = args
		return nil
	}
	root.RunE = record
	for _, sub := range root.Commands() {
		sub.RunE = record
	}
	return &name, &got
}

func TestRootCmd_PassesDashedKeywordsThrough(t *testing.T) {
	root := newRootCmd()
	name, got := captureArgs(root)
	root.SetArgs([]string{"-lang", "en", "curry", "-fish"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "ruoka", *name)
	assert.Equal(t, []string{"-lang", "en", "curry", "-fish"}, *got)
}

func TestRootCmd_NoArgs(t *testing.T) {
	root := newRootCmd()
	name, got := captureArgs(root)
	root.SetArgs([]string{})

	require.NoError(t, root.Execute())
	assert.Equal(t, "ruoka", *name)
	assert.Empty(t, *got)
}

func TestRootCmd_BrowseSubcommand(t *testing.T) {
	root := newRootCmd()
	name, got := captureArgs(root)
	root.SetArgs([]string{"browse", "-curry"})

	require.NoError(t, root.Execute())
	assert.Equal(t, "browse", *name)
	assert.Equal(t, []string{"-curry"}, *got)
}
