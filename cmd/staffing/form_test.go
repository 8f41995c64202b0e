package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFlags(t *testing.T, args ...string) (*cobra.Command, *consultantFlags, *stagingFlags) {
	t.Helper()
	var (
		fields      consultantFlags
		stagingOpts stagingFlags
	)
	cmd := &cobra.Command{Use: "test"}
	fields.register(cmd)
	stagingOpts.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &fields, &stagingOpts
}

func TestStagingOnlyFlagsCountAsSet(t *testing.T) {
	// A skill flag alone must select the non-interactive path, not the
	// form, or the staged flag would be silently discarded.
	cmd, fields, stagingOpts := parseFlags(t, "--skill", "Go=3")
	assert.False(t, fields.set(cmd))
	assert.True(t, stagingOpts.set(cmd))

	cmd, fields, stagingOpts = parseFlags(t, "--project", "Atlas", "--role", "Backend")
	assert.False(t, fields.set(cmd))
	assert.True(t, stagingOpts.set(cmd))
}

func TestNoFlagsMeansInteractive(t *testing.T) {
	cmd, fields, stagingOpts := parseFlags(t)
	assert.False(t, fields.set(cmd))
	assert.False(t, stagingOpts.set(cmd))
}

func TestBaseFieldFlagsCountAsSet(t *testing.T) {
	cmd, fields, _ := parseFlags(t, "--name", "Jane Doe")
	assert.True(t, fields.set(cmd))
}

func TestParseSkillSpec(t *testing.T) {
	name, years := parseSkillSpec("Rust=3")
	assert.Equal(t, "Rust", name)
	assert.Equal(t, 3, years)

	name, years = parseSkillSpec("Go")
	assert.Equal(t, "Go", name)
	assert.Equal(t, 0, years)

	name, years = parseSkillSpec(" Java = nope ")
	assert.Equal(t, "Java", name)
	assert.Equal(t, 0, years)
}
