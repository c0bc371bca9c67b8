package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/create-skeleton-app/internal/options"
)

func newTestCommand() *cobra.Command {
	c := &cobra.Command{Use: "test", Args: cobra.ArbitraryArgs}
	registerCreateFlags(c)

	return c
}

func TestOverlayFromFlags_OnlyChanged(t *testing.T) {
	c := newTestCommand()
	require.NoError(t, c.Flags().Parse([]string{
		"--prettier=false", "-t", "rocket", "--types", "checkjs", "--forms", "my-app",
	}))

	ov, err := overlayFromFlags(c.Flags())
	require.NoError(t, err)

	require.NotNil(t, ov.Prettier)
	assert.False(t, *ov.Prettier)
	require.NotNil(t, ov.Theme)
	assert.Equal(t, "rocket", *ov.Theme)
	require.NotNil(t, ov.Types)
	assert.Equal(t, options.CheckJS, *ov.Types)
	require.NotNil(t, ov.Forms)
	assert.True(t, *ov.Forms)

	assert.Nil(t, ov.Name)
	assert.Nil(t, ov.ESLint)
	assert.Nil(t, ov.Template)
	assert.Nil(t, ov.Typography)
	assert.False(t, ov.IsQuiet())
	assert.Equal(t, []string{"my-app"}, c.Flags().Args())
}

func TestOverlayFromFlags_DefaultValueStillPresent(t *testing.T) {
	c := newTestCommand()
	require.NoError(t, c.Flags().Parse([]string{"-q", "--eslint=true", "--name", options.DefaultName}))

	ov, err := overlayFromFlags(c.Flags())
	require.NoError(t, err)

	assert.True(t, ov.IsQuiet())
	require.NotNil(t, ov.ESLint)
	assert.True(t, *ov.ESLint)
	require.NotNil(t, ov.Name)
	assert.Equal(t, options.DefaultName, *ov.Name)
}

func TestOverlayFromFlags_InvalidTypes(t *testing.T) {
	c := newTestCommand()
	require.NoError(t, c.Flags().Parse([]string{"--types", "flow"}))

	_, err := overlayFromFlags(c.Flags())
	require.ErrorIs(t, err, options.ErrInvalidTypeMode)
}

func TestOverlayFromFlags_MalformedBoolRejected(t *testing.T) {
	c := newTestCommand()

	err := c.Flags().Parse([]string{"--prettier=0x"})
	require.Error(t, err)
}

func TestFormatBytes(t *testing.T) {
	tests := map[int64]string{
		0:               "0 B",
		2048:            "2.0 KB",
		5 * 1024 * 1024: "5.0 MB",
	}

	for in, want := range tests {
		assert.Equal(t, want, formatBytes(in))
	}
}
