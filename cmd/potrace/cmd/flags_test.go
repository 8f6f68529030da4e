package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/potrace"
)

func newTestCommand(f *paramFlags) *cobra.Command {
	c := &cobra.Command{Use: "test"}
	f.register(c)
	return c
}

func TestParamFlagsDefaultsApplyCleanly(t *testing.T) {
	var f paramFlags
	c := newTestCommand(&f)
	require.NoError(t, c.ParseFlags(nil))

	opts, err := f.options(c)
	require.NoError(t, err)

	p := potrace.DefaultParams()
	for _, opt := range opts {
		require.NoError(t, opt(&p))
	}
	assert.Equal(t, potrace.DefaultParams().TurnPolicy, p.TurnPolicy)
	assert.Equal(t, potrace.ThresholdAuto, p.Threshold)
}

func TestParamFlagsExplicitOverridesDefault(t *testing.T) {
	var f paramFlags
	c := newTestCommand(&f)
	require.NoError(t, c.ParseFlags([]string{"--threshold=128", "--invert"}))

	opts, err := f.options(c)
	require.NoError(t, err)

	p := potrace.DefaultParams()
	for _, opt := range opts {
		require.NoError(t, opt(&p))
	}
	assert.Equal(t, 128, p.Threshold)
	assert.False(t, p.BlackOnWhite)
}

func TestParamFlagsRejectsBadTurnPolicy(t *testing.T) {
	var f paramFlags
	c := newTestCommand(&f)
	require.NoError(t, c.ParseFlags([]string{"--turnpolicy=sideways"}))

	_, err := f.options(c)
	assert.Error(t, err)
}

func TestParseIntList(t *testing.T) {
	vals, err := parseIntList("10, 20,30")
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, vals)

	_, err = parseIntList("10,x")
	assert.Error(t, err)

	vals, err = parseIntList("")
	require.NoError(t, err)
	assert.Nil(t, vals)
}
