package command

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseUsage(t *testing.T) {
	p := parseUsage("kw (a) [b]")
	require.Equal(t, "kw", p.keyword)
	require.Equal(t, 1, p.mandatoryCount)
	require.Equal(t, []string{"a", "b"}, p.expectedNames)
}

func TestParseUsageNoArgs(t *testing.T) {
	p := parseUsage("stop")
	require.Equal(t, "stop", p.keyword)
	require.Equal(t, 0, p.mandatoryCount)
	require.Empty(t, p.expectedNames)
}

func TestParseUsageAllMandatory(t *testing.T) {
	p := parseUsage("moveitem (serial) (x) (y) (z)")
	require.Equal(t, 4, p.mandatoryCount)
	require.Equal(t, []string{"serial", "x", "y", "z"}, p.expectedNames)
}
