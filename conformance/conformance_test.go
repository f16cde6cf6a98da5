package conformance

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConformance drives every embedded fixture's cases through Run and
// checks the outcome against its Expectation, the end-to-end complement to
// the package-level unit tests scattered through the rest of the module.
func TestConformance(t *testing.T) {
	suites, err := LoadSuites()
	require.NoError(t, err)
	require.NotEmpty(t, suites)

	for _, suite := range suites {
		suite := suite
		t.Run(suite.Name, func(t *testing.T) {
			for _, c := range suite.Cases {
				c := c
				t.Run(c.Name, func(t *testing.T) {
					out := Run(c)
					checkExpectation(t, c.Expect, out)
				})
			}
		})
	}
}

func checkExpectation(t *testing.T, exp Expectation, out Outcome) {
	t.Helper()

	if exp.Sink != nil {
		require.Equal(t, exp.Sink, out.Sink)
	}
	if exp.Terminated != nil {
		require.Equal(t, *exp.Terminated, out.Terminated)
	}
	if exp.ScopeDepth != nil {
		require.Equal(t, *exp.ScopeDepth, out.ScopeDepth)
	}
	if exp.ActionVerbs != nil {
		require.Equal(t, exp.ActionVerbs, out.ActionVerbs)
	}
	for name, want := range exp.Aliases {
		got, ok := out.Alias(name)
		require.True(t, ok, "alias %q was never set", name)
		require.Equal(t, want, got)
	}
	for name, want := range exp.ListLengths {
		require.Equal(t, want, out.ListLength(name))
	}
}
