package conformance

import (
	"embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var fixturesFS embed.FS

// LoadSuites parses every embedded fixture file into a Suite, in a
// deterministic (filename-sorted) order so subtests enumerate the same way
// on every run, matching the predictability localvalues.go's embedded table
// gives argument resolution.
func LoadSuites() ([]Suite, error) {
	entries, err := fixturesFS.ReadDir("testdata")
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	suites := make([]Suite, 0, len(names))
	for _, name := range names {
		data, err := fixturesFS.ReadFile("testdata/" + name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		var suite Suite
		if err := yaml.Unmarshal(data, &suite); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		suites = append(suites, suite)
	}
	return suites, nil
}
