package alias

import (
	_ "embed"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed localvalues.yaml
var localValuesYAML []byte

type localValuesFile struct {
	Rewrites map[string]map[string]string `yaml:"rewrites"`
	Defaults map[string]string            `yaml:"defaults"`
}

// LocalValueMap rewrites a literal token for a named argument before
// coercion: `color "any"` becomes "0xFFFF", `direction "southeast"`
// becomes "down", etc., and supplies per-argument-name defaults for missing
// optional positions. It is loaded once from an embedded YAML table rather
// than hard-coded as a Go literal so the rewrite rules can be edited without
// touching resolution logic.
type LocalValueMap struct {
	rewrites map[string]map[string]string // argName -> literal -> replacement
	defaults map[string]string            // argName -> default literal
}

// LoadLocalValueMap parses the embedded local-value table.
func LoadLocalValueMap() (*LocalValueMap, error) {
	var raw localValuesFile
	if err := yaml.Unmarshal(localValuesYAML, &raw); err != nil {
		return nil, err
	}
	lvm := &LocalValueMap{
		rewrites: make(map[string]map[string]string, len(raw.Rewrites)),
		defaults: make(map[string]string, len(raw.Defaults)),
	}
	for argName, entries := range raw.Rewrites {
		lowered := make(map[string]string, len(entries))
		for lit, repl := range entries {
			lowered[strings.ToLower(lit)] = repl
		}
		lvm.rewrites[strings.ToLower(argName)] = lowered
	}
	for argName, def := range raw.Defaults {
		lvm.defaults[strings.ToLower(argName)] = def
	}
	return lvm, nil
}

// Rewrite returns the replacement token for (argName, literal), or literal
// unchanged if no rewrite applies.
func (m *LocalValueMap) Rewrite(argName, literal string) string {
	entries, ok := m.rewrites[strings.ToLower(argName)]
	if !ok {
		return literal
	}
	if repl, ok := entries[strings.ToLower(literal)]; ok {
		return repl
	}
	return literal
}

// Default returns the default literal registered for argName, if any.
func (m *LocalValueMap) Default(argName string) (string, bool) {
	d, ok := m.defaults[strings.ToLower(argName)]
	return d, ok
}
