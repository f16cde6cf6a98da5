package alias

import "uosteam/values"

// RegisterDefaults registers the minimum boot-time serial aliases.
// Handler-backed aliases whose value depends on live game state
// (backpack, self, last, mount, ...) are registered separately by the
// builtins package, which has access to the host capabilities; this
// function only establishes the two pure sentinels that never depend on
// host state.
func RegisterDefaults(s *Store) {
	s.Set(values.KindSerial, "ground", values.NewSerial(values.Ground))
	s.Set(values.KindSerial, "any", values.NewSerial(values.Any))
}
