package runtime

// TimerStore holds named wall-clock timers. Each timer records the
// tick at which it was (re)based; Get reports elapsed ticks since then.
type TimerStore struct {
	clock  Clock
	origin map[string]uint64
}

// NewTimerStore creates an empty timer store driven by clock.
func NewTimerStore(clock Clock) *TimerStore {
	return &TimerStore{clock: clock, origin: make(map[string]uint64)}
}

// Create starts name at the current tick.
func (s *TimerStore) Create(name string) {
	s.origin[name] = s.clock.NowTicks()
}

// Set backdates name so that Get immediately reports elapsed == ms. When ms
// exceeds the current tick the origin is clamped to tick 0, so Get reports
// the current tick instead.
func (s *TimerStore) Set(name string, ms uint64) {
	now := s.clock.NowTicks()
	if ms > now {
		s.origin[name] = 0
		return
	}
	s.origin[name] = now - ms
}

// Get returns elapsed ticks since name's origin. ok is false if name was
// never created.
func (s *TimerStore) Get(name string) (elapsed uint64, ok bool) {
	origin, exists := s.origin[name]
	if !exists {
		return 0, false
	}
	now := s.clock.NowTicks()
	if now < origin {
		return 0, true
	}
	return now - origin, true
}

// Remove deletes name.
func (s *TimerStore) Remove(name string) {
	delete(s.origin, name)
}

// Exists reports whether name has been created.
func (s *TimerStore) Exists(name string) bool {
	_, ok := s.origin[name]
	return ok
}
