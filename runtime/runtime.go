package runtime

import (
	"log"
	"os"

	"uosteam/alias"
)

// Phase is the interpreter's suspension state.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseTimingOut
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "RUNNING"
	case PhasePaused:
		return "PAUSED"
	case PhaseTimingOut:
		return "TIMING_OUT"
	default:
		return "UNKNOWN"
	}
}

// TimeoutCallback runs when an armed timeout expires. Returning true lets
// the script resume; returning false terminates it.
type TimeoutCallback func() bool

// Runtime bundles the process-wide stores and pause/timeout scheduler a
// single interpreter instance needs. The host owns exactly one Runtime per
// active script, which is what keeps the "at most one active script"
// invariant true without an explicit slot field — there is simply no
// second Runtime to be active.
type Runtime struct {
	Clock       Clock
	Lists       *ListStore
	Timers      *TimerStore
	Expressions *ExprRegistry
	Aliases     *alias.Store
	LocalValue  *alias.LocalValueMap
	Logger      *log.Logger

	phase           Phase
	pauseDeadline   uint64
	timeoutDeadline uint64
	timeoutCallback TimeoutCallback
}

// New builds a Runtime wired to clock, with fresh list/timer/expression/
// alias stores and a default stderr logger.
func New(clock Clock) *Runtime {
	lvm, err := alias.LoadLocalValueMap()
	if err != nil {
		lvm = nil
	}
	aliases := alias.New()
	alias.RegisterDefaults(aliases)
	return &Runtime{
		Clock:       clock,
		Lists:       NewListStore(),
		Timers:      NewTimerStore(clock),
		Expressions: NewExprRegistry(),
		Aliases:     aliases,
		LocalValue:  lvm,
		Logger:      log.New(os.Stderr, "uosteam: ", log.LstdFlags),
		phase:       PhaseRunning,
	}
}

// Phase reports the current suspension state.
func (r *Runtime) Phase() Phase { return r.phase }

// Pause suspends the script for ms ticks from now.
func (r *Runtime) Pause(ms uint64) {
	r.phase = PhasePaused
	r.pauseDeadline = r.Clock.NowTicks() + ms
}

// Unpause clears a pause immediately.
func (r *Runtime) Unpause() {
	if r.phase == PhasePaused {
		r.phase = PhaseRunning
	}
}

// Timeout arms cb to run in ms ticks. Only one timeout can be armed at
// a time; arming a new one replaces any previous arm.
func (r *Runtime) Timeout(ms uint64, cb TimeoutCallback) {
	r.phase = PhaseTimingOut
	r.timeoutDeadline = r.Clock.NowTicks() + ms
	r.timeoutCallback = cb
}

// ClearTimeout disarms any pending timeout, returning to RUNNING. Dispatch
// always clears timeouts on exit, and stopping a script clears any armed
// timeout as well.
func (r *Runtime) ClearTimeout() {
	if r.phase == PhaseTimingOut {
		r.phase = PhaseRunning
	}
	r.timeoutCallback = nil
}

// Resume is called once per step before any statement progress is made. It
// reports whether the evaluator may proceed this tick, and whether a fired
// timeout callback says the script should terminate.
func (r *Runtime) Resume() (proceed bool, terminate bool) {
	now := r.Clock.NowTicks()
	switch r.phase {
	case PhasePaused:
		if now < r.pauseDeadline {
			return false, false
		}
		r.phase = PhaseRunning
		return true, false
	case PhaseTimingOut:
		if now < r.timeoutDeadline {
			return false, false
		}
		cb := r.timeoutCallback
		r.phase = PhaseRunning
		r.timeoutCallback = nil
		if cb != nil && !cb() {
			return false, true
		}
		return true, false
	default:
		return true, false
	}
}
